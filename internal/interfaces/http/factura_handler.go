package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
)

// FacturaHandler maneja las peticiones HTTP de facturación (protegido).
type FacturaHandler struct {
	crearUC   *facturacion.CrearFacturaUseCase
	emitirUC  *facturacion.EmitirFacturaUseCase
	previewUC *facturacion.PreviewUseCase
	pdfUC     *facturacion.PDFUseCase
	xmlUC     *facturacion.FacturaeUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(
	crearUC *facturacion.CrearFacturaUseCase,
	emitirUC *facturacion.EmitirFacturaUseCase,
	previewUC *facturacion.PreviewUseCase,
	pdfUC *facturacion.PDFUseCase,
	xmlUC *facturacion.FacturaeUseCase,
) *FacturaHandler {
	return &FacturaHandler{
		crearUC:   crearUC,
		emitirUC:  emitirUC,
		previewUC: previewUC,
		pdfUC:     pdfUC,
		xmlUC:     xmlUC,
	}
}

func facturaErrorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura o cliente no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una factura con esa serie y número"})
	case domain.ErrFacturaEmitida:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ISSUED", Message: "la factura ya está emitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear factura en borrador
// @Description  Calcula líneas y totales con el motor fiscal y guarda el borrador; los errores de validación no bloquean el guardado.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFacturaRequest  true  "cliente_id, serie, lineas"
// @Success      201   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.crearUC.CrearFactura(c.Context(), empresaID, in)
	if err != nil {
		return facturaErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

// List godoc
// @Summary      Listar facturas de la empresa
// @Tags         facturas
// @Produce      json
// @Param        limit   query  int  false  "límite (por defecto 20)"
// @Param        offset  query  int  false  "offset"
// @Success      200  {array}  dto.FacturaResponse
// @Security     BearerAuth
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.crearUC.ListFacturas(empresaID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener factura completa
// @Tags         facturas
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	factura, err := h.crearUC.GetFactura(empresaID, c.Params("id"))
	if err != nil {
		return facturaErrorResponse(c, err)
	}
	return c.JSON(factura)
}

// Calcular godoc
// @Summary      Previsualizar cálculo de factura
// @Description  Calcula líneas, totales, menciones y validación sin persistir nada. Siempre responde 200 sobre un body parseable; los errores de validación van en el campo validacion.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewFacturaRequest  true  "lineas y retención"
// @Success      200   {object}  dto.PreviewFacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/facturas/calcular [post]
func (h *FacturaHandler) Calcular(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PreviewFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.previewUC.Calcular(empresaID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Emitir godoc
// @Summary      Emitir factura
// @Description  Pasa la factura de borrador a emitida. Si el asesor de cumplimiento encuentra errores responde 409 con la lista y la factura sigue en borrador.
// @Tags         facturas
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.EmitirFacturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/facturas/{id}/emitir [post]
func (h *FacturaHandler) Emitir(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, errores, err := h.emitirUC.Emitir(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		if err == domain.ErrFacturaNoValida {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "NOT_VALID",
				Message: "la factura no supera la validación",
				Errors:  errores,
			})
		}
		return facturaErrorResponse(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         facturas
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/facturas/{id}/pdf [get]
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, filename, err := h.pdfUC.DescargarFacturaPDF(c.Context(), empresaID, c.Params("id"))
	if err != nil {
		return facturaErrorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Facturae godoc
// @Summary      Exportar factura en formato Facturae 3.2.2
// @Description  Solo facturas emitidas. La cabecera X-Huella-SHA256 lleva la huella del XML canonicalizado.
// @Tags         facturas
// @Produce      application/xml
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/facturas/{id}/facturae [get]
func (h *FacturaHandler) Facturae(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	xmlBytes, huella, filename, err := h.xmlUC.ExportarFacturae(empresaID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFacturaNoValida) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ISSUED", Message: err.Error()})
		}
		return facturaErrorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set("X-Huella-SHA256", huella)
	return c.Send(xmlBytes)
}
