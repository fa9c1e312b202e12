package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *facturacion.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *facturacion.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

func clienteErrorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, tipo o NIF inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese NIF"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "nombre, tipo, nif, pais"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Create(empresaID, in)
	if err != nil {
		return clienteErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	cliente, err := h.uc.Get(empresaID, c.Params("id"))
	if err != nil {
		return clienteErrorResponse(c, err)
	}
	return c.JSON(cliente)
}

// List godoc
// @Summary      Listar clientes de la empresa
// @Tags         clientes
// @Produce      json
// @Param        limit   query  int  false  "límite (por defecto 20)"
// @Param        offset  query  int  false  "offset"
// @Success      200  {array}  dto.ClienteResponse
// @Security     BearerAuth
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(empresaID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del cliente"
// @Param        body  body  dto.UpdateClienteRequest  true  "datos del cliente"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Update(empresaID, c.Params("id"), in)
	if err != nil {
		return clienteErrorResponse(c, err)
	}
	return c.JSON(cliente)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Delete(empresaID, c.Params("id")); err != nil {
		return clienteErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
