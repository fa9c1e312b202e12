package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/usecase"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
)

// EmpresaHandler maneja las peticiones HTTP de empresas.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar empresa emisora
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpresaRequest  true  "razon_social, nif"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	empresa, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "razón social o NIF inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(empresa)
}

// GetByID godoc
// @Summary      Obtener empresa
// @Tags         empresas
// @Produce      json
// @Param        id   path      string  true  "ID de la empresa"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	empresa, err := h.uc.Get(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(empresa)
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Param        limit   query  int  false  "límite (por defecto 20)"
// @Param        offset  query  int  false  "offset"
// @Success      200  {array}  dto.EmpresaResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
