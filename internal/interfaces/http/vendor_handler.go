package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/application/usecase"
	"github.com/jhoicas/wideapple-api/internal/domain"
)

// VendorHandler maneja las peticiones HTTP de vendors.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// List godoc
// @Summary      Listar vendors
// @Tags         vendor
// @Produce      json
// @Param        page     query  int     false  "Página (desde 1)"
// @Param        limit    query  int     false  "Elementos por página (1-100)"
// @Param        species  query  string  false  "Filtrar por especie"
// @Success      200  {array}  dto.VendorResponse
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	vendors, err := h.uc.List(page, c.Query("species"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(vendors)
}

// Me godoc
// @Summary      Vendor del usuario autenticado (con inventario)
// @Tags         vendor
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/me [get]
func (h *VendorHandler) Me(c *fiber.Ctx) error {
	vendor, err := h.uc.MyVendor(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "VENDOR_NOT_FOUND", Message: "perfil de vendedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(vendor)
}

// AddFruit godoc
// @Summary      Abonar fruta al inventario propio
// @Tags         vendor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddFruitRequest  true  "fruit_id, quantity"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/me/add-fruit [post]
func (h *VendorHandler) AddFruit(c *fiber.Ctx) error {
	var in dto.AddFruitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.AddFruit(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
		case errors.Is(err, domain.ErrVendorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "VENDOR_NOT_FOUND", Message: "perfil de vendedor no encontrado"})
		case errors.Is(err, domain.ErrFruitNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FRUIT_NOT_FOUND", Message: "fruta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
