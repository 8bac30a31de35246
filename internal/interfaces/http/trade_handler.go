package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	apptrade "github.com/jhoicas/wideapple-api/internal/application/trade"
	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/domain"
)

// TradeHandler maneja las peticiones HTTP de intercambios (protegido).
type TradeHandler struct {
	uc *apptrade.TradeUseCase
}

// NewTradeHandler construye el handler.
func NewTradeHandler(uc *apptrade.TradeUseCase) *TradeHandler {
	return &TradeHandler{uc: uc}
}

// Execute godoc
// @Summary      Ejecutar un intercambio (send, request, buy, sell)
// @Description  Mueve stock entre dos vendors de forma atómica y devuelve el recibo con impuesto y costo total, con conversión opcional a moneda alien.
// @Tags         trade
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TradeRequest  true  "from_vendor_id, to_vendor_id, fruit_id, quantity, trade_type, alien_currency"
// @Success      200   {object}  dto.TradeReceipt
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trade [post]
func (h *TradeHandler) Execute(c *fiber.Ctx) error {
	return h.handle(c, h.uc.ExecuteTrade)
}

// ExecuteLegacy godoc
// @Summary      Ejecutar un intercambio en modo legado (solo envío, sin moneda alien)
// @Tags         trade
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TradeRequest  true  "from_vendor_id, to_vendor_id, fruit_id, quantity"
// @Success      200   {object}  dto.TradeReceipt
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trade/simple [post]
func (h *TradeHandler) ExecuteLegacy(c *fiber.Ctx) error {
	return h.handle(c, h.uc.ExecuteLegacy)
}

func (h *TradeHandler) handle(c *fiber.Ctx, run func(ctx context.Context, callerVendorID int64, in dto.TradeRequest) (*dto.TradeReceipt, error)) error {
	vendorID := GetVendorID(c)
	if vendorID == 0 {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_VENDOR", Message: "el usuario no tiene perfil de vendedor"})
	}
	var in dto.TradeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := run(c.Context(), vendorID, in)
	if err != nil {
		return tradeError(c, err)
	}
	return c.JSON(receipt)
}

// tradeError mapea los errores de dominio del motor a códigos HTTP.
func tradeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes iniciar intercambios desde tu propio vendor"})
	case errors.Is(err, domain.ErrFruitNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FRUIT_NOT_FOUND", Message: "fruta no encontrada"})
	case errors.Is(err, domain.ErrInvalidTradeType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRADE_TYPE", Message: "tipo de intercambio inválido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
