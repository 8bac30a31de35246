package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/application/usecase"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

// FruitHandler maneja el catálogo y los precios de frutas (público).
type FruitHandler struct {
	uc *usecase.FruitUseCase
}

// NewFruitHandler construye el handler.
func NewFruitHandler(uc *usecase.FruitUseCase) *FruitHandler {
	return &FruitHandler{uc: uc}
}

// List godoc
// @Summary      Listar frutas
// @Tags         fruit
// @Produce      json
// @Param        page    query  int  false  "Página (desde 1)"
// @Param        limit   query  int  false  "Elementos por página (1-100)"
// @Param        rarity  query  int  false  "Filtrar por nivel de rareza"
// @Success      200  {array}  dto.FruitResponse
// @Router       /api/fruits [get]
func (h *FruitHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	var rarity *int
	if c.Query("rarity") != "" {
		r := c.QueryInt("rarity")
		rarity = &r
	}
	fruits, err := h.uc.List(page, rarity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fruits)
}

// PriceTrend godoc
// @Summary      Tendencia de precio simulada (7 días) de una fruta
// @Tags         fruit
// @Produce      json
// @Param        name  path  string  true  "Nombre de la fruta"
// @Success      200  {object}  dto.PriceTrendResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fruits/{name}/trend [get]
func (h *FruitHandler) PriceTrend(c *fiber.Ctx) error {
	trend, err := h.uc.PriceTrend(c.Params("name"), time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrFruitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FRUIT_NOT_FOUND", Message: "fruta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(trend)
}

// HistoricalPrices godoc
// @Summary      Precios históricos de frutas
// @Tags         fruit
// @Produce      json
// @Param        fruit_id    query  int     false  "ID de la fruta"
// @Param        start_date  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Máximo de resultados"
// @Success      200  {object}  dto.FruitPriceListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prices [get]
func (h *FruitHandler) HistoricalPrices(c *fiber.Ctx) error {
	filter := repository.FruitPriceFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     c.QueryInt("limit"),
	}
	if c.Query("fruit_id") != "" {
		id := int64(c.QueryInt("fruit_id"))
		filter.FruitID = &id
	}
	prices, err := h.uc.HistoricalPrices(filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay precios para el filtro"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(prices)
}
