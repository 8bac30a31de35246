package usecase

import (
	"time"

	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/application/pricing"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

// FruitUseCase consultas de catálogo y precios de frutas.
type FruitUseCase struct {
	fruitRepo repository.FruitRepository
	priceRepo repository.FruitPriceRepository
	rnd       pricing.Rand
}

// NewFruitUseCase construye el caso de uso. rnd alimenta la tendencia
// simulada de 7 días (inyectable para tests deterministas).
func NewFruitUseCase(fruitRepo repository.FruitRepository, priceRepo repository.FruitPriceRepository, rnd pricing.Rand) *FruitUseCase {
	return &FruitUseCase{fruitRepo: fruitRepo, priceRepo: priceRepo, rnd: rnd}
}

// List devuelve frutas paginadas con filtro opcional por rareza.
func (uc *FruitUseCase) List(page dto.PageRequest, rarityLevel *int) ([]dto.FruitResponse, error) {
	page.DefaultPage()
	fruits, err := uc.fruitRepo.List(rarityLevel, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.FruitResponse, 0, len(fruits))
	for _, f := range fruits {
		out = append(out, toFruitResponse(f))
	}
	return out, nil
}

// PriceTrend genera la tendencia simulada de los últimos 7 días para una
// fruta, con fluctuación de ±20% sobre su valor base por día.
func (uc *FruitUseCase) PriceTrend(fruitName string, now time.Time) (*dto.PriceTrendResponse, error) {
	fruit, err := uc.fruitRepo.GetByName(fruitName)
	if err != nil {
		return nil, err
	}
	if fruit == nil {
		return nil, domain.ErrFruitNotFound
	}

	trend := make([]dto.PricePoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		trend = append(trend, dto.PricePoint{
			Date:  day.Format("2006-01-02"),
			Price: pricing.FluctuatedPrice(fruit.BaseValue, uc.rnd),
		})
	}
	return &dto.PriceTrendResponse{
		Fruit:     fruit.Name,
		BaseValue: fruit.BaseValue,
		Trend:     trend,
	}, nil
}

// HistoricalPrices lista precios históricos con filtros opcionales por
// fruta, rango de fechas y límite. Sin resultados devuelve ErrNotFound.
func (uc *FruitUseCase) HistoricalPrices(filter repository.FruitPriceFilter) (*dto.FruitPriceListResponse, error) {
	prices, err := uc.priceRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.FruitPriceDTO, 0, len(prices))
	for _, p := range prices {
		out = append(out, dto.FruitPriceDTO{ID: p.ID, FruitID: p.FruitID, Date: p.Date, Price: p.Price})
	}
	return &dto.FruitPriceListResponse{Prices: out}, nil
}

func toFruitResponse(f *entity.Fruit) dto.FruitResponse {
	return dto.FruitResponse{
		ID:              f.ID,
		Name:            f.Name,
		FlavorProfile:   f.FlavorProfile,
		DimensionOrigin: f.DimensionOrigin,
		RarityLevel:     f.RarityLevel,
		BaseValue:       f.BaseValue,
	}
}
