package dto

import "github.com/shopspring/decimal"

// FruitResponse salida de una fruta del catálogo.
type FruitResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	FlavorProfile   string          `json:"flavor_profile"`
	DimensionOrigin string          `json:"dimension_origin"`
	RarityLevel     int             `json:"rarity_level"`
	BaseValue       decimal.Decimal `json:"base_value"`
}

// FruitPriceDTO un punto de precio histórico.
type FruitPriceDTO struct {
	ID      int64           `json:"id"`
	FruitID int64           `json:"fruit_id"`
	Date    string          `json:"date"`
	Price   decimal.Decimal `json:"price"`
}

// FruitPriceListResponse salida de GET /api/prices.
type FruitPriceListResponse struct {
	Prices []FruitPriceDTO `json:"prices"`
}

// PricePoint punto simulado de la tendencia de 7 días.
type PricePoint struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// PriceTrendResponse salida de la tendencia de precios de una fruta.
type PriceTrendResponse struct {
	Fruit     string          `json:"fruit"`
	BaseValue decimal.Decimal `json:"base_value"`
	Trend     []PricePoint    `json:"trend"`
}
