package entity

import "github.com/shopspring/decimal"

// Fruit representa una fruta interdimensional del catálogo.
// El catálogo es de solo lectura para el motor de intercambios: las frutas
// se siembran una vez (cmd/seed) y solo cambian por gestión explícita.
type Fruit struct {
	ID              int64
	Name            string // único
	FlavorProfile   string
	DimensionOrigin string
	RarityLevel     int             // 0–10, define la tasa de impuesto (rareza/10)
	BaseValue       decimal.Decimal // valor base, nunca negativo
}

// FruitPrice precio histórico simulado de una fruta para un día.
// Lo escribe el simulador diario; nunca compite con los intercambios.
type FruitPrice struct {
	ID      int64
	FruitID int64
	Date    string // ISO (YYYY-MM-DD)
	Price   decimal.Decimal
}
