package dto

import "github.com/shopspring/decimal"

// TradeRequest body para POST /api/trade.
// AlienCurrency es puntero para distinguir "omitido" (default true) de false.
type TradeRequest struct {
	FromVendorID   int64            `json:"from_vendor_id"`
	ToVendorID     int64            `json:"to_vendor_id"`
	FruitID        int64            `json:"fruit_id"`
	Quantity       int64            `json:"quantity"`
	TradeType      string           `json:"trade_type"`
	CurrencyAmount *decimal.Decimal `json:"currency_amount,omitempty"`
	AlienCurrency  *bool            `json:"alien_currency,omitempty"`
}

// AlienFlag resuelve el flag de moneda alien con su valor por defecto (true).
func (r TradeRequest) AlienFlag() bool {
	if r.AlienCurrency == nil {
		return true
	}
	return *r.AlienCurrency
}

// TradeReceipt recibo de un intercambio completado. Transitorio: se devuelve
// al caller y no se persiste. CurrencyAmount solo viene en buy/sell.
type TradeReceipt struct {
	TradeID        string           `json:"trade_id"`
	Fruit          string           `json:"fruit"`
	Quantity       int64            `json:"quantity"`
	BaseValue      decimal.Decimal  `json:"base_value"`
	Tax            decimal.Decimal  `json:"tax"`
	TotalCost      decimal.Decimal  `json:"total_cost"`
	TradeType      string           `json:"trade_type"`
	AlienCurrency  bool             `json:"alien_currency"`
	CurrencyAmount *decimal.Decimal `json:"currency_amount,omitempty"`
}
