package trade

import "github.com/shopspring/decimal"

// AlienExchangeRate tasa fija de conversión a moneda alienígena.
var AlienExchangeRate = decimal.RequireFromString("3.14")

var ten = decimal.NewFromInt(10)

// Quote resultado del cálculo de precios de un intercambio.
type Quote struct {
	BaseValue decimal.Decimal // valor base efectivo (convertido si aplica moneda alien)
	Tax       decimal.Decimal
	TotalCost decimal.Decimal
}

// ComputeQuote calcula impuesto y costo total (servicio de dominio, función pura).
//
//	base  = alien ? baseValue * 3.14 : baseValue
//	tax   = (base * cantidad) * (rareza / 10)
//	total = (base * cantidad) + tax
//
// Determinista: mismas entradas producen siempre el mismo resultado. No
// redondea; el redondeo ocurre solo en la frontera de presentación.
// El caller valida antes cantidad > 0 y existencia de la fruta.
func ComputeQuote(baseValue decimal.Decimal, quantity int64, rarityLevel int, alienCurrency bool) Quote {
	base := baseValue
	if alienCurrency {
		base = base.Mul(AlienExchangeRate)
	}
	subtotal := base.Mul(decimal.NewFromInt(quantity))
	tax := subtotal.Mul(decimal.NewFromInt(int64(rarityLevel))).Div(ten)
	return Quote{
		BaseValue: base,
		Tax:       tax,
		TotalCost: subtotal.Add(tax),
	}
}
