package entity

// TradeType discrimina la semántica de un intercambio. Enum cerrado:
// agregar un quinto tipo obliga a extender ParseTradeType y StockFlow.
type TradeType string

const (
	TradeTypeSend    TradeType = "send"    // regalo directo: from envía a to
	TradeTypeRequest TradeType = "request" // from pide; se verifica el stock de to
	TradeTypeBuy     TradeType = "buy"     // from paga, to despacha
	TradeTypeSell    TradeType = "sell"    // from despacha, to paga
)

// ParseTradeType valida el discriminador recibido por la API.
func ParseTradeType(s string) (TradeType, bool) {
	switch TradeType(s) {
	case TradeTypeSend, TradeTypeRequest, TradeTypeBuy, TradeTypeSell:
		return TradeType(s), true
	}
	return "", false
}

// StockFlow resuelve qué vendor es origen del stock y cuál destino.
// En request y buy quien inicia (from) es el receptor de la fruta.
func (t TradeType) StockFlow(fromVendorID, toVendorID int64) (source, destination int64) {
	switch t {
	case TradeTypeRequest, TradeTypeBuy:
		return toVendorID, fromVendorID
	default: // send, sell
		return fromVendorID, toVendorID
	}
}

// MovesCurrency indica si el tipo lleva monto de moneda en el recibo.
// El monto es informativo: la liquidación real de moneda no está modelada.
func (t TradeType) MovesCurrency() bool {
	return t == TradeTypeBuy || t == TradeTypeSell
}
