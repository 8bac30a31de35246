package trade

import (
	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/domain"
)

// Authorize rechaza el intercambio si from_vendor_id no es el vendor del
// caller autenticado. Aplica a TODOS los tipos, incluidos request y buy
// donde el caller es semánticamente el receptor: from_vendor_id siempre es
// el vendor propio de quien inicia, sin importar hacia dónde fluye el stock.
// Corre antes de cualquier lectura de catálogo o inventario.
func Authorize(callerVendorID int64, in dto.TradeRequest) error {
	if in.FromVendorID != callerVendorID {
		return domain.ErrForbidden
	}
	return nil
}
