package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
	domaintrade "github.com/jhoicas/wideapple-api/internal/domain/trade"
)

// TradeUseCase ejecuta intercambios de frutas entre vendors de forma
// transaccional, con bloqueo de fila en el inventario origen
// (SELECT FOR UPDATE) y Commit/Rollback.
type TradeUseCase struct {
	txRunner  TxRunner
	fruitRepo repository.FruitRepository
}

// NewTradeUseCase construye el caso de uso.
func NewTradeUseCase(txRunner TxRunner, fruitRepo repository.FruitRepository) *TradeUseCase {
	return &TradeUseCase{txRunner: txRunner, fruitRepo: fruitRepo}
}

// ExecuteTrade ejecuta un intercambio (send, request, buy o sell) y devuelve
// el recibo. Orden estricto: autorización → validación del discriminador y
// la cantidad → lookup de la fruta → transferencia transaccional → precio.
// Nada toca el inventario si alguna etapa previa falla; no guarda estado
// entre llamadas y re-lee el stock dentro de la transacción en cada trade.
func (uc *TradeUseCase) ExecuteTrade(ctx context.Context, callerVendorID int64, in dto.TradeRequest) (*dto.TradeReceipt, error) {
	if err := Authorize(callerVendorID, in); err != nil {
		return nil, err
	}
	tradeType, ok := entity.ParseTradeType(in.TradeType)
	if !ok {
		return nil, domain.ErrInvalidTradeType
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	fruit, err := uc.fruitRepo.GetByID(in.FruitID)
	if err != nil {
		return nil, err
	}
	if fruit == nil {
		return nil, domain.ErrFruitNotFound
	}

	return uc.settle(ctx, fruit, tradeType, in.AlienFlag(), in)
}

// ExecuteLegacy ejecuta el intercambio con la semántica de la primera
// generación del esquema: solo envío directo y sin conversión de moneda
// alien, de modo que el impuesto se calcula sobre el valor base almacenado.
func (uc *TradeUseCase) ExecuteLegacy(ctx context.Context, callerVendorID int64, in dto.TradeRequest) (*dto.TradeReceipt, error) {
	if err := Authorize(callerVendorID, in); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	fruit, err := uc.fruitRepo.GetByID(in.FruitID)
	if err != nil {
		return nil, err
	}
	if fruit == nil {
		return nil, domain.ErrFruitNotFound
	}

	return uc.settle(ctx, fruit, entity.TradeTypeSend, false, in)
}

// settle mueve el stock entre origen y destino dentro de una transacción y
// arma el recibo con el precio calculado.
func (uc *TradeUseCase) settle(ctx context.Context, fruit *entity.Fruit, tradeType entity.TradeType, alien bool, in dto.TradeRequest) (*dto.TradeReceipt, error) {
	source, destination := tradeType.StockFlow(in.FromVendorID, in.ToVendorID)
	now := time.Now()

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	err := uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		return transfer(invRepo, source, destination, fruit.ID, in.Quantity, now)
	})
	if err != nil {
		return nil, err
	}

	quote := domaintrade.ComputeQuote(fruit.BaseValue, in.Quantity, fruit.RarityLevel, alien)
	receipt := &dto.TradeReceipt{
		TradeID:       uuid.New().String(),
		Fruit:         fruit.Name,
		Quantity:      in.Quantity,
		BaseValue:     quote.BaseValue,
		Tax:           quote.Tax,
		TotalCost:     quote.TotalCost,
		TradeType:     string(tradeType),
		AlienCurrency: alien,
	}
	if tradeType.MovesCurrency() {
		// La moneda no se debita ni acredita en esta versión; el monto del
		// recibo es el costo calculado, no el currency_amount del request.
		total := quote.TotalCost
		receipt.CurrencyAmount = &total
	}
	return receipt, nil
}

// transfer bloquea la fila origen, verifica stock y aplica las dos
// mutaciones con los repositorios atados a la transacción del caller.
func transfer(invRepo repository.InventoryRepository, source, destination, fruitID, quantity int64, now time.Time) error {
	// Bloquea la fila origen para serializar transferencias concurrentes
	// sobre el mismo (vendor, fruta).
	src, err := invRepo.GetForUpdate(source, fruitID)
	if err != nil {
		return err
	}
	if src.Quantity < quantity {
		return domain.ErrInsufficientStock
	}
	src.Quantity -= quantity
	src.UpdatedAt = now
	if err := invRepo.Upsert(src); err != nil {
		return err
	}

	// Abono aditivo al destino: sin lectura previa, dos trades concurrentes
	// hacia el mismo vendor no pierden incrementos ni necesitan un segundo
	// bloqueo de fila (que podría cruzarse en deadlock con el trade inverso).
	return invRepo.Add(destination, fruitID, quantity, now)
}
