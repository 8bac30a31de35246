package trade_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/application/trade"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner clona el inventario, ejecuta fn sobre la copia
// y solo confirma la copia si fn no falla: misma semántica commit/rollback que
// la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct{ vendorID, fruitID int64 }

type invState struct {
	qty int64
	at  time.Time
}

type memStore struct {
	mu      sync.Mutex
	entries map[invKey]invState
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[invKey]invState)}
}

func (s *memStore) set(vendorID, fruitID, qty int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[invKey{vendorID, fruitID}] = invState{qty: qty}
}

func (s *memStore) qty(vendorID, fruitID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[invKey{vendorID, fruitID}].qty
}

func (s *memStore) at(vendorID, fruitID int64) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[invKey{vendorID, fruitID}].at
}

func (s *memStore) clone() map[invKey]invState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[invKey]invState, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

func (s *memStore) replace(entries map[invKey]invState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// memInventoryRepo repositorio de inventario sobre un mapa (la "tx" en
// curso). Registra qué filas se leyeron para poder verificar que el
// destino se abona sin lectura previa.
type memInventoryRepo struct {
	entries map[invKey]invState
	reads   []invKey
}

var _ repository.InventoryRepository = (*memInventoryRepo)(nil)

func (r *memInventoryRepo) Get(vendorID, fruitID int64) (*entity.InventoryEntry, error) {
	k := invKey{vendorID, fruitID}
	r.reads = append(r.reads, k)
	st := r.entries[k]
	return &entity.InventoryEntry{
		VendorID:  vendorID,
		FruitID:   fruitID,
		Quantity:  st.qty,
		UpdatedAt: st.at,
	}, nil
}

func (r *memInventoryRepo) GetForUpdate(vendorID, fruitID int64) (*entity.InventoryEntry, error) {
	return r.Get(vendorID, fruitID)
}

func (r *memInventoryRepo) Upsert(entry *entity.InventoryEntry) error {
	r.entries[invKey{entry.VendorID, entry.FruitID}] = invState{qty: entry.Quantity, at: entry.UpdatedAt}
	return nil
}

func (r *memInventoryRepo) Add(vendorID, fruitID, delta int64, now time.Time) error {
	k := invKey{vendorID, fruitID}
	st := r.entries[k]
	r.entries[k] = invState{qty: st.qty + delta, at: now}
	return nil
}

func (r *memInventoryRepo) ListByVendor(vendorID int64) ([]*entity.InventoryEntry, error) {
	var out []*entity.InventoryEntry
	for k, v := range r.entries {
		if k.vendorID == vendorID {
			out = append(out, &entity.InventoryEntry{VendorID: k.vendorID, FruitID: k.fruitID, Quantity: v.qty, UpdatedAt: v.at})
		}
	}
	return out, nil
}

type memTxRunner struct {
	store *memStore
	runs  int
	last  *memInventoryRepo
}

func (t *memTxRunner) Run(_ context.Context, fn func(invRepo repository.InventoryRepository) error) error {
	t.runs++
	staged := &memInventoryRepo{entries: t.store.clone()}
	t.last = staged
	if err := fn(staged); err != nil {
		return err // rollback: la copia se descarta
	}
	t.store.replace(staged.entries)
	return nil
}

type memFruitRepo struct {
	fruits  map[int64]*entity.Fruit
	getByID int
}

var _ repository.FruitRepository = (*memFruitRepo)(nil)

func (r *memFruitRepo) GetByID(id int64) (*entity.Fruit, error) {
	r.getByID++
	return r.fruits[id], nil
}

func (r *memFruitRepo) GetByName(name string) (*entity.Fruit, error) {
	for _, f := range r.fruits {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, nil
}

func (r *memFruitRepo) List(_ *int, _, _ int) ([]*entity.Fruit, error) { return nil, nil }
func (r *memFruitRepo) ListAll() ([]*entity.Fruit, error)              { return nil, nil }
func (r *memFruitRepo) Create(_ *entity.Fruit) error                   { return nil }

// ──────────────────────────────────────────────────────────────────────────────

const (
	vendorA = int64(1)
	vendorB = int64(2)
	fruitID = int64(10)
)

func fixture(stockA, stockB int64) (*trade.TradeUseCase, *memStore, *memTxRunner, *memFruitRepo) {
	store := newMemStore()
	store.set(vendorA, fruitID, stockA)
	store.set(vendorB, fruitID, stockB)

	runner := &memTxRunner{store: store}
	fruits := &memFruitRepo{fruits: map[int64]*entity.Fruit{
		fruitID: {
			ID:              fruitID,
			Name:            "WideApple",
			DimensionOrigin: "C-137",
			RarityLevel:     4,
			BaseValue:       decimal.RequireFromString("10.0"),
		},
	}}
	return trade.NewTradeUseCase(runner, fruits), store, runner, fruits
}

func request(tradeType string, qty int64) dto.TradeRequest {
	return dto.TradeRequest{
		FromVendorID: vendorA,
		ToVendorID:   vendorB,
		FruitID:      fruitID,
		Quantity:     qty,
		TradeType:    tradeType,
	}
}

func TestExecuteTrade_SendMueveStockYConservaElTotal(t *testing.T) {
	uc, store, _, _ := fixture(10, 0)

	receipt, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 5))
	require.NoError(t, err)

	assert.Equal(t, int64(5), store.qty(vendorA, fruitID))
	assert.Equal(t, int64(5), store.qty(vendorB, fruitID))

	assert.NotEmpty(t, receipt.TradeID)
	assert.Equal(t, "WideApple", receipt.Fruit)
	assert.Equal(t, "send", receipt.TradeType)
	assert.True(t, receipt.AlienCurrency, "alien_currency omitido debe resolver en true")
	assert.True(t, receipt.BaseValue.Equal(decimal.RequireFromString("31.4")))
	assert.True(t, receipt.Tax.Equal(decimal.RequireFromString("62.8")))
	assert.True(t, receipt.TotalCost.Equal(decimal.RequireFromString("219.8")))
	assert.Nil(t, receipt.CurrencyAmount, "send no mueve moneda")
}

func TestExecuteTrade_RecibosConIDUnico(t *testing.T) {
	uc, _, _, _ := fixture(10, 0)

	r1, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 1))
	require.NoError(t, err)
	r2, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 1))
	require.NoError(t, err)

	assert.NotEqual(t, r1.TradeID, r2.TradeID)
}

func TestExecuteTrade_DireccionDelStockPorTipo(t *testing.T) {
	// En request y buy la fruta fluye del receptor (to) hacia el iniciador (from).
	cases := []struct {
		tipo           string
		stockA, stockB int64
		wantA, wantB   int64
	}{
		{"send", 10, 0, 7, 3},
		{"sell", 10, 0, 7, 3},
		{"request", 0, 10, 3, 7},
		{"buy", 0, 10, 3, 7},
	}
	for _, c := range cases {
		t.Run(c.tipo, func(t *testing.T) {
			uc, store, _, _ := fixture(c.stockA, c.stockB)

			_, err := uc.ExecuteTrade(context.Background(), vendorA, request(c.tipo, 3))
			require.NoError(t, err)

			assert.Equal(t, c.wantA, store.qty(vendorA, fruitID), "stock vendor origen")
			assert.Equal(t, c.wantB, store.qty(vendorB, fruitID), "stock vendor destino")
		})
	}
}

func TestExecuteTrade_BuyYSellIncluyenMontoDeMoneda(t *testing.T) {
	for _, tipo := range []string{"buy", "sell"} {
		t.Run(tipo, func(t *testing.T) {
			uc, _, _, _ := fixture(10, 10)

			receipt, err := uc.ExecuteTrade(context.Background(), vendorA, request(tipo, 5))
			require.NoError(t, err)

			require.NotNil(t, receipt.CurrencyAmount)
			// El monto del recibo es el costo calculado, no el del request.
			assert.True(t, receipt.CurrencyAmount.Equal(receipt.TotalCost))
		})
	}
}

func TestExecuteTrade_ProhibidoOperarPorOtroVendor(t *testing.T) {
	for _, tipo := range []string{"send", "request", "buy", "sell"} {
		t.Run(tipo, func(t *testing.T) {
			uc, store, runner, _ := fixture(10, 10)

			_, err := uc.ExecuteTrade(context.Background(), vendorB, request(tipo, 1))
			assert.ErrorIs(t, err, domain.ErrForbidden)
			assert.Zero(t, runner.runs, "no debe abrirse transacción")
			assert.Equal(t, int64(10), store.qty(vendorA, fruitID))
			assert.Equal(t, int64(10), store.qty(vendorB, fruitID))
		})
	}
}

func TestExecuteTrade_TipoInvalido(t *testing.T) {
	uc, _, runner, fruits := fixture(10, 0)

	_, err := uc.ExecuteTrade(context.Background(), vendorA, request("teleport", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidTradeType)
	assert.Zero(t, runner.runs)
	assert.Zero(t, fruits.getByID, "no debe consultarse el catálogo")
}

func TestExecuteTrade_CantidadInvalida(t *testing.T) {
	uc, _, runner, _ := fixture(10, 0)

	for _, qty := range []int64{0, -3} {
		_, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", qty))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, runner.runs)
}

func TestExecuteTrade_FrutaInexistente(t *testing.T) {
	uc, store, runner, _ := fixture(10, 0)

	in := request("send", 1)
	in.FruitID = 999
	_, err := uc.ExecuteTrade(context.Background(), vendorA, in)

	assert.ErrorIs(t, err, domain.ErrFruitNotFound)
	assert.Zero(t, runner.runs)
	assert.Equal(t, int64(10), store.qty(vendorA, fruitID))
}

func TestExecuteTrade_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, store, _, _ := fixture(3, 1)

	_, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 5))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: ninguna de las dos filas cambió.
	assert.Equal(t, int64(3), store.qty(vendorA, fruitID))
	assert.Equal(t, int64(1), store.qty(vendorB, fruitID))
}

func TestExecuteTrade_StockExacto(t *testing.T) {
	uc, store, _, _ := fixture(5, 0)

	_, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 5))
	require.NoError(t, err)

	// La fila origen queda en cero, no se borra.
	assert.Equal(t, int64(0), store.qty(vendorA, fruitID))
	assert.Equal(t, int64(5), store.qty(vendorB, fruitID))
}

func TestExecuteTrade_ElDestinoSeAbonaSinLecturaPrevia(t *testing.T) {
	// El destino se incrementa con un abono aditivo: leer y reescribir su
	// cantidad absoluta perdería incrementos bajo trades concurrentes.
	uc, store, runner, _ := fixture(10, 2)

	_, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 4))
	require.NoError(t, err)

	require.NotNil(t, runner.last)
	assert.Equal(t, []invKey{{vendorA, fruitID}}, runner.last.reads,
		"dentro de la tx solo debe leerse (y bloquearse) la fila origen")
	assert.Equal(t, int64(6), store.qty(vendorB, fruitID))
}

func TestExecuteTrade_TimestampUnicoParaAmbasFilas(t *testing.T) {
	uc, store, _, _ := fixture(10, 0)

	_, err := uc.ExecuteTrade(context.Background(), vendorA, request("send", 4))
	require.NoError(t, err)

	srcAt := store.at(vendorA, fruitID)
	dstAt := store.at(vendorB, fruitID)
	assert.False(t, srcAt.IsZero(), "la fila origen debe llevar el timestamp de la transferencia")
	assert.Equal(t, srcAt, dstAt, "ambas filas comparten el instante de la transferencia")
}

func TestExecuteTrade_AutoIntercambioNoAlteraElStock(t *testing.T) {
	uc, store, _, _ := fixture(10, 0)

	in := request("send", 4)
	in.ToVendorID = vendorA
	receipt, err := uc.ExecuteTrade(context.Background(), vendorA, in)

	require.NoError(t, err)
	assert.Equal(t, int64(10), store.qty(vendorA, fruitID), "restar y sumar sobre la misma fila es neto cero")
	assert.NotEmpty(t, receipt.TradeID)
}

func TestExecuteTrade_MonedaAlienExplicitamenteFalse(t *testing.T) {
	uc, _, _, _ := fixture(10, 0)

	alien := false
	in := request("send", 5)
	in.AlienCurrency = &alien
	receipt, err := uc.ExecuteTrade(context.Background(), vendorA, in)

	require.NoError(t, err)
	assert.False(t, receipt.AlienCurrency)
	assert.True(t, receipt.BaseValue.Equal(decimal.RequireFromString("10.0")))
	assert.True(t, receipt.Tax.Equal(decimal.RequireFromString("20")))
	assert.True(t, receipt.TotalCost.Equal(decimal.RequireFromString("70")))
}

func TestExecuteLegacy_SoloEnvioSinMonedaAlien(t *testing.T) {
	uc, store, _, _ := fixture(10, 0)

	// El tipo y el flag alien del request se ignoran en el modo legado.
	alien := true
	in := request("buy", 5)
	in.AlienCurrency = &alien
	receipt, err := uc.ExecuteLegacy(context.Background(), vendorA, in)
	require.NoError(t, err)

	assert.Equal(t, "send", receipt.TradeType)
	assert.False(t, receipt.AlienCurrency)
	assert.Nil(t, receipt.CurrencyAmount)
	assert.True(t, receipt.Tax.Equal(decimal.RequireFromString("20")))
	assert.True(t, receipt.TotalCost.Equal(decimal.RequireFromString("70")))
	assert.Equal(t, int64(5), store.qty(vendorA, fruitID))
	assert.Equal(t, int64(5), store.qty(vendorB, fruitID))
}

func TestExecuteLegacy_TambienExigeAutorizacion(t *testing.T) {
	uc, _, runner, _ := fixture(10, 0)

	_, err := uc.ExecuteLegacy(context.Background(), vendorB, request("send", 1))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, runner.runs)
}
