package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apptrade "github.com/jhoicas/wideapple-api/internal/application/trade"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
	apphttp "github.com/jhoicas/wideapple-api/internal/interfaces/http"
	"github.com/jhoicas/wideapple-api/pkg/jwt"
)

type invKey struct{ vendorID, fruitID int64 }

type memInventoryRepo struct {
	entries map[invKey]int64
}

var _ repository.InventoryRepository = (*memInventoryRepo)(nil)

func (r *memInventoryRepo) Get(vendorID, fruitID int64) (*entity.InventoryEntry, error) {
	return &entity.InventoryEntry{VendorID: vendorID, FruitID: fruitID, Quantity: r.entries[invKey{vendorID, fruitID}]}, nil
}

func (r *memInventoryRepo) GetForUpdate(vendorID, fruitID int64) (*entity.InventoryEntry, error) {
	return r.Get(vendorID, fruitID)
}

func (r *memInventoryRepo) Upsert(entry *entity.InventoryEntry) error {
	r.entries[invKey{entry.VendorID, entry.FruitID}] = entry.Quantity
	return nil
}

func (r *memInventoryRepo) Add(vendorID, fruitID, delta int64, _ time.Time) error {
	r.entries[invKey{vendorID, fruitID}] += delta
	return nil
}

func (r *memInventoryRepo) ListByVendor(_ int64) ([]*entity.InventoryEntry, error) {
	return nil, nil
}

type memTxRunner struct{ inv *memInventoryRepo }

func (t *memTxRunner) Run(_ context.Context, fn func(invRepo repository.InventoryRepository) error) error {
	return fn(t.inv)
}

type memFruitRepo struct{ fruits map[int64]*entity.Fruit }

var _ repository.FruitRepository = (*memFruitRepo)(nil)

func (r *memFruitRepo) GetByID(id int64) (*entity.Fruit, error)        { return r.fruits[id], nil }
func (r *memFruitRepo) GetByName(_ string) (*entity.Fruit, error)      { return nil, nil }
func (r *memFruitRepo) List(_ *int, _, _ int) ([]*entity.Fruit, error) { return nil, nil }
func (r *memFruitRepo) ListAll() ([]*entity.Fruit, error)              { return nil, nil }
func (r *memFruitRepo) Create(_ *entity.Fruit) error                   { return nil }

// tradeApp monta el handler de trade detrás del middleware de auth con un
// motor real sobre repositorios en memoria: vendor 1 con 10 WideApples.
func tradeApp() *fiber.App {
	inv := &memInventoryRepo{entries: map[invKey]int64{{1, 10}: 10}}
	fruits := &memFruitRepo{fruits: map[int64]*entity.Fruit{
		10: {ID: 10, Name: "WideApple", RarityLevel: 4, BaseValue: decimal.RequireFromString("10.0")},
	}}
	uc := apptrade.NewTradeUseCase(&memTxRunner{inv: inv}, fruits)
	h := apphttp.NewTradeHandler(uc)

	app := fiber.New()
	api := app.Group("/api", apphttp.AuthMiddleware(testSecret))
	api.Post("/trade", h.Execute)
	api.Post("/trade/simple", h.ExecuteLegacy)
	return app
}

func postTrade(t *testing.T, app *fiber.App, path string, vendorID int64, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	token, err := jwt.Generate(testSecret, 1, vendorID, "wideapple-test", 5)
	require.NoError(t, err)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	_, err = rec.Body.ReadFrom(resp.Body)
	require.NoError(t, err)
	return rec
}

func validBody() map[string]any {
	return map[string]any{
		"from_vendor_id": 1,
		"to_vendor_id":   2,
		"fruit_id":       10,
		"quantity":       5,
		"trade_type":     "send",
	}
}

func TestTradeHandler_EjecucionExitosa(t *testing.T) {
	app := tradeApp()

	rec := postTrade(t, app, "/api/trade", 1, validBody())
	require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

	var receipt map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "WideApple", receipt["fruit"])
	assert.Equal(t, "send", receipt["trade_type"])
	assert.Equal(t, true, receipt["alien_currency"])
	assert.NotEmpty(t, receipt["trade_id"])
	assert.Equal(t, "219.8", receipt["total_cost"])
	assert.Nil(t, receipt["currency_amount"])
}

func TestTradeHandler_BuyIncluyeMonto(t *testing.T) {
	app := tradeApp()

	body := validBody()
	body["trade_type"] = "buy"
	body["from_vendor_id"] = 2
	body["to_vendor_id"] = 1
	rec := postTrade(t, app, "/api/trade", 2, body)
	require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

	var receipt map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "219.8", receipt["currency_amount"])
}

func TestTradeHandler_ProhibidoVendorAjeno(t *testing.T) {
	app := tradeApp()

	// Autenticado como vendor 2, intenta operar desde el vendor 1.
	rec := postTrade(t, app, "/api/trade", 2, validBody())
	assert.Equal(t, fiber.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestTradeHandler_SinVendor(t *testing.T) {
	app := tradeApp()

	rec := postTrade(t, app, "/api/trade", 0, validBody())
	assert.Equal(t, fiber.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_VENDOR")
}

func TestTradeHandler_ErroresDeDominio(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(body map[string]any)
		wantCode int
		wantBody string
	}{
		{"tipo invalido", func(b map[string]any) { b["trade_type"] = "teleport" }, fiber.StatusBadRequest, "INVALID_TRADE_TYPE"},
		{"cantidad cero", func(b map[string]any) { b["quantity"] = 0 }, fiber.StatusBadRequest, "VALIDATION"},
		{"fruta inexistente", func(b map[string]any) { b["fruit_id"] = 404 }, fiber.StatusNotFound, "FRUIT_NOT_FOUND"},
		{"stock insuficiente", func(b map[string]any) { b["quantity"] = 99 }, fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app := tradeApp()

			body := validBody()
			c.mutate(body)
			rec := postTrade(t, app, "/api/trade", 1, body)

			assert.Equal(t, c.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), c.wantBody)
		})
	}
}

func TestTradeHandler_ModoLegado(t *testing.T) {
	app := tradeApp()

	body := validBody()
	body["trade_type"] = "buy" // se ignora en el modo legado
	rec := postTrade(t, app, "/api/trade/simple", 1, body)
	require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

	var receipt map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "send", receipt["trade_type"])
	assert.Equal(t, false, receipt["alien_currency"])
	assert.Equal(t, "70", receipt["total_cost"])
}
