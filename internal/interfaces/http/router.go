package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/wideapple-api/internal/application/auth"
	apptrade "github.com/jhoicas/wideapple-api/internal/application/trade"
	"github.com/jhoicas/wideapple-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	FruitUC   *usecase.FruitUseCase
	VendorUC  *usecase.VendorUseCase
	TradeUC   *apptrade.TradeUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/token", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Fruits y precios (público)
	fruitHandler := NewFruitHandler(deps.FruitUC)
	api.Get("/fruits", fruitHandler.List)
	api.Get("/fruits/:name/trend", fruitHandler.PriceTrend)
	api.Get("/prices", fruitHandler.HistoricalPrices)

	// Vendors (listado público; perfil propio protegido)
	vendorHandler := NewVendorHandler(deps.VendorUC)
	api.Get("/vendors", vendorHandler.List)
	api.Get("/vendors/me", AuthMiddleware(deps.JWTSecret), vendorHandler.Me)
	api.Post("/vendors/me/add-fruit", AuthMiddleware(deps.JWTSecret), vendorHandler.AddFruit)

	// Trade (protegido)
	tradeHandler := NewTradeHandler(deps.TradeUC)
	api.Post("/trade", AuthMiddleware(deps.JWTSecret), tradeHandler.Execute)
	api.Post("/trade/simple", AuthMiddleware(deps.JWTSecret), tradeHandler.ExecuteLegacy)
}
