package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/wideapple-api/internal/application/auth"
	"github.com/jhoicas/wideapple-api/internal/application/pricing"
	apptrade "github.com/jhoicas/wideapple-api/internal/application/trade"
	"github.com/jhoicas/wideapple-api/internal/application/usecase"
	"github.com/jhoicas/wideapple-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/wideapple-api/internal/interfaces/http"
	"github.com/jhoicas/wideapple-api/pkg/config"
	"github.com/jhoicas/wideapple-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	fruitRepo := postgres.NewFruitRepository(pool)
	priceRepo := postgres.NewFruitPriceRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Fuente compartida entre el simulador y las peticiones de tendencia.
	rnd := pricing.NewLockedRand(time.Now().UnixNano())

	tradeUC := apptrade.NewTradeUseCase(txRunner, fruitRepo)
	fruitUC := usecase.NewFruitUseCase(fruitRepo, priceRepo, rnd)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, fruitRepo, invRepo, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, vendorRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		RefreshSecret:     cfg.JWT.RefreshSecret,
		ExpMinutes:        cfg.JWT.Expiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		Issuer:            cfg.JWT.Issuer,
	})

	// Simulador diario de precios: escritor aparte sobre fruit_prices,
	// nunca compite con las transferencias de inventario.
	if cfg.Sim.Enabled {
		simulator := pricing.NewSimulator(fruitRepo, priceRepo, rnd, log.Component("price-sim"))
		go simulator.RunDaily(ctx, time.Duration(cfg.Sim.IntervalHours)*time.Hour)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "WideApple Interdimensional API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		FruitUC:   fruitUC,
		VendorUC:  vendorUC,
		TradeUC:   tradeUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
