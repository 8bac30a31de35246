package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
	"github.com/jhoicas/wideapple-api/pkg/logger"
)

// Rand fuente de aleatoriedad inyectable; en producción un *rand.Rand,
// en tests una fuente determinista.
type Rand interface {
	Float64() float64
}

// MaxFluctuation amplitud de la fluctuación diaria simulada (±20%).
const MaxFluctuation = 0.2

// Simulator escribe un precio simulado por fruta y día (±20% del valor
// base). Es un escritor aparte sobre fruit_prices: nunca compite con las
// transferencias de inventario.
type Simulator struct {
	fruitRepo repository.FruitRepository
	priceRepo repository.FruitPriceRepository
	rnd       Rand
	log       *logger.Logger
}

// NewSimulator construye el simulador con la fuente de aleatoriedad dada.
func NewSimulator(fruitRepo repository.FruitRepository, priceRepo repository.FruitPriceRepository, rnd Rand, log *logger.Logger) *Simulator {
	return &Simulator{fruitRepo: fruitRepo, priceRepo: priceRepo, rnd: rnd, log: log}
}

// FluctuatedPrice aplica una fluctuación uniforme en [-MaxFluctuation,
// +MaxFluctuation] al valor base y redondea a 2 decimales.
func FluctuatedPrice(base decimal.Decimal, rnd Rand) decimal.Decimal {
	f := rnd.Float64()*(2*MaxFluctuation) - MaxFluctuation
	return base.Add(base.Mul(decimal.NewFromFloat(f))).Round(2)
}

// SimulateOnce registra el precio del día para cada fruta del catálogo.
func (s *Simulator) SimulateOnce(now time.Time) error {
	fruits, err := s.fruitRepo.ListAll()
	if err != nil {
		return fmt.Errorf("listar frutas: %w", err)
	}
	date := now.Format("2006-01-02")
	for _, fruit := range fruits {
		price := &entity.FruitPrice{
			FruitID: fruit.ID,
			Date:    date,
			Price:   FluctuatedPrice(fruit.BaseValue, s.rnd),
		}
		if err := s.priceRepo.Create(price); err != nil {
			return fmt.Errorf("guardar precio de %s: %w", fruit.Name, err)
		}
	}
	return nil
}

// RunDaily corre la simulación cada interval hasta que el contexto se cancele.
func (s *Simulator) RunDaily(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("simulador de precios detenido")
			return
		case now := <-ticker.C:
			if err := s.SimulateOnce(now); err != nil {
				s.log.Error().Err(err).Msg("simulación diaria de precios")
			}
		}
	}
}
