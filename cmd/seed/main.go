// seed puebla el catálogo de frutas y los vendors iniciales (con sus
// inventarios) desde data/fruits.json y data/vendors.json.
//
// Uso: go run ./cmd/seed [directorio-de-datos]
// Por defecto busca los JSON en ./data.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/infrastructure/postgres"
	"github.com/jhoicas/wideapple-api/pkg/config"
)

type fruitSeed struct {
	Name            string          `json:"name"`
	FlavorProfile   []string        `json:"flavor_profile"`
	DimensionOrigin string          `json:"dimension_origin"`
	RarityLevel     int             `json:"rarity_level"`
	BaseValue       decimal.Decimal `json:"base_value"`
}

type vendorSeed struct {
	Name          string `json:"name"`
	Species       string `json:"species"`
	HomeDimension string `json:"home_dimension"`
	Inventory     []struct {
		Fruit    string `json:"fruit"`
		Quantity int64  `json:"quantity"`
	} `json:"inventory"`
}

func main() {
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	fruitRepo := postgres.NewFruitRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)

	var fruits []fruitSeed
	mustLoad(filepath.Join(dataDir, "fruits.json"), &fruits)
	for _, f := range fruits {
		err := fruitRepo.Create(&entity.Fruit{
			Name:            f.Name,
			FlavorProfile:   strings.Join(f.FlavorProfile, ","),
			DimensionOrigin: f.DimensionOrigin,
			RarityLevel:     f.RarityLevel,
			BaseValue:       f.BaseValue,
		})
		if err != nil {
			fail("sembrar fruta %s: %v", f.Name, err)
		}
	}
	fmt.Printf("sembradas %d frutas\n", len(fruits))

	var vendors []vendorSeed
	mustLoad(filepath.Join(dataDir, "vendors.json"), &vendors)
	now := time.Now()
	for _, v := range vendors {
		vendor := &entity.Vendor{
			Name:          v.Name,
			Species:       v.Species,
			HomeDimension: v.HomeDimension,
		}
		if err := vendorRepo.Create(vendor); err != nil {
			fail("sembrar vendor %s: %v", v.Name, err)
		}
		for _, item := range v.Inventory {
			fruit, err := fruitRepo.GetByName(item.Fruit)
			if err != nil {
				fail("buscar fruta %s: %v", item.Fruit, err)
			}
			if fruit == nil {
				fmt.Fprintf(os.Stderr, "fruta desconocida en inventario de %s: %s (omitida)\n", v.Name, item.Fruit)
				continue
			}
			entry := &entity.InventoryEntry{
				VendorID:  vendor.ID,
				FruitID:   fruit.ID,
				Quantity:  item.Quantity,
				UpdatedAt: now,
			}
			if err := invRepo.Upsert(entry); err != nil {
				fail("sembrar inventario de %s: %v", v.Name, err)
			}
		}
	}
	fmt.Printf("sembrados %d vendors\n", len(vendors))
}

func mustLoad(path string, out any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fail("leer %s: %v", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		fail("parsear %s: %v", path, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
