package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene la entrada de inventario; fila ausente = cantidad cero.
func (r *InventoryRepo) Get(vendorID, fruitID int64) (*entity.InventoryEntry, error) {
	query := `
		SELECT vendor_id, fruit_id, quantity, updated_at
		FROM vendor_inventory WHERE vendor_id = $1 AND fruit_id = $2`
	var e entity.InventoryEntry
	err := r.q.QueryRow(context.Background(), query, vendorID, fruitID).Scan(
		&e.VendorID, &e.FruitID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryEntry{VendorID: vendorID, FruitID: fruitID}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtiene la entrada y bloquea la fila (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(vendorID, fruitID int64) (*entity.InventoryEntry, error) {
	query := `
		SELECT vendor_id, fruit_id, quantity, updated_at
		FROM vendor_inventory WHERE vendor_id = $1 AND fruit_id = $2
		FOR UPDATE`
	var e entity.InventoryEntry
	err := r.q.QueryRow(context.Background(), query, vendorID, fruitID).Scan(
		&e.VendorID, &e.FruitID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryEntry{VendorID: vendorID, FruitID: fruitID}, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &e, nil
}

// Upsert inserta o actualiza la cantidad absoluta de la entrada (por
// vendor y fruta), con el timestamp que trae la entidad.
func (r *InventoryRepo) Upsert(entry *entity.InventoryEntry) error {
	query := `
		INSERT INTO vendor_inventory (vendor_id, fruit_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vendor_id, fruit_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, entry.VendorID, entry.FruitID, entry.Quantity, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// Add incrementa la cantidad con un upsert aditivo. No lee ni bloquea la
// fila: el incremento se resuelve en el propio UPDATE, así dos abonos
// concurrentes al mismo (vendor, fruta) no se pierden.
func (r *InventoryRepo) Add(vendorID, fruitID, delta int64, now time.Time) error {
	query := `
		INSERT INTO vendor_inventory (vendor_id, fruit_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vendor_id, fruit_id)
		DO UPDATE SET quantity = vendor_inventory.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, vendorID, fruitID, delta, now)
	if err != nil {
		return fmt.Errorf("add inventory: %w", err)
	}
	return nil
}

// ListByVendor lista las entradas de inventario de un vendor.
func (r *InventoryRepo) ListByVendor(vendorID int64) ([]*entity.InventoryEntry, error) {
	query := `
		SELECT vendor_id, fruit_id, quantity, updated_at
		FROM vendor_inventory WHERE vendor_id = $1 ORDER BY fruit_id`
	rows, err := r.q.Query(context.Background(), query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryEntry
	for rows.Next() {
		var e entity.InventoryEntry
		if err := rows.Scan(&e.VendorID, &e.FruitID, &e.Quantity, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
