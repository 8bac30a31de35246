package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para vendors.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un vendor nuevo; asigna el ID generado.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (name, species, home_dimension, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		vendor.Name, vendor.Species, vendor.HomeDimension, vendor.UserID,
	).Scan(&vendor.ID)
	if err != nil {
		if isUniqueViolation(err) {
			// user_id es único: un vendor por usuario
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendor por ID; nil si no existe.
func (r *VendorRepo) GetByID(id int64) (*entity.Vendor, error) {
	query := `
		SELECT id, name, species, home_dimension, user_id
		FROM vendors WHERE id = $1`
	return scanVendor(r.q.QueryRow(context.Background(), query, id), "get vendor by id")
}

// GetByUserID obtiene el vendor de un usuario; nil si no tiene.
func (r *VendorRepo) GetByUserID(userID int64) (*entity.Vendor, error) {
	query := `
		SELECT id, name, species, home_dimension, user_id
		FROM vendors WHERE user_id = $1`
	return scanVendor(r.q.QueryRow(context.Background(), query, userID), "get vendor by user")
}

// List lista vendors con paginación y filtro opcional por especie.
func (r *VendorRepo) List(species string, limit, offset int) ([]*entity.Vendor, error) {
	query := `
		SELECT id, name, species, home_dimension, user_id
		FROM vendors
		WHERE ($1 = '' OR species = $1)
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, species, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Species, &v.HomeDimension, &v.UserID); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func scanVendor(row pgx.Row, op string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.Species, &v.HomeDimension, &v.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}
