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

var _ repository.FruitRepository = (*FruitRepo)(nil)

// FruitRepo implementación del puerto FruitRepository sobre PostgreSQL.
type FruitRepo struct {
	q Querier
}

// NewFruitRepository construye el adaptador del catálogo de frutas.
func NewFruitRepository(q Querier) *FruitRepo {
	return &FruitRepo{q: q}
}

// Create siembra una fruta nueva; asigna el ID generado.
func (r *FruitRepo) Create(fruit *entity.Fruit) error {
	query := `
		INSERT INTO fruits (name, flavor_profile, dimension_origin, rarity_level, base_value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		fruit.Name, fruit.FlavorProfile, fruit.DimensionOrigin, fruit.RarityLevel, fruit.BaseValue,
	).Scan(&fruit.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert fruit: %w", err)
	}
	return nil
}

// GetByID obtiene una fruta por ID; nil si no existe.
func (r *FruitRepo) GetByID(id int64) (*entity.Fruit, error) {
	query := `
		SELECT id, name, flavor_profile, dimension_origin, rarity_level, base_value
		FROM fruits WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get fruit by id")
}

// GetByName obtiene una fruta por su nombre único; nil si no existe.
func (r *FruitRepo) GetByName(name string) (*entity.Fruit, error) {
	query := `
		SELECT id, name, flavor_profile, dimension_origin, rarity_level, base_value
		FROM fruits WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get fruit by name")
}

// List lista frutas con paginación y filtro opcional por rareza.
func (r *FruitRepo) List(rarityLevel *int, limit, offset int) ([]*entity.Fruit, error) {
	query := `
		SELECT id, name, flavor_profile, dimension_origin, rarity_level, base_value
		FROM fruits
		WHERE ($1::int IS NULL OR rarity_level = $1)
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, rarityLevel, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fruits: %w", err)
	}
	return r.scanAll(rows)
}

// ListAll devuelve el catálogo completo.
func (r *FruitRepo) ListAll() ([]*entity.Fruit, error) {
	query := `
		SELECT id, name, flavor_profile, dimension_origin, rarity_level, base_value
		FROM fruits ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all fruits: %w", err)
	}
	return r.scanAll(rows)
}

func (r *FruitRepo) scanOne(row pgx.Row, op string) (*entity.Fruit, error) {
	var f entity.Fruit
	err := row.Scan(&f.ID, &f.Name, &f.FlavorProfile, &f.DimensionOrigin, &f.RarityLevel, &f.BaseValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}

func (r *FruitRepo) scanAll(rows pgx.Rows) ([]*entity.Fruit, error) {
	defer rows.Close()
	var list []*entity.Fruit
	for rows.Next() {
		var f entity.Fruit
		if err := rows.Scan(&f.ID, &f.Name, &f.FlavorProfile, &f.DimensionOrigin, &f.RarityLevel, &f.BaseValue); err != nil {
			return nil, fmt.Errorf("scan fruit: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
