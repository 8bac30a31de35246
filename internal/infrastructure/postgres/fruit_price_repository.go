package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
)

var _ repository.FruitPriceRepository = (*FruitPriceRepo)(nil)

// FruitPriceRepo implementación de FruitPriceRepository sobre PostgreSQL.
type FruitPriceRepo struct {
	q Querier
}

// NewFruitPriceRepository construye el adaptador de precios históricos.
func NewFruitPriceRepository(q Querier) *FruitPriceRepo {
	return &FruitPriceRepo{q: q}
}

// Create persiste un punto de precio; asigna el ID generado.
func (r *FruitPriceRepo) Create(price *entity.FruitPrice) error {
	query := `
		INSERT INTO fruit_prices (fruit_id, date, price)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, price.FruitID, price.Date, price.Price).Scan(&price.ID)
	if err != nil {
		return fmt.Errorf("insert fruit price: %w", err)
	}
	return nil
}

// List devuelve precios filtrados, ordenados por fecha descendente.
func (r *FruitPriceRepo) List(filter repository.FruitPriceFilter) ([]*entity.FruitPrice, error) {
	var (
		conds []string
		args  []any
	)
	if filter.FruitID != nil {
		args = append(args, *filter.FruitID)
		conds = append(conds, fmt.Sprintf("fruit_id = $%d", len(args)))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT id, fruit_id, date, price FROM fruit_prices`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fruit prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.FruitPrice
	for rows.Next() {
		var p entity.FruitPrice
		if err := rows.Scan(&p.ID, &p.FruitID, &p.Date, &p.Price); err != nil {
			return nil, fmt.Errorf("scan fruit price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
