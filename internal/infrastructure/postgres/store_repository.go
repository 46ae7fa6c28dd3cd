package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT id, name, address, is_default, created_at FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.IsDefault, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List lista las tiendas (la predeterminada primero).
func (r *StoreRepo) List() ([]*entity.Store, error) {
	query := `SELECT id, name, address, is_default, created_at FROM stores ORDER BY is_default DESC, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var out []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.IsDefault, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Default devuelve la tienda predeterminada; si ninguna está marcada, la primera por nombre.
func (r *StoreRepo) Default() (*entity.Store, error) {
	query := `SELECT id, name, address, is_default, created_at FROM stores ORDER BY is_default DESC, name LIMIT 1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Name, &s.Address, &s.IsDefault, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("default store: %w", err)
	}
	return &s, nil
}
