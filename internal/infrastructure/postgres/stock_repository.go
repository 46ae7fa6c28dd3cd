package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una tienda. Si no hay fila
// devuelve cantidad 0 (la entrada se crea en el primer Upsert).
func (r *StockRepo) Get(productID, storeID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, store_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND store_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, storeID).Scan(
		&s.ProductID, &s.StoreID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, StoreID: storeID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, storeID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, store_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND store_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, storeID).Scan(
		&s.ProductID, &s.StoreID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, StoreID: storeID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y tienda).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, store_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.StoreID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// TotalByProduct suma las cantidades del producto en todas las tiendas.
func (r *StockRepo) TotalByProduct(productID string) (int64, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE product_id = $1`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock: %w", err)
	}
	return total, nil
}

// ListByProduct lista las filas de stock de un producto.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, store_id, quantity, updated_at
		FROM stock WHERE product_id = $1 ORDER BY store_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.StoreID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
