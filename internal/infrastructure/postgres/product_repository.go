package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Los componentes de combo se guardan como jsonb.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, barcode, name, category, brand, unit, cost, price, global_stock, components, created_at, updated_at`

// Create persiste un nuevo producto. El stock global inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	components, err := marshalComponents(product.Components)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Category, product.Brand, product.Unit,
		product.Cost, product.Price, product.GlobalStock, components, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id = $1", id)
}

// GetByBarcode obtiene un producto por código de barras.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	return r.getBy("barcode = $1", barcode)
}

// GetByName obtiene un producto por nombre exacto (validación de duplicados).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getBy("name = $1", name)
}

func (r *ProductRepo) getBy(where string, arg any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los datos descriptivos, precios y componentes.
// GlobalStock no se toca aquí: solo vía UpdateGlobalStock desde el libro.
func (r *ProductRepo) Update(product *entity.Product) error {
	components, err := marshalComponents(product.Components)
	if err != nil {
		return err
	}
	query := `
		UPDATE products
		SET barcode = $2, name = $3, category = $4, brand = $5, unit = $6,
		    cost = $7, price = $8, components = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Category, product.Brand, product.Unit,
		product.Cost, product.Price, components, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost escribe el costo promedio ponderado.
func (r *ProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	query := `UPDATE products SET cost = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, productID, cost)
	if err != nil {
		return fmt.Errorf("update cost: %w", err)
	}
	return nil
}

// UpdateGlobalStock escribe el stock global derivado (suma por tiendas).
func (r *ProductRepo) UpdateGlobalStock(productID string, total int64) error {
	query := `UPDATE products SET global_stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, productID, total)
	if err != nil {
		return fmt.Errorf("update global stock: %w", err)
	}
	return nil
}

// List pagina el catálogo ordenado por nombre, filtrado por q antes de
// paginar. La coincidencia sin tildes (Product.MatchesQuery) no se expresa en
// SQL: se recorren las filas candidatas y se filtra al escanear; el LIMIT/OFFSET
// aplica recién sobre el conjunto filtrado y total es su tamaño completo.
func (r *ProductRepo) List(q string, limit, offset int) ([]*entity.Product, int, error) {
	if q == "" {
		return r.listPage(limit, offset)
	}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var matched []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		if !p.MatchesQuery(q) {
			continue
		}
		matched = append(matched, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return pageOf(matched, limit, offset), len(matched), nil
}

func (r *ProductRepo) listPage(limit, offset int) ([]*entity.Product, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func pageOf(all []*entity.Product, limit, offset int) []*entity.Product {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// Delete elimina un producto y sus filas de stock.
func (r *ProductRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock rows: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		p          entity.Product
		components []byte
	)
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Category, &p.Brand, &p.Unit,
		&p.Cost, &p.Price, &p.GlobalStock, &components, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(components) > 0 {
		if err := json.Unmarshal(components, &p.Components); err != nil {
			return nil, fmt.Errorf("decode components: %w", err)
		}
	}
	return &p, nil
}

func marshalComponents(components []entity.BundleComponent) ([]byte, error) {
	if len(components) == 0 {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(components)
	if err != nil {
		return nil, fmt.Errorf("encode components: %w", err)
	}
	return b, nil
}
