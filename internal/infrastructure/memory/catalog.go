package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Catalog)(nil)
	_ repository.StockRepository   = (*Catalog)(nil)
	_ ledger.TxRunner              = (*Catalog)(nil)
)

// Catalog catálogo en memoria: productos y stock por tienda.
// Implementa también ledger.TxRunner: la "transacción" es un callback directo
// sobre sí mismo (sesión única, sin escritores concurrentes).
type Catalog struct {
	products map[string]*entity.Product
	stocks   map[string]map[string]int64 // productID -> storeID -> cantidad
}

// NewCatalog construye el catálogo vacío.
func NewCatalog() *Catalog {
	return &Catalog{
		products: make(map[string]*entity.Product),
		stocks:   make(map[string]map[string]int64),
	}
}

// SeedStock fija directamente una cantidad (estado inicial de un test).
func (c *Catalog) SeedStock(productID, storeID string, qty int64) {
	if c.stocks[productID] == nil {
		c.stocks[productID] = make(map[string]int64)
	}
	c.stocks[productID][storeID] = qty
	if p := c.products[productID]; p != nil {
		var total int64
		for _, q := range c.stocks[productID] {
			total += q
		}
		p.GlobalStock = total
	}
}

// Run implementa ledger.TxRunner sin transacción real.
func (c *Catalog) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(c, c)
}

// ── ProductRepository ─────────────────────────────────────────────────────────

func (c *Catalog) Create(p *entity.Product) error {
	if _, ok := c.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	c.products[p.ID] = &cp
	return nil
}

func (c *Catalog) GetByID(id string) (*entity.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (c *Catalog) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range c.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (c *Catalog) GetByName(name string) (*entity.Product, error) {
	for _, p := range c.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (c *Catalog) Update(p *entity.Product) error {
	existing, ok := c.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.GlobalStock = existing.GlobalStock // el stock global solo cambia vía UpdateGlobalStock
	c.products[p.ID] = &cp
	return nil
}

func (c *Catalog) UpdateCost(productID string, cost decimal.Decimal) error {
	p, ok := c.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Cost = cost
	return nil
}

func (c *Catalog) UpdateGlobalStock(productID string, total int64) error {
	p, ok := c.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.GlobalStock = total
	return nil
}

// List filtra por q antes de paginar; total es el conjunto filtrado completo.
func (c *Catalog) List(q string, limit, offset int) ([]*entity.Product, int, error) {
	matched := make([]*entity.Product, 0, len(c.products))
	for _, p := range c.products {
		if !p.MatchesQuery(q) {
			continue
		}
		cp := *p
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (c *Catalog) Delete(id string) error {
	if _, ok := c.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.products, id)
	delete(c.stocks, id)
	return nil
}

// ── StockRepository ───────────────────────────────────────────────────────────

func (c *Catalog) Get(productID, storeID string) (*entity.Stock, error) {
	qty := c.stocks[productID][storeID]
	return &entity.Stock{ProductID: productID, StoreID: storeID, Quantity: qty}, nil
}

func (c *Catalog) GetForUpdate(productID, storeID string) (*entity.Stock, error) {
	return c.Get(productID, storeID)
}

func (c *Catalog) Upsert(stock *entity.Stock) error {
	if c.stocks[stock.ProductID] == nil {
		c.stocks[stock.ProductID] = make(map[string]int64)
	}
	c.stocks[stock.ProductID][stock.StoreID] = stock.Quantity
	return nil
}

func (c *Catalog) TotalByProduct(productID string) (int64, error) {
	var total int64
	for _, q := range c.stocks[productID] {
		total += q
	}
	return total, nil
}

func (c *Catalog) ListByProduct(productID string) ([]*entity.Stock, error) {
	byStore := c.stocks[productID]
	storeIDs := make([]string, 0, len(byStore))
	for id := range byStore {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)
	out := make([]*entity.Stock, 0, len(storeIDs))
	for _, id := range storeIDs {
		out = append(out, &entity.Stock{ProductID: productID, StoreID: id, Quantity: byStore[id], UpdatedAt: time.Now()})
	}
	return out, nil
}

var _ repository.StoreRepository = (*StoreRegistry)(nil)

// StoreRegistry registro de tiendas en memoria.
type StoreRegistry struct {
	stores map[string]*entity.Store
}

// NewStoreRegistry construye el registro con las tiendas dadas.
func NewStoreRegistry(stores ...*entity.Store) *StoreRegistry {
	reg := &StoreRegistry{stores: make(map[string]*entity.Store)}
	for _, s := range stores {
		reg.stores[s.ID] = s
	}
	return reg
}

// Add registra una tienda.
func (r *StoreRegistry) Add(s *entity.Store) {
	r.stores[s.ID] = s
}

func (r *StoreRegistry) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *StoreRegistry) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Default devuelve la tienda predeterminada; si ninguna está marcada, la primera por nombre.
func (r *StoreRegistry) Default() (*entity.Store, error) {
	all, _ := r.List()
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}
