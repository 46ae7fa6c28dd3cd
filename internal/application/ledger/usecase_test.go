package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

func newCatalog(t *testing.T) *memory.Catalog {
	t.Helper()
	cat := memory.NewCatalog()
	require.NoError(t, cat.Create(&entity.Product{ID: "p1", Name: "Arroz"}))
	require.NoError(t, cat.Create(&entity.Product{ID: "p2", Name: "Café"}))
	return cat
}

func stockOf(t *testing.T, cat *memory.Catalog, productID, storeID string) int64 {
	t.Helper()
	s, err := cat.Get(productID, storeID)
	require.NoError(t, err)
	return s.Quantity
}

func globalOf(t *testing.T, cat *memory.Catalog, productID string) int64 {
	t.Helper()
	p, err := cat.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.GlobalStock
}

// Un lote toca varias tiendas y el global queda como la suma de todas.
func TestApply_GlobalEsSumaDeTiendas(t *testing.T) {
	cat := newCatalog(t)
	l := ledger.NewStockLedger(cat)

	err := l.Apply(context.Background(), []entity.Movement{
		{ProductID: "p1", StoreID: "s1", Delta: 10},
		{ProductID: "p1", StoreID: "s2", Delta: 4},
		{ProductID: "p2", StoreID: "s1", Delta: 7},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), stockOf(t, cat, "p1", "s1"))
	assert.Equal(t, int64(4), stockOf(t, cat, "p1", "s2"))
	assert.Equal(t, int64(14), globalOf(t, cat, "p1"))
	assert.Equal(t, int64(7), globalOf(t, cat, "p2"))
}

// Movimientos repetidos del mismo producto/tienda se pliegan antes de aplicar.
func TestApply_PliegaMovimientosPorTienda(t *testing.T) {
	cat := newCatalog(t)
	l := ledger.NewStockLedger(cat)

	// Mismo producto y tienda tres veces: +5 -2 +1 = +4.
	err := l.Apply(context.Background(), []entity.Movement{
		{ProductID: "p1", StoreID: "s1", Delta: 5},
		{ProductID: "p1", StoreID: "s1", Delta: -2},
		{ProductID: "p1", StoreID: "s1", Delta: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), stockOf(t, cat, "p1", "s1"))
	assert.Equal(t, int64(4), globalOf(t, cat, "p1"))
}

// El libro es contabilidad, no reserva: el negativo se registra sin error.
func TestApply_NegativoNoSeRechaza(t *testing.T) {
	cat := newCatalog(t)
	cat.SeedStock("p1", "s1", 2)
	l := ledger.NewStockLedger(cat)

	require.NoError(t, l.ApplyOne(context.Background(), "p1", "s1", -5))

	assert.Equal(t, int64(-3), stockOf(t, cat, "p1", "s1"))
	assert.Equal(t, int64(-3), globalOf(t, cat, "p1"))
}

// Mover contra una tienda sin registro previo crea la entrada desde cero.
func TestApply_CreaEntradaDeTienda(t *testing.T) {
	cat := newCatalog(t)
	l := ledger.NewStockLedger(cat)

	require.NoError(t, l.ApplyOne(context.Background(), "p1", "s9", 3))

	assert.Equal(t, int64(3), stockOf(t, cat, "p1", "s9"))
	assert.Equal(t, int64(3), globalOf(t, cat, "p1"))
}

// Un traslado (suma cero) no altera el global pero sí los saldos por tienda.
func TestApply_TrasladoNoAlteraGlobal(t *testing.T) {
	cat := newCatalog(t)
	cat.SeedStock("p1", "s1", 10)
	l := ledger.NewStockLedger(cat)

	err := l.Apply(context.Background(), []entity.Movement{
		{ProductID: "p1", StoreID: "s1", Delta: -4},
		{ProductID: "p1", StoreID: "s2", Delta: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), stockOf(t, cat, "p1", "s1"))
	assert.Equal(t, int64(4), stockOf(t, cat, "p1", "s2"))
	assert.Equal(t, int64(10), globalOf(t, cat, "p1"))
}

func TestApply_LoteVacioEsNoOp(t *testing.T) {
	cat := newCatalog(t)
	l := ledger.NewStockLedger(cat)

	assert.NoError(t, l.Apply(context.Background(), nil))
	assert.NoError(t, l.Apply(context.Background(), []entity.Movement{}))
}
