package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/planner"
)

func samplePurchase() *entity.Purchase {
	return &entity.Purchase{
		ID:      "c1",
		StoreID: "s1",
		Items: []entity.PurchaseItem{
			{ProductID: "p1", Quantity: 10},
			{ProductID: "p2", Quantity: 3},
		},
	}
}

func sampleTransfer() *entity.Transfer {
	return &entity.Transfer{
		ID:          "t1",
		FromStoreID: "s1",
		ToStoreID:   "s2",
		Items: []entity.TransferItem{
			{ProductID: "p1", Quantity: 4},
		},
	}
}

// suma de deltas por producto/tienda del lote.
func sum(movs []entity.Movement) map[string]int64 {
	out := make(map[string]int64)
	for _, m := range movs {
		out[m.ProductID+"/"+m.StoreID] += m.Delta
	}
	return out
}

func TestPurchaseCreateYRevert_SonInversos(t *testing.T) {
	p := samplePurchase()

	create := planner.PurchaseCreate(p)
	require.Len(t, create, 2)
	assert.Equal(t, int64(10), sum(create)["p1/s1"])
	assert.Equal(t, int64(3), sum(create)["p2/s1"])

	// create + revert se anulan movimiento a movimiento.
	combined := sum(append(create, planner.PurchaseRevert(p)...))
	for key, delta := range combined {
		assert.Zero(t, delta, "delta neto de %s debe ser cero", key)
	}
}

// Edición con los mismos datos: el lote combinado es neutro para el stock.
func TestPurchaseEdit_MismosDatosEsNeutro(t *testing.T) {
	p := samplePurchase()
	for key, delta := range sum(planner.PurchaseEdit(p, p)) {
		assert.Zero(t, delta, "delta neto de %s debe ser cero", key)
	}
}

// Edición que cambia la tienda destino: reversa contra la original, alta en la nueva.
func TestPurchaseEdit_CambioDeTienda(t *testing.T) {
	original := samplePurchase()
	edited := samplePurchase()
	edited.StoreID = "s2"

	got := sum(planner.PurchaseEdit(original, edited))
	assert.Equal(t, int64(-10), got["p1/s1"])
	assert.Equal(t, int64(10), got["p1/s2"])
	assert.Equal(t, int64(-3), got["p2/s1"])
	assert.Equal(t, int64(3), got["p2/s2"])
}

// Un traslado siempre suma cero entre tiendas.
func TestTransferCreate_SumaCero(t *testing.T) {
	tr := sampleTransfer()
	movs := planner.TransferCreate(tr)
	require.Len(t, movs, 2)

	var total int64
	for _, m := range movs {
		total += m.Delta
	}
	assert.Zero(t, total)

	got := sum(movs)
	assert.Equal(t, int64(-4), got["p1/s1"])
	assert.Equal(t, int64(4), got["p1/s2"])
}

func TestTransferRevert_DevuelveAlOrigen(t *testing.T) {
	tr := sampleTransfer()
	got := sum(planner.TransferRevert(tr))
	assert.Equal(t, int64(4), got["p1/s1"])
	assert.Equal(t, int64(-4), got["p1/s2"])
}

func TestTransferEdit_CambioDeDestino(t *testing.T) {
	original := sampleTransfer()
	edited := sampleTransfer()
	edited.ToStoreID = "s3"

	got := sum(planner.TransferEdit(original, edited))
	// La reversa devuelve al origen lo que el alta vuelve a sacar: neto cero.
	assert.Zero(t, got["p1/s1"])
	assert.Equal(t, int64(-4), got["p1/s2"])
	assert.Equal(t, int64(4), got["p1/s3"])
}

// Checkout genera un movimiento negativo por línea en la tienda activa.
func TestCheckout(t *testing.T) {
	lines := []entity.CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}
	got := sum(planner.Checkout(lines, "s1"))
	assert.Equal(t, int64(-2), got["p1/s1"])
	assert.Equal(t, int64(-1), got["p2/s1"])
}
