package blobstore_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/blobstore"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

// Los adaptadores serializan contra el almacén de documentos en memoria, que
// pasa por JSON igual que Redis: lo que sale nunca comparte memoria con lo
// que entró.

func TestPurchaseRepo_RoundTrip(t *testing.T) {
	repo := blobstore.NewPurchaseRepository(memory.NewDocumentStore())
	ctx := context.Background()

	// Colección nunca guardada: vacía, sin error.
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)

	p := &entity.Purchase{
		ID:      "c1",
		Date:    "2026-08-29",
		StoreID: "s1",
		Status:  entity.StatusCompleted,
		Items: []entity.PurchaseItem{
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(8), Subtotal: decimal.NewFromInt(80)},
		},
		Total: decimal.NewFromInt(80),
	}
	require.NoError(t, repo.Save(ctx, p))

	got, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.StoreID)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(80)))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitCost.Equal(decimal.NewFromInt(8)))

	// Save con el mismo ID reemplaza, no duplica.
	p.Status = entity.StatusCancelled
	require.NoError(t, repo.Save(ctx, p))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.StatusCancelled, all[0].Status)
}

func TestTransferRepo_RoundTrip(t *testing.T) {
	repo := blobstore.NewTransferRepository(memory.NewDocumentStore())
	ctx := context.Background()

	tr := &entity.Transfer{
		ID:          "t1",
		FromStoreID: "s1",
		ToStoreID:   "s2",
		Status:      entity.StatusCompleted,
		Items:       []entity.TransferItem{{ProductID: "p1", Quantity: 4, UnitCost: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(40)}},
		TotalValue:  decimal.NewFromInt(40),
	}
	require.NoError(t, repo.Save(ctx, tr))
	require.NoError(t, repo.Save(ctx, &entity.Transfer{ID: "t2", FromStoreID: "s2", ToStoreID: "s1", Status: entity.StatusCompleted}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s2", got.ToStoreID)
	assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(40)))
}

func TestPriceRuleRepo_CRUD(t *testing.T) {
	repo := blobstore.NewPriceRuleRepository(memory.NewDocumentStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.PriceRule{ID: "r1", Name: "Margen", Formula: "cost * 1.3"}))
	require.NoError(t, repo.Save(ctx, &entity.PriceRule{ID: "r2", Name: "Lista", Formula: "price", Categories: []string{"bebidas"}}))

	got, err := repo.GetByID(ctx, "r2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"bebidas"}, got.Categories)

	// Reemplazo por ID.
	require.NoError(t, repo.Save(ctx, &entity.PriceRule{ID: "r1", Name: "Margen ajustado", Formula: "cost * 1.4"}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "r1"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "r2", all[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, "r1"), domain.ErrNotFound)
}

func TestCartRepo_RoundTrip(t *testing.T) {
	repo := blobstore.NewCartRepository(memory.NewDocumentStore())
	ctx := context.Background()

	// Nunca guardado: nil, sin error.
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	manual := decimal.NewFromInt(5)
	c := &entity.Cart{
		StoreID: "s1",
		Lines: []entity.CartLine{{
			ProductID:     "p1",
			Name:          "Arroz",
			Quantity:      2,
			OriginalPrice: decimal.NewFromInt(10),
			ManualPrice:   &manual,
			Discount:      &entity.Discount{Type: entity.DiscountPercent, Value: decimal.NewFromInt(10)},
			Price:         decimal.RequireFromString("4.5"),
		}},
	}
	require.NoError(t, repo.Save(ctx, c))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.StoreID)
	require.Len(t, got.Lines, 1)
	line := got.Lines[0]
	require.NotNil(t, line.ManualPrice)
	assert.True(t, line.ManualPrice.Equal(manual))
	require.NotNil(t, line.Discount)
	assert.Equal(t, entity.DiscountPercent, line.Discount.Type)
	assert.True(t, line.Price.Equal(decimal.RequireFromString("4.5")))
}
