package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// StockLedger es el único dueño de la mutación de cantidades por tienda.
// Aplica lotes de movimientos de forma atómica y recalcula el stock global
// derivado de cada producto afectado. Es contabilidad, no reserva: un delta
// que deja una tienda en negativo NO se rechaza; advertir el sobregiro es
// responsabilidad del caller.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger construye el libro de stock.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

// Apply aplica el lote completo en una sola transacción. Los movimientos del
// mismo producto se pliegan por tienda antes de recalcular el total global:
// el global se recalcula una sola vez por producto, nunca sobre un valor
// intermedio del lote. Un lote vacío es un no-op.
func (l *StockLedger) Apply(ctx context.Context, movements []entity.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	// Plegado: producto -> tienda -> delta acumulado. Se conserva el orden de
	// primera aparición para que el recorrido sea determinista.
	type productBatch struct {
		id     string
		stores []string
		deltas map[string]int64
	}
	var order []*productBatch
	byProduct := make(map[string]*productBatch)
	for _, m := range movements {
		b, ok := byProduct[m.ProductID]
		if !ok {
			b = &productBatch{id: m.ProductID, deltas: make(map[string]int64)}
			byProduct[m.ProductID] = b
			order = append(order, b)
		}
		if _, seen := b.deltas[m.StoreID]; !seen {
			b.stores = append(b.stores, m.StoreID)
		}
		b.deltas[m.StoreID] += m.Delta
	}

	return l.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		for _, b := range order {
			for _, storeID := range b.stores {
				stock, err := stockRepo.GetForUpdate(b.id, storeID)
				if err != nil {
					return err
				}
				stock.Quantity += b.deltas[storeID]
				stock.UpdatedAt = now
				if err := stockRepo.Upsert(stock); err != nil {
					return err
				}
			}
			total, err := stockRepo.TotalByProduct(b.id)
			if err != nil {
				return err
			}
			if err := productRepo.UpdateGlobalStock(b.id, total); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyOne forma de conveniencia para un solo movimiento.
func (l *StockLedger) ApplyOne(ctx context.Context, productID, storeID string, delta int64) error {
	return l.Apply(ctx, []entity.Movement{{ProductID: productID, StoreID: storeID, Delta: delta}})
}
