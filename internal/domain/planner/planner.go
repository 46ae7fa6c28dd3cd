// Package planner traduce acciones de negocio (compra recibida, traslado,
// venta cerrada, edición o reversa de un documento) en listas de movimientos
// firmados para el libro de stock. Funciones puras, sin efectos.
package planner

import "github.com/jhoicas/tienda-pos/internal/domain/entity"

// PurchaseCreate un movimiento +cantidad por ítem en la tienda destino de la compra.
func PurchaseCreate(p *entity.Purchase) []entity.Movement {
	movs := make([]entity.Movement, 0, len(p.Items))
	for _, it := range p.Items {
		movs = append(movs, entity.Movement{ProductID: it.ProductID, StoreID: p.StoreID, Delta: it.Quantity})
	}
	return movs
}

// PurchaseRevert el inverso exacto de PurchaseCreate, contra la tienda
// registrada en el documento original.
func PurchaseRevert(p *entity.Purchase) []entity.Movement {
	movs := make([]entity.Movement, 0, len(p.Items))
	for _, it := range p.Items {
		movs = append(movs, entity.Movement{ProductID: it.ProductID, StoreID: p.StoreID, Delta: -it.Quantity})
	}
	return movs
}

// PurchaseEdit reversa del documento original seguida del alta del nuevo,
// en una sola lista: cada fase usa la tienda de su propio documento
// (la edición puede cambiar la tienda destino).
func PurchaseEdit(original, edited *entity.Purchase) []entity.Movement {
	movs := PurchaseRevert(original)
	return append(movs, PurchaseCreate(edited)...)
}

// TransferCreate por cada ítem: -cantidad en origen y +cantidad en destino.
// La suma de deltas del lote es siempre cero.
func TransferCreate(t *entity.Transfer) []entity.Movement {
	movs := make([]entity.Movement, 0, 2*len(t.Items))
	for _, it := range t.Items {
		movs = append(movs,
			entity.Movement{ProductID: it.ProductID, StoreID: t.FromStoreID, Delta: -it.Quantity},
			entity.Movement{ProductID: it.ProductID, StoreID: t.ToStoreID, Delta: it.Quantity},
		)
	}
	return movs
}

// TransferRevert el inverso: +cantidad en el origen original, -cantidad en el
// destino original.
func TransferRevert(t *entity.Transfer) []entity.Movement {
	movs := make([]entity.Movement, 0, 2*len(t.Items))
	for _, it := range t.Items {
		movs = append(movs,
			entity.Movement{ProductID: it.ProductID, StoreID: t.FromStoreID, Delta: it.Quantity},
			entity.Movement{ProductID: it.ProductID, StoreID: t.ToStoreID, Delta: -it.Quantity},
		)
	}
	return movs
}

// TransferEdit reversa con origen/destino originales seguida del alta con los nuevos.
func TransferEdit(original, edited *entity.Transfer) []entity.Movement {
	movs := TransferRevert(original)
	return append(movs, TransferCreate(edited)...)
}

// Checkout -cantidad en la tienda activa por cada línea del carrito.
// Las líneas ya vienen descompuestas: los combos se expanden a componentes
// al agregarlos, así que aquí solo hay productos simples.
func Checkout(lines []entity.CartLine, storeID string) []entity.Movement {
	movs := make([]entity.Movement, 0, len(lines))
	for _, l := range lines {
		movs = append(movs, entity.Movement{ProductID: l.ProductID, StoreID: storeID, Delta: -l.Quantity})
	}
	return movs
}
