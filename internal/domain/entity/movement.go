package entity

// Movement un delta firmado de cantidad contra un producto en una tienda.
// Es efímero: nunca se persiste, siempre se aplica como parte de un lote.
type Movement struct {
	ProductID string
	StoreID   string
	Delta     int64 // positivo entrada, negativo salida
}
