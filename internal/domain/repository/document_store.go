package repository

import "context"

// DocumentStore puerto hacia el almacén clave-valor de blobs JSON: un documento
// por colección lógica, leído completo y reescrito completo en cada mutación.
// No hay escrituras parciales ni incrementales.
type DocumentStore interface {
	// Load deserializa el documento de key en v. Si la clave no existe deja v
	// sin tocar y retorna found=false (colección vacía, no error).
	Load(ctx context.Context, key string, v any) (found bool, err error)
	// Save serializa v y reescribe el documento completo.
	Save(ctx context.Context, key string, v any) error
}
