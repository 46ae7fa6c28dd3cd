// Package memory implementa adaptadores en memoria de los puertos de
// persistencia. Sirven para tests del núcleo y para correr la aplicación sin
// servicios externos; replican la semántica de los adaptadores reales
// (documentos reescritos completos, totales globales derivados).
package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore almacén de documentos JSON en memoria. Serializa de verdad:
// un documento cargado nunca comparte memoria con el guardado, igual que Redis.
type DocumentStore struct {
	docs map[string][]byte
}

// NewDocumentStore construye el almacén vacío.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string][]byte)}
}

// Load deserializa el documento de key en v. Clave ausente = colección vacía.
func (s *DocumentStore) Load(_ context.Context, key string, v any) (bool, error) {
	raw, ok := s.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save serializa v y reescribe el documento completo.
func (s *DocumentStore) Save(_ context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.docs[key] = payload
	return nil
}
