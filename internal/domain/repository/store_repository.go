package repository

import "github.com/jhoicas/tienda-pos/internal/domain/entity"

// StoreRepository define el puerto de lectura de tiendas (registro de tiendas).
type StoreRepository interface {
	GetByID(id string) (*entity.Store, error)
	List() ([]*entity.Store, error)
	// Default devuelve la tienda marcada como predeterminada (la activa al abrir sesión).
	Default() (*entity.Store, error)
}
