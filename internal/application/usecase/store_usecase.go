package usecase

import (
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// StoreUseCase lectura del registro de tiendas.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo}
}

// List lista las tiendas.
func (uc *StoreUseCase) List() ([]*entity.Store, error) {
	return uc.storeRepo.List()
}

// GetByID obtiene una tienda.
func (uc *StoreUseCase) GetByID(id string) (*entity.Store, error) {
	return uc.storeRepo.GetByID(id)
}

// Default devuelve la tienda activa predeterminada.
func (uc *StoreUseCase) Default() (*entity.Store, error) {
	return uc.storeRepo.Default()
}
