package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// ProductUseCase CRUD de catálogo. Es un colaborador del núcleo: nunca toca
// cantidades (eso es del libro de stock), solo datos descriptivos y precios.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// Create valida unicidad de código de barras y nombre, y persiste.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Barcode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.productRepo.GetByBarcode(in.Barcode); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.productRepo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Product{
		ID:         uuid.New().String(),
		Barcode:    in.Barcode,
		Name:       in.Name,
		Category:   in.Category,
		Brand:      in.Brand,
		Unit:       in.Unit,
		Cost:       in.Cost,
		Price:      in.Price,
		Components: in.Components,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, false)
}

// GetByID obtiene un producto con su stock por tienda.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return uc.toResponse(p, true)
}

// GetByBarcode busca por código de barras (lectura de escáner en caja).
func (uc *ProductUseCase) GetByBarcode(code string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByBarcode(code)
	if err != nil || p == nil {
		return nil, err
	}
	return uc.toResponse(p, true)
}

// List lista productos; con q no vacío filtra por nombre sin distinguir
// tildes ni mayúsculas (búsqueda de mostrador). El repositorio filtra antes
// de paginar: Total es el conjunto filtrado completo, no la página.
func (uc *ProductUseCase) List(q string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	items, total, err := uc.productRepo.List(q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: []dto.ProductResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, p := range items {
		resp, err := uc.toResponse(p, false)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

// Update actualiza campos presentes; valida unicidad si cambian barcode o nombre.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	if in.Barcode != nil && *in.Barcode != p.Barcode {
		if existing, _ := uc.productRepo.GetByBarcode(*in.Barcode); existing != nil {
			return nil, domain.ErrDuplicate
		}
		p.Barcode = *in.Barcode
	}
	if in.Name != nil && *in.Name != p.Name {
		if existing, _ := uc.productRepo.GetByName(*in.Name); existing != nil {
			return nil, domain.ErrDuplicate
		}
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Cost != nil {
		p.Cost = *in.Cost
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Components != nil {
		p.Components = in.Components
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, true)
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

func (uc *ProductUseCase) toResponse(p *entity.Product, withStocks bool) (*dto.ProductResponse, error) {
	resp := &dto.ProductResponse{
		ID:          p.ID,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Unit:        p.Unit,
		Cost:        p.Cost,
		Price:       p.Price,
		GlobalStock: p.GlobalStock,
		Components:  p.Components,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if withStocks {
		stocks, err := uc.stockRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		for _, s := range stocks {
			resp.Stocks = append(resp.Stocks, dto.StoreStock{StoreID: s.StoreID, Quantity: s.Quantity})
		}
	}
	return resp, nil
}
