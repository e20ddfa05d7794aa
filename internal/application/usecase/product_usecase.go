package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/multibodega-api/internal/application/dto"
	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
	"github.com/jhoicas/multibodega-api/pkg/textnorm"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func validateProductInput(name, sku string, unitPrice decimal.Decimal, reorderLevel int64) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(sku) == "" {
		return domain.ErrInvalidInput
	}
	if unitPrice.IsNegative() || reorderLevel < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un producto nuevo. SKU duplicado devuelve ErrDuplicate;
// categoría inexistente, ErrUnknownReference.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in.Name, in.SKU, in.UnitPrice, in.ReorderLevel); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		SKU:          strings.TrimSpace(in.SKU),
		CategoryID:   in.CategoryID,
		UnitPrice:    in.UnitPrice,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID. nil sin error si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update actualiza un producto (reemplazo completo, semántica PUT).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in.Name, in.SKU, in.UnitPrice, in.ReorderLevel); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.SKU = strings.TrimSpace(in.SKU)
	product.CategoryID = in.CategoryID
	product.UnitPrice = in.UnitPrice
	product.ReorderLevel = in.ReorderLevel
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto; sus registros del ledger caen en cascada
// (integridad referencial del store).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// List lista productos con filtro opcional por categoría y búsqueda sobre
// nombre/SKU. El término de búsqueda se normaliza (minúsculas, sin tildes)
// con el mismo fold con el que el adaptador escribe las columnas de búsqueda,
// así "Café" y "cafe" encuentran lo mismo. Total es el conteo de productos
// que pasan el filtro, no el tamaño de la página devuelta.
func (uc *ProductUseCase) List(ctx context.Context, categoryID *int64, search string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	filter := repository.ProductFilter{
		CategoryID: categoryID,
		Search:     textnorm.Fold(search),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	rows, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(rows))
	for _, row := range rows {
		p := row.Product
		items = append(items, dto.ProductListItem{
			ProductResponse: toProductResponse(&p),
			CategoryName:    row.CategoryName,
			TotalStock:      row.TotalStock,
		})
	}
	return &dto.ProductListResponse{Items: items, Total: int(total)}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		CategoryID:   p.CategoryID,
		UnitPrice:    p.UnitPrice,
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
