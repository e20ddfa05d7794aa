package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/multibodega-api/internal/application/dto"
	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

func validateWarehouseInput(name, location string, capacity int64) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" {
		return domain.ErrInvalidInput
	}
	if capacity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea una bodega nueva.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := validateWarehouseInput(in.Name, in.Location, in.Capacity); err != nil {
		return nil, err
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		Name:         strings.TrimSpace(in.Name),
		Location:     strings.TrimSpace(in.Location),
		Capacity:     in.Capacity,
		ManagerName:  in.ManagerName,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(warehouse)
	return &resp, nil
}

// GetByID obtiene una bodega por ID. nil sin error si no existe.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	resp := toWarehouseResponse(warehouse)
	return &resp, nil
}

// Update actualiza una bodega (reemplazo completo).
func (uc *WarehouseUseCase) Update(ctx context.Context, id int64, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := validateWarehouseInput(in.Name, in.Location, in.Capacity); err != nil {
		return nil, err
	}
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	warehouse.Name = strings.TrimSpace(in.Name)
	warehouse.Location = strings.TrimSpace(in.Location)
	warehouse.Capacity = in.Capacity
	warehouse.ManagerName = in.ManagerName
	warehouse.ContactEmail = in.ContactEmail
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(warehouse)
	return &resp, nil
}

// Delete elimina una bodega; su contribución al agregado desaparece con sus
// registros del ledger (cascada en el store).
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// List lista bodegas con conteo de productos y total de unidades.
func (uc *WarehouseUseCase) List(ctx context.Context) (*dto.WarehouseListResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseListItem, 0, len(rows))
	for _, row := range rows {
		w := row.Warehouse
		items = append(items, dto.WarehouseListItem{
			WarehouseResponse: toWarehouseResponse(&w),
			ProductCount:      row.ProductCount,
			TotalItems:        row.TotalItems,
		})
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:           w.ID,
		Name:         w.Name,
		Location:     w.Location,
		Capacity:     w.Capacity,
		ManagerName:  w.ManagerName,
		ContactEmail: w.ContactEmail,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
