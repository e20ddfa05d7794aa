package inventory

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/multibodega-api/internal/application/dto"
	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

// Service es la fachada del motor de inventario: compone ledger, motor de
// agregación y clasificador. Es el único punto de entrada que los handlers
// HTTP deben llamar; no expone internals del ledger ni de la agregación.
// Aquí solo hay normalización de entrada, nada más de lógica de negocio.
type Service struct {
	ledger     repository.StockRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	aggregator *AggregationEngine
	classifier *Classifier
}

// NewService construye la fachada.
func NewService(
	ledger repository.StockRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
) *Service {
	aggregator := NewAggregationEngine(ledger)
	return &Service{
		ledger:     ledger,
		products:   products,
		warehouses: warehouses,
		aggregator: aggregator,
		classifier: NewClassifier(products, aggregator),
	}
}

// ReportStock registra la cantidad actual de un producto en una bodega.
// La cantidad negativa se rechaza aquí, antes de tocar el store; el upsert
// del ledger es atómico (insert-or-update en una operación).
func (s *Service) ReportStock(ctx context.Context, productID, warehouseID, quantity int64) error {
	if productID <= 0 || warehouseID <= 0 {
		return domain.ErrInvalidInput
	}
	if quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	return s.ledger.Upsert(ctx, productID, warehouseID, quantity)
}

// GetProductView devuelve producto + total agregado + desglose por bodega.
func (s *Service) GetProductView(ctx context.Context, productID int64) (*dto.ProductStockView, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	total, err := s.aggregator.TotalStock(ctx, productID)
	if err != nil {
		return nil, err
	}
	items, err := s.ledger.ListByProductWithWarehouse(ctx, productID)
	if err != nil {
		return nil, err
	}
	perWarehouse := make([]dto.ProductStockItem, 0, len(items))
	for _, it := range items {
		perWarehouse = append(perWarehouse, dto.ProductStockItem{
			WarehouseID:   it.WarehouseID,
			WarehouseName: it.WarehouseName,
			Location:      it.Location,
			Quantity:      it.Quantity,
			UpdatedAt:     it.UpdatedAt,
		})
	}
	return &dto.ProductStockView{
		Product:      toProductResponse(product),
		TotalStock:   total,
		PerWarehouse: perWarehouse,
	}, nil
}

// GetWarehouseView devuelve bodega + total de unidades + registros del ledger.
func (s *Service) GetWarehouseView(ctx context.Context, warehouseID int64) (*dto.WarehouseStockView, error) {
	warehouse, err := s.warehouses.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	total, err := s.aggregator.TotalItems(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	items, err := s.ledger.ListByWarehouseWithProduct(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	records := make([]dto.WarehouseStockItem, 0, len(items))
	for _, it := range items {
		records = append(records, dto.WarehouseStockItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			UpdatedAt:   it.UpdatedAt,
		})
	}
	return &dto.WarehouseStockView{
		Warehouse:  toWarehouseResponse(warehouse),
		TotalItems: total,
		Records:    records,
	}, nil
}

// GetLowStock clasifica todos los productos. rawThreshold viene del query
// string: vacío = sin override (cada producto usa su ReorderLevel); un valor
// no numérico o negativo se rechaza con ErrInvalidThreshold.
func (s *Service) GetLowStock(ctx context.Context, rawThreshold string) ([]dto.LowStockSignalResponse, error) {
	override, err := parseThreshold(rawThreshold)
	if err != nil {
		return nil, err
	}
	signals, err := s.classifier.ClassifyAll(ctx, override)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockSignalResponse, 0, len(signals))
	for _, sig := range signals {
		out = append(out, toLowStockResponse(sig))
	}
	return out, nil
}

// parseThreshold coerciona el umbral del query string a *int64.
func parseThreshold(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || t < 0 {
		return nil, domain.ErrInvalidThreshold
	}
	return &t, nil
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

func toLowStockResponse(sig entity.LowStockSignal) dto.LowStockSignalResponse {
	return dto.LowStockSignalResponse{
		ProductID:          sig.ProductID,
		TotalStock:         sig.TotalStock,
		EffectiveThreshold: sig.EffectiveThreshold,
		IsLow:              sig.IsLow,
	}
}
