package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

// Classifier decide si un producto está por debajo de su umbral efectivo de
// reorden. Resolución del umbral: el override explícito (si viene) gana para
// todos los productos de la llamada; si no, cada producto usa su propio
// ReorderLevel. No se soporta mezclar ambos en un mismo lote.
type Classifier struct {
	products   repository.ProductRepository
	aggregator *AggregationEngine
}

// NewClassifier construye el clasificador.
func NewClassifier(products repository.ProductRepository, aggregator *AggregationEngine) *Classifier {
	return &Classifier{products: products, aggregator: aggregator}
}

// effectiveThreshold resuelve la precedencia override > ReorderLevel propio.
func effectiveThreshold(product *entity.Product, override *int64) int64 {
	if override != nil {
		return *override
	}
	return product.ReorderLevel
}

// Classify evalúa un producto contra su umbral efectivo.
// IsLow usa <= y no <: el nivel de reorden es el último punto seguro para
// pedir, no el primero inseguro.
func (c *Classifier) Classify(ctx context.Context, product *entity.Product, override *int64) (entity.LowStockSignal, error) {
	if override != nil && *override < 0 {
		return entity.LowStockSignal{}, domain.ErrInvalidThreshold
	}
	total, err := c.aggregator.TotalStock(ctx, product.ID)
	if err != nil {
		return entity.LowStockSignal{}, err
	}
	threshold := effectiveThreshold(product, override)
	return entity.LowStockSignal{
		ProductID:          product.ID,
		TotalStock:         total,
		EffectiveThreshold: threshold,
		IsLow:              total <= threshold,
	}, nil
}

// ClassifyAll evalúa todos los productos del catálogo en un lote. El resultado
// va ordenado por total ascendente (empates por id de producto) para que los
// más agotados salgan primero.
func (c *Classifier) ClassifyAll(ctx context.Context, override *int64) ([]entity.LowStockSignal, error) {
	if override != nil && *override < 0 {
		return nil, domain.ErrInvalidThreshold
	}
	rows, err := c.products.ListWithTotalStock(ctx)
	if err != nil {
		return nil, err
	}

	signals := make([]entity.LowStockSignal, 0, len(rows))
	for _, row := range rows {
		product := row.Product
		threshold := effectiveThreshold(&product, override)
		signals = append(signals, entity.LowStockSignal{
			ProductID:          product.ID,
			TotalStock:         row.TotalStock,
			EffectiveThreshold: threshold,
			IsLow:              row.TotalStock <= threshold,
		})
	}

	// El repositorio ya ordena, pero el orden es contrato del clasificador:
	// se reordena aquí para no depender del adaptador.
	sort.SliceStable(signals, func(i, j int) bool {
		if signals[i].TotalStock != signals[j].TotalStock {
			return signals[i].TotalStock < signals[j].TotalStock
		}
		return signals[i].ProductID < signals[j].ProductID
	})

	return signals, nil
}
