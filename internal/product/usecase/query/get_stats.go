package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// GetStatsQuery represents the query to get product statistics
type GetStatsQuery struct{}

// ProductStats represents product statistics
type ProductStats struct {
	TotalProducts   int64 `json:"totalProducts"`
	TotalStock      int64 `json:"totalStock"`
	OutOfStock      int64 `json:"outOfStock"`
	TotalCategories int64 `json:"totalCategories"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*ProductStats, error) {
	products, err := h.repo.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	stats := &ProductStats{TotalProducts: int64(len(products))}
	categories := make(map[string]struct{})
	for _, product := range products {
		stats.TotalStock += int64(product.Stock)
		if !product.IsAvailable() {
			stats.OutOfStock++
		}
		categories[product.Category] = struct{}{}
	}
	stats.TotalCategories = int64(len(categories))

	return stats, nil
}
