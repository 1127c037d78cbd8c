package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// SearchProductsQuery represents a case-insensitive name search
type SearchProductsQuery struct {
	Name string
}

// SearchProductsHandler handles search products query
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle returns products whose name contains query.Name, newest first.
// An empty fragment matches every product.
func (h *SearchProductsHandler) Handle(ctx context.Context, query SearchProductsQuery) ([]domain.Product, error) {
	return h.repo.Search(ctx, query.Name)
}
