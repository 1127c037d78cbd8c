package query

import (
	"context"
	"strings"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// ListProductsQuery represents the query to list all products
type ListProductsQuery struct {
	Category string // Optional: exact match; "All" or empty lists everything
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query, newest first
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	category := strings.TrimSpace(query.Category)
	if category == domain.CategoryAll {
		category = ""
	}
	return h.repo.FindAll(ctx, category)
}
