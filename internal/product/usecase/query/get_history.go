package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// GetHistoryQuery represents the query for a product's stock history
type GetHistoryQuery struct {
	ProductID uint
}

// GetHistoryHandler handles get history query
type GetHistoryHandler struct {
	products domain.ProductRepository
	logs     domain.InventoryLogRepository
}

// NewGetHistoryHandler creates a new get history handler
func NewGetHistoryHandler(products domain.ProductRepository, logs domain.InventoryLogRepository) *GetHistoryHandler {
	return &GetHistoryHandler{products: products, logs: logs}
}

// Handle returns the audit entries of a product, most recent first.
// A product without stock changes has an empty history.
func (h *GetHistoryHandler) Handle(ctx context.Context, query GetHistoryQuery) ([]domain.InventoryLog, error) {
	if query.ProductID == 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}
	if _, err := h.products.FindByID(ctx, query.ProductID); err != nil {
		return nil, err
	}
	return h.logs.FindByProductID(ctx, query.ProductID)
}
