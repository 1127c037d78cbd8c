package query

import (
	"context"
	"io"

	"github.com/tair/inventory-tracker/internal/product/csvio"
	"github.com/tair/inventory-tracker/internal/product/domain"
)

// ExportProductsQuery represents a CSV export of the whole catalogue
type ExportProductsQuery struct{}

// ExportProductsHandler handles export products query
type ExportProductsHandler struct {
	repo domain.ProductRepository
}

// NewExportProductsHandler creates a new export products handler
func NewExportProductsHandler(repo domain.ProductRepository) *ExportProductsHandler {
	return &ExportProductsHandler{repo: repo}
}

// Handle writes every product to out and returns the number of rows written
func (h *ExportProductsHandler) Handle(ctx context.Context, _ ExportProductsQuery, out io.Writer) (int, error) {
	products, err := h.repo.FindAllNatural(ctx)
	if err != nil {
		return 0, err
	}
	if err := csvio.WriteAll(out, products); err != nil {
		return 0, err
	}
	return len(products), nil
}
