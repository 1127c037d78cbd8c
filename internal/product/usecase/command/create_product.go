package command

import (
	"context"
	"errors"
	"time"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Fields ProductFields
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
	now  func() time.Time
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, now: time.Now}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	v, err := cmd.Fields.validate()
	if err != nil {
		return nil, err
	}

	if _, err := h.repo.FindByName(ctx, v.name); err == nil {
		return nil, domain.NameConflict(v.name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := h.now()
	product := &domain.Product{
		Name:      v.name,
		Unit:      v.unit,
		Category:  v.category,
		Brand:     v.brand,
		Stock:     v.stock,
		Status:    v.status,
		Image:     v.image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Return what the store holds, not the request echo
	return h.repo.FindByID(ctx, product.ID)
}
