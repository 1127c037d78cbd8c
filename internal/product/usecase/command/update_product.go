package command

import (
	"context"
	"errors"
	"time"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID     uint
	Fields ProductFields
	// Actor is recorded on the audit entry; empty means domain.DefaultActor
	Actor string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo    domain.ProductRepository
	auditor stockAuditor
	now     func() time.Time
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, logs domain.InventoryLogRepository, publisher domain.StockEventPublisher) *UpdateProductHandler {
	return &UpdateProductHandler{
		repo:    repo,
		auditor: stockAuditor{logs: logs, publisher: publisher},
		now:     time.Now,
	}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if err := validateID(cmd.ID); err != nil {
		return nil, err
	}
	v, err := cmd.Fields.validate()
	if err != nil {
		return nil, err
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// The name may only be taken by this product itself
	existing, err := h.repo.FindByName(ctx, v.name)
	switch {
	case err == nil && existing.ID != cmd.ID:
		return nil, domain.NameConflict(v.name)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	oldStock := product.Stock
	now := h.now()

	product.Name = v.name
	product.Unit = v.unit
	product.Category = v.category
	product.Brand = v.brand
	product.Stock = v.stock
	product.Status = v.status
	product.Image = v.image
	product.UpdatedAt = now

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	if err := h.auditor.record(ctx, product.ID, oldStock, product.Stock, actorOrDefault(cmd.Actor), now); err != nil {
		return nil, err
	}

	return h.repo.FindByID(ctx, product.ID)
}
