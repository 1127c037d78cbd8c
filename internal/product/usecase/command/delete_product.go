package command

import (
	"context"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command. Audit entries go with the product.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := validateID(cmd.ID); err != nil {
		return err
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		return err
	}

	return h.repo.Delete(ctx, cmd.ID)
}
