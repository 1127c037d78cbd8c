package command

import (
	"context"
	"strings"
	"time"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// UpdateStockCommand represents the command to update product stock
type UpdateStockCommand struct {
	ProductID uint
	Stock     string
	Actor     string
}

// UpdateStockHandler handles stock update command
type UpdateStockHandler struct {
	repo    domain.ProductRepository
	auditor stockAuditor
	now     func() time.Time
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ProductRepository, logs domain.InventoryLogRepository, publisher domain.StockEventPublisher) *UpdateStockHandler {
	return &UpdateStockHandler{
		repo:    repo,
		auditor: stockAuditor{logs: logs, publisher: publisher},
		now:     time.Now,
	}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*domain.Product, error) {
	if err := validateID(cmd.ProductID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.Stock) == "" {
		return nil, domain.NewValidationError("stock", "is required")
	}
	stock, err := parseStock(cmd.Stock)
	if err != nil {
		return nil, err
	}

	product, err := h.repo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	oldStock := product.Stock
	now := h.now()
	product.Stock = stock
	product.UpdatedAt = now

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	if err := h.auditor.record(ctx, product.ID, oldStock, stock, actorOrDefault(cmd.Actor), now); err != nil {
		return nil, err
	}

	return h.repo.FindByID(ctx, product.ID)
}
