package command

import (
	"context"
	"time"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// stockAuditor appends an audit entry when an update moved the stock and
// announces the change. Product and audit writes are sequential, not atomic.
type stockAuditor struct {
	logs      domain.InventoryLogRepository
	publisher domain.StockEventPublisher
}

func (a stockAuditor) record(ctx context.Context, productID uint, oldStock, newStock int, actor string, at time.Time) error {
	if oldStock == newStock {
		return nil
	}

	entry := &domain.InventoryLog{
		ProductID: productID,
		OldStock:  oldStock,
		NewStock:  newStock,
		ChangedBy: actor,
		Timestamp: at,
	}
	if err := a.logs.Append(ctx, entry); err != nil {
		return err
	}

	if a.publisher == nil {
		return nil
	}
	change := domain.StockChange{
		ProductID: productID,
		OldStock:  oldStock,
		NewStock:  newStock,
		ChangedBy: actor,
		ChangedAt: at,
	}
	if err := a.publisher.PublishStockChanged(ctx, change); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("product_id", productID).
			Msg("Failed to publish stock change")
	}
	return nil
}
