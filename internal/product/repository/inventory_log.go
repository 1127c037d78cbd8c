package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// GormInventoryLogRepository implements domain.InventoryLogRepository using GORM
type GormInventoryLogRepository struct {
	db *gorm.DB
}

// NewGormInventoryLogRepository creates a new GORM inventory log repository
func NewGormInventoryLogRepository(db *gorm.DB) *GormInventoryLogRepository {
	return &GormInventoryLogRepository{db: db}
}

// Append inserts one audit entry
func (r *GormInventoryLogRepository) Append(ctx context.Context, entry *domain.InventoryLog) (err error) {
	ctx, span := startSpan(ctx, "repository.AppendInventoryLog",
		attribute.Int("product.id", int(entry.ProductID)),
		attribute.Int("stock.old_value", entry.OldStock),
		attribute.Int("stock.new_value", entry.NewStock),
	)
	defer func() { endSpan(span, err) }()

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return domain.StorageError("append inventory log", err)
	}
	return nil
}

// FindByProductID returns the product's audit entries, most recent first
func (r *GormInventoryLogRepository) FindByProductID(ctx context.Context, productID uint) (_ []domain.InventoryLog, err error) {
	ctx, span := startSpan(ctx, "repository.FindInventoryLogs", attribute.Int("product.id", int(productID)))
	defer func() { endSpan(span, err) }()

	logs := []domain.InventoryLog{}
	err = r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&logs).Error
	if err != nil {
		return nil, domain.StorageError("list inventory logs", err)
	}

	span.SetAttributes(attribute.Int("result.count", len(logs)))
	return logs, nil
}
