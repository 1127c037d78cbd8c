package domain

import (
	"context"
	"time"
)

// DefaultActor is recorded as ChangedBy when no authenticated user is known
const DefaultActor = "admin"

// InventoryLog is an immutable record of one stock transition
type InventoryLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"productId" gorm:"not null;index"`
	OldStock  int       `json:"oldStock" gorm:"not null"`
	NewStock  int       `json:"newStock" gorm:"not null"`
	ChangedBy string    `json:"changedBy" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
}

// TableName specifies the table name
func (InventoryLog) TableName() string {
	return "inventory_logs"
}

// InventoryLogRepository defines the contract for the stock audit trail
type InventoryLogRepository interface {
	Append(ctx context.Context, entry *InventoryLog) error
	// FindByProductID returns entries most recent first
	FindByProductID(ctx context.Context, productID uint) ([]InventoryLog, error)
}

// StockChange describes a committed stock transition for downstream consumers
type StockChange struct {
	ProductID uint
	OldStock  int
	NewStock  int
	ChangedBy string
	ChangedAt time.Time
}

// StockEventPublisher announces stock changes outside the service
type StockEventPublisher interface {
	PublishStockChanged(ctx context.Context, change StockChange) error
}
