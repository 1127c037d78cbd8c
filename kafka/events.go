package kafka

import "time"

// StockChangedEvent is published after a product's stock moved
type StockChangedEvent struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	ProductID uint      `json:"productId"`
	OldStock  int       `json:"oldStock"`
	NewStock  int       `json:"newStock"`
	ChangedBy string    `json:"changedBy"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockChanged = "product.stock_changed"
)

// Kafka topics
const (
	TopicStockChanged = "product-stock-changed"
)
