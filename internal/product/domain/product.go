package domain

import (
	"context"
	"time"
)

const (
	// CategoryAll is the list filter value meaning "no category filter"
	CategoryAll = "All"

	// DefaultStatus is applied to imported rows with an empty status
	DefaultStatus = "In Stock"
)

// Product represents the product entity
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Unit      string    `json:"unit" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null;index"`
	Brand     string    `json:"brand" gorm:"not null"`
	Stock     int       `json:"stock" gorm:"not null;default:0"`
	Status    string    `json:"status" gorm:"not null"`
	Image     string    `json:"image" gorm:"not null;default:''"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime:false"`

	Logs []InventoryLog `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// ProductRepository defines the contract for product data access.
// Lookups that find nothing return an error wrapping ErrNotFound.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	// FindByName matches the whole name case-insensitively
	FindByName(ctx context.Context, name string) (*Product, error)
	// FindAll returns products newest first; an empty category means no filter
	FindAll(ctx context.Context, category string) ([]Product, error)
	// Search returns products whose name contains fragment, newest first
	Search(ctx context.Context, fragment string) ([]Product, error)
	// FindAllNatural returns every product in insertion order
	FindAllNatural(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	// Delete removes the product and its inventory logs
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
