package product

import (
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/repository"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// ProvideInventoryLogRepository provides the inventory log repository
func ProvideInventoryLogRepository(db *gorm.DB) domain.InventoryLogRepository {
	return repository.NewGormInventoryLogRepository(db)
}
