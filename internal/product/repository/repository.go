package repository

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// likeEscaper makes user input match literally inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormProductRepository implements domain.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// AutoMigrate creates both tables and the case-insensitive name index.
// SQLite's LOWER folds ASCII only; use postgres for full Unicode case folding.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Product{}, &domain.InventoryLog{}); err != nil {
		return err
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name_lower ON products (LOWER(name))").Error
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := startSpan(ctx, "repository.Create",
		attribute.String("product.name", product.Name),
		attribute.String("product.category", product.Category),
		attribute.Int("product.stock", product.Stock),
	)
	defer func() { endSpan(span, err) }()

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NameConflict(product.Name)
		}
		return domain.StorageError("create product", err)
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// FindByID retrieves a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "repository.FindByID", attribute.Int("product.id", int(id)))
	defer func() { endSpan(span, err) }()

	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ProductNotFound(id)
		}
		return nil, domain.StorageError("find product", err)
	}
	return &product, nil
}

// FindByName retrieves a product whose name equals name ignoring case
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "repository.FindByName", attribute.String("product.name", name))
	defer func() { endSpan(span, err) }()

	var product domain.Product
	err = r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError("find product by name", err)
	}
	return &product, nil
}

// FindAll retrieves products newest first, optionally filtered by exact category
func (r *GormProductRepository) FindAll(ctx context.Context, category string) (_ []domain.Product, err error) {
	ctx, span := startSpan(ctx, "repository.FindAll", attribute.String("query.category", category))
	defer func() { endSpan(span, err) }()

	query := r.db.WithContext(ctx).Order("id DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	products := []domain.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, domain.StorageError("list products", err)
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// Search retrieves products whose name contains fragment ignoring case, newest first
func (r *GormProductRepository) Search(ctx context.Context, fragment string) (_ []domain.Product, err error) {
	ctx, span := startSpan(ctx, "repository.Search", attribute.String("query.fragment", fragment))
	defer func() { endSpan(span, err) }()

	pattern := "%" + likeEscaper.Replace(fragment) + "%"

	products := []domain.Product{}
	err = r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, domain.StorageError("search products", err)
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// FindAllNatural retrieves every product in insertion order
func (r *GormProductRepository) FindAllNatural(ctx context.Context) (_ []domain.Product, err error) {
	ctx, span := startSpan(ctx, "repository.FindAllNatural")
	defer func() { endSpan(span, err) }()

	products := []domain.Product{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, domain.StorageError("list products", err)
	}
	return products, nil
}

// Update overwrites all mutable columns of product
func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := startSpan(ctx, "repository.Update",
		attribute.Int("product.id", int(product.ID)),
		attribute.String("product.name", product.Name),
		attribute.Int("product.stock", product.Stock),
	)
	defer func() { endSpan(span, err) }()

	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Select("name", "unit", "category", "brand", "stock", "status", "image", "updated_at").
		Updates(product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NameConflict(product.Name)
		}
		return domain.StorageError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ProductNotFound(product.ID)
	}
	return nil
}

// Delete removes the product and its inventory logs in one transaction
func (r *GormProductRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := startSpan(ctx, "repository.Delete", attribute.Int("product.id", int(id)))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&domain.InventoryLog{}).Error; err != nil {
			return domain.StorageError("delete inventory logs", err)
		}
		result := tx.Delete(&domain.Product{}, id)
		if result.Error != nil {
			return domain.StorageError("delete product", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ProductNotFound(id)
		}
		return nil
	})
}

// Count returns the total number of products
func (r *GormProductRepository) Count(ctx context.Context) (_ int64, err error) {
	ctx, span := startSpan(ctx, "repository.Count")
	defer func() { endSpan(span, err) }()

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, domain.StorageError("count products", err)
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
