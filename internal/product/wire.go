//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/product/delivery/http"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideInventoryLogRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewUpdateStockHandler,
	command.NewDeleteProductHandler,
	command.NewImportProductsHandler,
	command.NewHandlers,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewSearchProductsHandler,
	query.NewGetHistoryHandler,
	query.NewExportProductsHandler,
	query.NewGetStatsHandler,
	query.NewHandlers,
)

// InitializeCommandHandlers wires the write side
func InitializeCommandHandlers(db *gorm.DB, publisher domain.StockEventPublisher) (*command.Handlers, error) {
	wire.Build(RepositorySet, CommandSet)
	return nil, nil
}

// InitializeQueryHandlers wires the read side
func InitializeQueryHandlers(db *gorm.DB) (*query.Handlers, error) {
	wire.Build(RepositorySet, QuerySet)
	return nil, nil
}

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher domain.StockEventPublisher, reg prometheus.Registerer) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewProductHandler,
	)
	return nil, nil
}
