package command

// Handlers groups the product command handlers
type Handlers struct {
	Create      *CreateProductHandler
	Update      *UpdateProductHandler
	UpdateStock *UpdateStockHandler
	Delete      *DeleteProductHandler
	Import      *ImportProductsHandler
}

// NewHandlers groups the given handlers
func NewHandlers(
	create *CreateProductHandler,
	update *UpdateProductHandler,
	updateStock *UpdateStockHandler,
	del *DeleteProductHandler,
	imp *ImportProductsHandler,
) *Handlers {
	return &Handlers{
		Create:      create,
		Update:      update,
		UpdateStock: updateStock,
		Delete:      del,
		Import:      imp,
	}
}
