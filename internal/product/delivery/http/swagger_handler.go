package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router) {
	router.PathPrefix("/swagger/").Handler(SwaggerHandler())
}

// SwaggerHandler serves the Swagger UI backed by the registered doc
func SwaggerHandler() http.Handler {
	return httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product. Names are unique case-insensitively.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,unit=string,category=string,brand=string,stock=int,status=string,image=string} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=domain.Product}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description List products, newest first. Category "All" or empty disables filtering.
// @Tags Products
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=[]domain.Product}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// SearchProducts godoc
// @Summary Search products by name
// @Description Case-insensitive substring match on product name
// @Tags Products
// @Produce json
// @Param q query string false "Name fragment"
// @Success 200 {object} object{success=bool,data=[]domain.Product}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/search [get]
func (h *ProductHandler) SearchProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=domain.Product}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace all product fields. A stock change is recorded in the audit log.
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,unit=string,category=string,brand=string,stock=int,status=string,image=string} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=domain.Product}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// UpdateStock godoc
// @Summary Update product stock
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{stock=int} true "Stock data"
// @Success 200 {object} object{success=bool,message=string,data=domain.Product}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStockDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and its inventory history
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// GetHistory godoc
// @Summary Get inventory history
// @Description Stock changes of a product, most recent first
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=[]domain.InventoryLog}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id}/history [get]
func (h *ProductHandler) GetHistoryDoc() {}

// ImportProducts godoc
// @Summary Import products from CSV
// @Description Add new products from a CSV file. Existing names are reported as duplicates and left untouched.
// @Tags Import/Export
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} object{success=bool,message=string,data=domain.ImportSummary}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/import [post]
func (h *ProductHandler) ImportProductsDoc() {}

// ExportProducts godoc
// @Summary Export products as CSV
// @Tags Import/Export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/export [get]
func (h *ProductHandler) ExportProductsDoc() {}

// GetStats godoc
// @Summary Get product statistics
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=query.ProductStats}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/stats [get]
func (h *ProductHandler) GetStatsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *ProductHandler) HealthCheckDoc() {}
