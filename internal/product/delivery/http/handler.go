package http

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/pkg/logger"
)

const defaultMaxUploadMemory = 32 << 20

// ImportPath is the bulk import route, exempt from the request timeout
const ImportPath = "/api/products/import"

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	commands *command.Handlers
	queries  *query.Handlers
	repo     domain.ProductRepository

	maxUploadMemory int64

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
	importRows     *prometheus.CounterVec
}

// NewProductHandler creates a new product handler. Metrics are registered on reg.
func NewProductHandler(
	commands *command.Handlers,
	queries *query.Handlers,
	repo domain.ProductRepository,
	reg prometheus.Registerer,
) *ProductHandler {
	factory := promauto.With(reg)

	return &ProductHandler{
		commands:        commands,
		queries:         queries,
		repo:            repo,
		maxUploadMemory: defaultMaxUploadMemory,
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_service_requests_total",
				Help: "Total number of requests to inventory service",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_service_request_duration_seconds",
				Help:    "Duration of inventory service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		requestSummary: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "inventory_service_request_duration_summary",
				Help: "Summary of request durations with percentiles (client-side quantiles)",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		totalProducts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "inventory_service_total_products",
				Help: "Total number of products in the system",
			},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_service_import_rows_total",
				Help: "CSV import rows by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Response is the JSON envelope of every non-CSV response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RouteConfig controls how mutating routes are guarded
type RouteConfig struct {
	// WriteGuard wraps every mutating route; nil means OptionalAuthMiddleware
	WriteGuard      func(http.HandlerFunc) http.HandlerFunc
	MaxUploadMemory int64
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router, cfg RouteConfig) {
	guard := cfg.WriteGuard
	if guard == nil {
		guard = OptionalAuthMiddleware
	}
	if cfg.MaxUploadMemory > 0 {
		h.maxUploadMemory = cfg.MaxUploadMemory
	}

	// Fixed paths first so they are not captured by {id}
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/search", h.metricsMiddleware("/api/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/export", h.metricsMiddleware("/api/products/export", h.ExportProducts)).Methods("GET")
	router.HandleFunc(ImportPath, h.metricsMiddleware(ImportPath, guard(h.ImportProducts))).Methods("POST")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", guard(h.CreateProduct))).Methods("POST")

	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", guard(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", guard(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/stock", h.metricsMiddleware("/api/products/{id}/stock", guard(h.UpdateStock))).Methods("PATCH")
	router.HandleFunc("/api/products/{id}/history", h.metricsMiddleware("/api/products/{id}/history", h.GetHistory)).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{Category: r.URL.Query().Get("category")}

	products, err := h.queries.List.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, r, err, "Failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// SearchProducts handles GET /api/products/search?q=
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("q")
	if fragment == "" {
		fragment = r.URL.Query().Get("name")
	}

	products, err := h.queries.Search.Handle(r.Context(), query.SearchProductsQuery{Name: fragment})
	if err != nil {
		h.respondError(w, r, err, "Failed to search products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, r, err, "Invalid product ID")
		return
	}

	product, err := h.queries.Get.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to get product")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.commands.Create.Handle(r.Context(), command.CreateProductCommand{Fields: req.fields()})
	if err != nil {
		h.respondError(w, r, err, "Failed to create product")
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, r, err, "Invalid product ID")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:     id,
		Fields: req.fields(),
		Actor:  ActorFromContext(r.Context()),
	}

	product, err := h.commands.Update.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// UpdateStock handles PATCH /api/products/{id}/stock
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, r, err, "Invalid product ID")
		return
	}

	var req struct {
		Stock fieldValue `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.UpdateStockCommand{
		ProductID: id,
		Stock:     string(req.Stock),
		Actor:     ActorFromContext(r.Context()),
	}

	product, err := h.commands.UpdateStock.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err, "Failed to update stock")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, r, err, "Invalid product ID")
		return
	}

	if err := h.commands.Delete.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		h.respondError(w, r, err, "Failed to delete product")
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// GetHistory handles GET /api/products/{id}/history
func (h *ProductHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, r, err, "Invalid product ID")
		return
	}

	logs, err := h.queries.History.Handle(r.Context(), query.GetHistoryQuery{ProductID: id})
	if err != nil {
		h.respondError(w, r, err, "Failed to get inventory history")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: logs})
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queries.Stats.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		h.respondError(w, r, err, "Failed to get statistics")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// ImportProducts handles POST /api/products/import (multipart field "file")
func (h *ProductHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadMemory); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "CSV file is required"})
		return
	}
	// Spilled upload parts live in temp files until removed
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "CSV file is required"})
		return
	}
	defer file.Close()

	summary, err := h.commands.Import.Handle(r.Context(), command.ImportProductsCommand{Source: file})
	if err != nil {
		h.respondError(w, r, err, "Failed to import products")
		return
	}

	h.importRows.WithLabelValues("added").Add(float64(summary.Added))
	h.importRows.WithLabelValues("skipped").Add(float64(summary.Skipped))
	h.importRows.WithLabelValues("duplicate").Add(float64(len(summary.Duplicates)))
	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Import completed",
		Data:    summary,
	})
}

// ExportProducts handles GET /api/products/export
func (h *ProductHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, err := h.queries.Export.Handle(r.Context(), query.ExportProductsQuery{}, &buf); err != nil {
		h.respondError(w, r, err, "Failed to export products")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// RegisterHealthCheck registers health check endpoint
func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// updateProductsMetric updates the total products gauge
func (h *ProductHandler) updateProductsMetric(r *http.Request) {
	count, err := h.repo.Count(r.Context())
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondError maps domain errors to status codes. Storage details are logged, not returned.
func (h *ProductHandler) respondError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status := http.StatusInternalServerError
	message := action

	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = "Product not found"
	}

	event := logger.Warn(r.Context())
	if status >= http.StatusInternalServerError {
		event = logger.Error(r.Context())
	}
	event.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg(action)

	respondJSON(w, status, Response{Success: false, Error: message})
}

// parseID reads the {id} route variable
func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return uint(id), nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
