package command

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tair/inventory-tracker/internal/product/csvio"
	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// ImportProductsCommand represents a bulk import of a CSV document
type ImportProductsCommand struct {
	Source io.Reader
}

// ImportProductsHandler reconciles CSV rows against the catalogue
type ImportProductsHandler struct {
	repo domain.ProductRepository
	now  func() time.Time
}

// NewImportProductsHandler creates a new import products handler
func NewImportProductsHandler(repo domain.ProductRepository) *ImportProductsHandler {
	return &ImportProductsHandler{repo: repo, now: time.Now}
}

// Handle executes the import. Rows are processed one at a time in input order
// so a later row sees products inserted by an earlier one. Row problems are
// reported in the summary; only an unreadable stream fails the whole call.
// Once the stream is read the batch runs to completion even if ctx is
// cancelled, so the summary always accounts for every committed row.
func (h *ImportProductsHandler) Handle(ctx context.Context, cmd ImportProductsCommand) (*domain.ImportSummary, error) {
	records, err := csvio.ReadRecords(cmd.Source)
	if err != nil {
		return nil, domain.StorageError("read import file", err)
	}

	ctx = context.WithoutCancel(ctx)
	summary := domain.NewImportSummary()
	for i, rec := range records {
		h.importRow(ctx, summary, i+1, rec)
	}

	logger.Info(ctx).
		Int("rows", len(records)).
		Int("added", summary.Added).
		Int("skipped", summary.Skipped).
		Int("duplicates", len(summary.Duplicates)).
		Msg("Product import finished")

	return summary, nil
}

func (h *ImportProductsHandler) importRow(ctx context.Context, summary *domain.ImportSummary, row int, rec csvio.Record) {
	name := strings.TrimSpace(rec.Name)
	unit := strings.TrimSpace(rec.Unit)
	category := strings.TrimSpace(rec.Category)
	brand := strings.TrimSpace(rec.Brand)
	status := strings.TrimSpace(rec.Status)
	image := strings.TrimSpace(rec.Image)
	stock := lenientStock(rec.Stock)

	if name == "" || unit == "" || category == "" || brand == "" {
		summary.RecordSkipped(row, name, domain.SkipReasonMissingFields)
		return
	}
	if status == "" {
		status = domain.DefaultStatus
	}

	existing, err := h.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		summary.RecordDuplicate(name, existing.ID)
		return
	case !errors.Is(err, domain.ErrNotFound):
		logger.Error(ctx).Err(err).Int("row", row).Msg("Import lookup failed")
		summary.RecordSkipped(row, name, domain.SkipReasonStorage)
		return
	}

	now := h.now()
	product := &domain.Product{
		Name:      name,
		Unit:      unit,
		Category:  category,
		Brand:     brand,
		Stock:     stock,
		Status:    status,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.repo.Create(ctx, product); err != nil {
		logger.Error(ctx).Err(err).Int("row", row).Msg("Import insert failed")
		summary.RecordSkipped(row, name, domain.SkipReasonStorage)
		return
	}
	summary.RecordAdded(product.ID)
}

// lenientStock reads the leading integer of raw, like a permissive parseInt.
// Anything unparseable is 0 and negative values are clamped to 0.
func lenientStock(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
