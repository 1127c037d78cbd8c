package query

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/repository"
	"github.com/tair/inventory-tracker/internal/testutil"
)

type fixture struct {
	products *repository.GormProductRepository
	logs     *repository.GormInventoryLogRepository
	handlers *Handlers
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	products := repository.NewGormProductRepository(db)
	logs := repository.NewGormInventoryLogRepository(db)

	return &fixture{
		products: products,
		logs:     logs,
		clock:    time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		handlers: NewHandlers(
			NewGetProductHandler(products),
			NewListProductsHandler(products),
			NewSearchProductsHandler(products),
			NewGetHistoryHandler(products, logs),
			NewExportProductsHandler(products),
			NewGetStatsHandler(products),
		),
	}
}

func (f *fixture) seed(t *testing.T, name, category string, stock int) *domain.Product {
	t.Helper()
	f.clock = f.clock.Add(time.Minute)
	p := &domain.Product{
		Name: name, Unit: "pcs", Category: category, Brand: "Acme",
		Stock: stock, Status: "In Stock", CreatedAt: f.clock, UpdatedAt: f.clock,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func names(products []domain.Product) []string {
	out := []string{}
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestListProducts(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Hammer", "Tools", 1)
	f.seed(t, "Stapler", "Office", 1)
	f.seed(t, "Saw", "Tools", 1)

	tests := []struct {
		category string
		want     []string
	}{
		{"", []string{"Saw", "Stapler", "Hammer"}},
		{"All", []string{"Saw", "Stapler", "Hammer"}},
		{"Tools", []string{"Saw", "Hammer"}},
		{"Garden", []string{}},
	}
	for _, tt := range tests {
		t.Run("category="+tt.category, func(t *testing.T) {
			products, err := f.handlers.List.Handle(context.Background(), ListProductsQuery{Category: tt.category})
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(products))
		})
	}
}

func TestSearchEmptyMatchesList(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Hammer", "Tools", 1)
	f.seed(t, "Stapler", "Office", 1)

	listed, err := f.handlers.List.Handle(context.Background(), ListProductsQuery{})
	require.NoError(t, err)
	searched, err := f.handlers.Search.Handle(context.Background(), SearchProductsQuery{})
	require.NoError(t, err)

	assert.Equal(t, names(listed), names(searched))

	hits, err := f.handlers.Search.Handle(context.Background(), SearchProductsQuery{Name: "mm"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hammer"}, names(hits))
}

func TestGetProduct(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Hammer", "Tools", 1)

	got, err := f.handlers.Get.Handle(context.Background(), GetProductQuery{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, "Hammer", got.Name)

	_, err = f.handlers.Get.Handle(context.Background(), GetProductQuery{ID: p.ID + 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.handlers.Get.Handle(context.Background(), GetProductQuery{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetHistory(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Hammer", "Tools", 1)

	empty, err := f.handlers.History.Handle(context.Background(), GetHistoryQuery{ProductID: p.ID})
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, f.logs.Append(context.Background(), &domain.InventoryLog{
		ProductID: p.ID, OldStock: 1, NewStock: 4, ChangedBy: "admin", Timestamp: f.clock,
	}))

	history, err := f.handlers.History.Handle(context.Background(), GetHistoryQuery{ProductID: p.ID})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 4, history[0].NewStock)

	_, err = f.handlers.History.Handle(context.Background(), GetHistoryQuery{ProductID: 404})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStats(t *testing.T) {
	f := newFixture(t)

	stats, err := f.handlers.Stats.Handle(context.Background(), GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, &ProductStats{}, stats)

	f.seed(t, "Hammer", "Tools", 3)
	f.seed(t, "Saw", "Tools", 0)
	f.seed(t, "Stapler", "Office", 7)

	stats, err = f.handlers.Stats.Handle(context.Background(), GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, &ProductStats{TotalProducts: 3, TotalStock: 10, OutOfStock: 1, TotalCategories: 2}, stats)
}

func TestExportProducts(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Hammer", "Tools", 3)
	f.seed(t, `Quote "Q"`, "Office", 0)

	var buf bytes.Buffer
	n, err := f.handlers.Export.Handle(context.Background(), ExportProductsQuery{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,unit,category,brand,stock,status,image,createdAt,updatedAt", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `1,"Hammer","pcs","Tools","Acme",3,"In Stock","","2024-06-01T08:01:00.000Z"`), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], `2,"Quote \"Q\"","pcs","Office","Acme",0,`), lines[2])
}
