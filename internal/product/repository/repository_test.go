package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tair/inventory-tracker/internal/product/domain"
	"github.com/tair/inventory-tracker/internal/product/repository"
	"github.com/tair/inventory-tracker/internal/testutil"
)

type ProductRepoTestSuite struct {
	suite.Suite
	ctx      context.Context
	products *repository.GormProductRepository
	logs     *repository.GormInventoryLogRepository
	clock    time.Time
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

// SetupTest gives every test a fresh database
func (s *ProductRepoTestSuite) SetupTest() {
	db := testutil.NewTestDB(s.T())
	s.ctx = context.Background()
	s.products = repository.NewGormProductRepository(db)
	s.logs = repository.NewGormInventoryLogRepository(db)
	s.clock = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *ProductRepoTestSuite) create(name, category string, stock int) *domain.Product {
	s.clock = s.clock.Add(time.Minute)
	p := &domain.Product{
		Name:      name,
		Unit:      "pcs",
		Category:  category,
		Brand:     "Acme",
		Stock:     stock,
		Status:    "In Stock",
		CreatedAt: s.clock,
		UpdatedAt: s.clock,
	}
	require.NoError(s.T(), s.products.Create(s.ctx, p))
	require.NotZero(s.T(), p.ID)
	return p
}

func (s *ProductRepoTestSuite) names(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func (s *ProductRepoTestSuite) TestCreateAndFindByID() {
	created := s.create("Widget", "Tools", 4)

	found, err := s.products.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Widget", found.Name)
	s.Equal("pcs", found.Unit)
	s.Equal(4, found.Stock)
	s.Equal("", found.Image)
	s.True(found.CreatedAt.Equal(created.CreatedAt))
}

func (s *ProductRepoTestSuite) TestFindByIDMissing() {
	_, err := s.products.FindByID(s.ctx, 42)
	s.ErrorIs(err, domain.ErrNotFound)
	s.EqualError(err, "product 42 not found")
}

func (s *ProductRepoTestSuite) TestCreateRejectsCaseInsensitiveDuplicate() {
	s.create("Widget", "Tools", 1)

	dup := &domain.Product{Name: "WIDGET", Unit: "pcs", Category: "Tools", Brand: "Acme", Status: "In Stock"}
	err := s.products.Create(s.ctx, dup)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *ProductRepoTestSuite) TestFindByNameIgnoresCase() {
	created := s.create("Blue Pen", "Office", 3)

	found, err := s.products.FindByName(s.ctx, "blue PEN")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)

	_, err = s.products.FindByName(s.ctx, "Blue")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ProductRepoTestSuite) TestFindAllNewestFirstWithCategory() {
	s.create("A", "Tools", 1)
	s.create("B", "Office", 1)
	s.create("C", "Tools", 1)

	all, err := s.products.FindAll(s.ctx, "")
	s.Require().NoError(err)
	s.Equal([]string{"C", "B", "A"}, s.names(all))

	tools, err := s.products.FindAll(s.ctx, "Tools")
	s.Require().NoError(err)
	s.Equal([]string{"C", "A"}, s.names(tools))

	none, err := s.products.FindAll(s.ctx, "tools")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *ProductRepoTestSuite) TestSearchSubstringCaseInsensitive() {
	s.create("Red Apple", "Food", 1)
	s.create("Pineapple Juice", "Food", 1)
	s.create("Banana", "Food", 1)

	found, err := s.products.Search(s.ctx, "APPLE")
	s.Require().NoError(err)
	s.Equal([]string{"Pineapple Juice", "Red Apple"}, s.names(found))

	all, err := s.products.Search(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *ProductRepoTestSuite) TestSearchNonASCIIName() {
	s.create("Äpfel", "Food", 1)
	s.create("Crème Brûlée", "Food", 1)

	exact, err := s.products.Search(s.ctx, "Äpfel")
	s.Require().NoError(err)
	s.Equal([]string{"Äpfel"}, s.names(exact))

	partial, err := s.products.Search(s.ctx, "PFEL")
	s.Require().NoError(err)
	s.Equal([]string{"Äpfel"}, s.names(partial))

	accented, err := s.products.Search(s.ctx, "ème BR")
	s.Require().NoError(err)
	s.Equal([]string{"Crème Brûlée"}, s.names(accented))
}

func (s *ProductRepoTestSuite) TestSearchTreatsWildcardsLiterally() {
	s.create("100% Cotton", "Textile", 1)
	s.create("1000 Cotton", "Textile", 1)
	s.create("snake_case", "Misc", 1)
	s.create("snakeXcase", "Misc", 1)

	pct, err := s.products.Search(s.ctx, "0%")
	s.Require().NoError(err)
	s.Equal([]string{"100% Cotton"}, s.names(pct))

	under, err := s.products.Search(s.ctx, "e_c")
	s.Require().NoError(err)
	s.Equal([]string{"snake_case"}, s.names(under))
}

func (s *ProductRepoTestSuite) TestFindAllNaturalInsertionOrder() {
	s.create("First", "X", 1)
	s.create("Second", "X", 1)

	products, err := s.products.FindAllNatural(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"First", "Second"}, s.names(products))
}

func (s *ProductRepoTestSuite) TestUpdateOverwritesFields() {
	p := s.create("Widget", "Tools", 1)
	p.Name = "Gadget"
	p.Stock = 0
	p.Image = "gadget.png"
	p.UpdatedAt = p.UpdatedAt.Add(time.Hour)

	s.Require().NoError(s.products.Update(s.ctx, p))

	found, err := s.products.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Gadget", found.Name)
	s.Equal(0, found.Stock)
	s.Equal("gadget.png", found.Image)
	s.True(found.UpdatedAt.Equal(p.UpdatedAt))
	s.True(found.CreatedAt.Equal(p.CreatedAt))
}

func (s *ProductRepoTestSuite) TestUpdateMissingProduct() {
	err := s.products.Update(s.ctx, &domain.Product{ID: 99, Name: "Ghost"})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ProductRepoTestSuite) TestUpdateNameCollision() {
	s.create("Widget", "Tools", 1)
	other := s.create("Gadget", "Tools", 1)

	other.Name = "widget"
	s.ErrorIs(s.products.Update(s.ctx, other), domain.ErrConflict)
}

func (s *ProductRepoTestSuite) TestDeleteRemovesProductAndLogs() {
	p := s.create("Widget", "Tools", 1)
	keep := s.create("Gadget", "Tools", 1)
	s.Require().NoError(s.logs.Append(s.ctx, &domain.InventoryLog{
		ProductID: p.ID, OldStock: 1, NewStock: 2, ChangedBy: "admin", Timestamp: s.clock,
	}))
	s.Require().NoError(s.logs.Append(s.ctx, &domain.InventoryLog{
		ProductID: keep.ID, OldStock: 1, NewStock: 5, ChangedBy: "admin", Timestamp: s.clock,
	}))

	s.Require().NoError(s.products.Delete(s.ctx, p.ID))

	_, err := s.products.FindByID(s.ctx, p.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	logs, err := s.logs.FindByProductID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Empty(logs)

	kept, err := s.logs.FindByProductID(s.ctx, keep.ID)
	s.Require().NoError(err)
	s.Len(kept, 1)

	s.ErrorIs(s.products.Delete(s.ctx, p.ID), domain.ErrNotFound)
}

func (s *ProductRepoTestSuite) TestCount() {
	count, err := s.products.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	s.create("A", "X", 1)
	s.create("B", "X", 1)

	count, err = s.products.Count(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, count)
}

func (s *ProductRepoTestSuite) TestHistoryMostRecentFirst() {
	p := s.create("Widget", "Tools", 0)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	entries := []domain.InventoryLog{
		{ProductID: p.ID, OldStock: 0, NewStock: 5, ChangedBy: "admin", Timestamp: base},
		{ProductID: p.ID, OldStock: 5, NewStock: 3, ChangedBy: "alice", Timestamp: base.Add(2 * time.Hour)},
		{ProductID: p.ID, OldStock: 3, NewStock: 9, ChangedBy: "bob", Timestamp: base.Add(time.Hour)},
		// same instant as the previous entry; higher id wins
		{ProductID: p.ID, OldStock: 9, NewStock: 8, ChangedBy: "carol", Timestamp: base.Add(time.Hour)},
	}
	for i := range entries {
		s.Require().NoError(s.logs.Append(s.ctx, &entries[i]))
	}

	history, err := s.logs.FindByProductID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 4)

	var actors []string
	for _, h := range history {
		actors = append(actors, h.ChangedBy)
	}
	s.Equal([]string{"alice", "carol", "bob", "admin"}, actors)
	s.Equal(5, history[0].OldStock)
	s.Equal(3, history[0].NewStock)
}

func (s *ProductRepoTestSuite) TestHistoryEmpty() {
	p := s.create("Widget", "Tools", 0)

	history, err := s.logs.FindByProductID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.NotNil(history)
	s.Empty(history)
}
