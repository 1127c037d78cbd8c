package command

import (
	"math"
	"strconv"
	"strings"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// ProductFields carries the mutable product fields as received from a client.
// Stock is kept as text so that "missing" and "not a number" can be told apart.
type ProductFields struct {
	Name     string
	Unit     string
	Category string
	Brand    string
	Stock    string
	Status   string
	Image    string
}

// validated holds ProductFields after validation
type validated struct {
	name, unit, category, brand, status, image string
	stock                                      int
}

// validate checks the required fields in a fixed order and reports the first failure
func (f ProductFields) validate() (validated, error) {
	v := validated{
		name:     strings.TrimSpace(f.Name),
		unit:     strings.TrimSpace(f.Unit),
		category: strings.TrimSpace(f.Category),
		brand:    strings.TrimSpace(f.Brand),
		status:   strings.TrimSpace(f.Status),
		image:    strings.TrimSpace(f.Image),
	}

	required := []struct {
		field, value string
	}{
		{"name", v.name},
		{"unit", v.unit},
		{"category", v.category},
		{"brand", v.brand},
		{"stock", strings.TrimSpace(f.Stock)},
	}
	for _, r := range required {
		if r.value == "" {
			return v, domain.NewValidationError(r.field, "is required")
		}
	}

	stock, err := parseStock(f.Stock)
	if err != nil {
		return v, err
	}
	v.stock = stock

	if v.status == "" {
		return v, domain.NewValidationError("status", "is required")
	}
	return v, nil
}

// parseStock accepts any integral number >= 0, including forms such as "5.0"
func parseStock(raw string) (int, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return 0, domain.NewValidationError("stock", "must be a non-negative integer")
	}
	return int(n), nil
}

func validateID(id uint) error {
	if id == 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	return nil
}

func actorOrDefault(actor string) string {
	if actor = strings.TrimSpace(actor); actor != "" {
		return actor
	}
	return domain.DefaultActor
}
