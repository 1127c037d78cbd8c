package http

import (
	"encoding/json"

	"github.com/tair/inventory-tracker/internal/product/usecase/command"
)

// fieldValue accepts a JSON string, number or null and keeps its text
type fieldValue string

func (f *fieldValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = fieldValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = fieldValue(n.String())
	return nil
}

// productRequest is the body of create and update requests
type productRequest struct {
	Name     fieldValue `json:"name"`
	Unit     fieldValue `json:"unit"`
	Category fieldValue `json:"category"`
	Brand    fieldValue `json:"brand"`
	Stock    fieldValue `json:"stock"`
	Status   fieldValue `json:"status"`
	Image    fieldValue `json:"image"`
}

func (req productRequest) fields() command.ProductFields {
	return command.ProductFields{
		Name:     string(req.Name),
		Unit:     string(req.Unit),
		Category: string(req.Category),
		Brand:    string(req.Brand),
		Stock:    string(req.Stock),
		Status:   string(req.Status),
		Image:    string(req.Image),
	}
}
