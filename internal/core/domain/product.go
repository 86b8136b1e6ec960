package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. All fields except ID are updatable through
// ApplyUpdate.
type Product struct {
	ID          string          `json:"id" bson:"_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	Department  string          `json:"department" bson:"department"`
	Category    string          `json:"category" bson:"category"`
	Price       decimal.Decimal `json:"price" bson:"price"`
	Image       string          `json:"image" bson:"image"`
}

// ApplyUpdate applies a partial update. Only keys already present on the
// record are applied; unknown keys and values of the wrong type are silently
// ignored, and the identifier can never be overwritten.
func (p *Product) ApplyUpdate(fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "title":
			if s, ok := value.(string); ok {
				p.Title = s
			}
		case "description":
			if s, ok := value.(string); ok {
				p.Description = s
			}
		case "department":
			if s, ok := value.(string); ok {
				p.Department = s
			}
		case "category":
			if s, ok := value.(string); ok {
				p.Category = s
			}
		case "price":
			if d, ok := toDecimal(value); ok {
				p.Price = d
			}
		case "image":
			if s, ok := value.(string); ok {
				p.Image = s
			}
		}
	}
}

// toDecimal accepts the numeric shapes a JSON body can produce.
func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	}
	return decimal.Decimal{}, false
}
