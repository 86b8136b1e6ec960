package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_ApplyUpdate(t *testing.T) {
	product := Product{
		ID:    "p1",
		Title: "Fone Prático 1",
		Price: decimal.NewFromFloat(10.90),
	}

	product.ApplyUpdate(map[string]any{
		"title": "Fone Refinado 1",
		"price": 99.90,
	})

	assert.Equal(t, "Fone Refinado 1", product.Title)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(99.90)))
}

func TestProduct_ApplyUpdate_IgnoresUnknownFields(t *testing.T) {
	product := Product{ID: "p1", Title: "Bola Genérica"}

	product.ApplyUpdate(map[string]any{
		"stock":   42,
		"deleted": true,
	})

	assert.Equal(t, "Bola Genérica", product.Title)
}

func TestProduct_ApplyUpdate_IDNeverOverwritten(t *testing.T) {
	product := Product{ID: "p1"}

	product.ApplyUpdate(map[string]any{"id": "p2", "_id": "p3"})

	assert.Equal(t, "p1", product.ID)
}

func TestProduct_ApplyUpdate_IgnoresWrongTypes(t *testing.T) {
	product := Product{ID: "p1", Title: "Cadeira Rústica", Price: decimal.NewFromInt(50)}

	product.ApplyUpdate(map[string]any{
		"title": 123,
		"price": "not a number",
	})

	assert.Equal(t, "Cadeira Rústica", product.Title)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(50)))
}

func TestProduct_ApplyUpdate_PriceFromString(t *testing.T) {
	product := Product{ID: "p1"}

	product.ApplyUpdate(map[string]any{"price": "123.45"})

	assert.True(t, product.Price.Equal(decimal.NewFromFloat(123.45)))
}
