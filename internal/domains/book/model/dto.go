package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookRequest is the loosely-structured create/update payload. Authors stays
// raw so a wrong structural type (e.g. a bare string) can be rejected with a
// precise error instead of a generic bind failure; pointer fields distinguish
// "absent" from zero values.
type BookRequest struct {
	Title        string           `json:"title"`
	Authors      json.RawMessage  `json:"authors"`
	Publisher    string           `json:"publisher"`
	Price        *decimal.Decimal `json:"price"`
	Type         string           `json:"type"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
	Stock        *int             `json:"stock"`
	FileSize     *decimal.Decimal `json:"fileSize"`
}

// NormalizedBook is the fully-typed, type-consistent output of Normalize,
// ready for entity resolution and persistence.
type NormalizedBook struct {
	Title        string
	Authors      []string
	Publisher    string
	Price        decimal.Decimal
	Type         BookType
	ShippingCost *decimal.Decimal
	Stock        *int
	FileSize     *decimal.Decimal
}

// BookView is the flat response shape: relational references are fanned out
// into name strings, and null conditional fields stay explicit nulls.
type BookView struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Price        decimal.Decimal  `json:"price"`
	Type         BookType         `json:"type"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
	Stock        *int             `json:"stock"`
	FileSize     *decimal.Decimal `json:"fileSize"`
	Publisher    string           `json:"publisher"`
	Authors      []string         `json:"authors"`
}

// ToView shapes a stored book for API responses.
func ToView(b *Book) *BookView {
	authors := b.AuthorNames
	if authors == nil {
		authors = []string{}
	}

	return &BookView{
		ID:           b.ID,
		Title:        b.Title,
		Price:        b.Price,
		Type:         b.Type,
		ShippingCost: b.ShippingCost,
		Stock:        b.Stock,
		FileSize:     b.FileSize,
		Publisher:    b.PublisherName,
		Authors:      authors,
	}
}
