package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookType string

const (
	TypePrinted BookType = "PRINTED"
	TypeDigital BookType = "DIGITAL"
)

// Book - domain entity backed by the books table. PublisherName and
// AuthorNames are joined data, populated by read queries.
type Book struct {
	ID    uuid.UUID       `json:"id" db:"id"`
	Title string          `json:"title" db:"title"`
	Price decimal.Decimal `json:"price" db:"price"`
	Type  BookType        `json:"type" db:"type"`

	// Type-conditional fields: the group matching Type is populated, the
	// opposite group is always null.
	ShippingCost *decimal.Decimal `json:"shipping_cost" db:"shipping_cost"`
	Stock        *int             `json:"stock" db:"stock"`
	FileSize     *decimal.Decimal `json:"file_size" db:"file_size"`

	PublisherID uuid.UUID `json:"publisher_id" db:"publisher_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Joined data
	PublisherName string   `json:"publisher_name" db:"publisher_name"`
	AuthorNames   []string `json:"author_names" db:"author_names"`
}
