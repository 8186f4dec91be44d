package model

import (
	"encoding/json"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Normalize validates the payload and derives the canonical type-conditional
// field set. It has no side effects; the result is ready for entity
// resolution and persistence.
func (r *BookRequest) Normalize() (*NormalizedBook, error) {
	if err := r.checkRequired(); err != nil {
		return nil, err
	}

	authors, err := r.parseAuthors()
	if err != nil {
		return nil, err
	}

	bookType := BookType(strings.ToUpper(r.Type))
	if bookType != TypePrinted && bookType != TypeDigital {
		return nil, NewInvalidShape("`type` must be PRINTED or DIGITAL.")
	}

	if r.Price.Sign() < 0 {
		return nil, NewInvalidShape("`price` must be a positive number.")
	}

	nb := &NormalizedBook{
		Title:     r.Title,
		Authors:   authors,
		Publisher: r.Publisher,
		Price:     *r.Price,
		Type:      bookType,
	}

	// The conditional group matching the type is required; the opposite
	// group is forced to null regardless of what the payload carried.
	switch bookType {
	case TypePrinted:
		if r.ShippingCost == nil || r.Stock == nil {
			return nil, NewMissingField("PRINTED books require `shippingCost` and `stock`.")
		}
		if r.ShippingCost.Sign() < 0 {
			return nil, NewInvalidShape("`shippingCost` must not be negative.")
		}
		if *r.Stock < 0 {
			return nil, NewInvalidShape("`stock` must not be negative.")
		}
		nb.ShippingCost = r.ShippingCost
		nb.Stock = r.Stock
	case TypeDigital:
		if r.FileSize == nil {
			return nil, NewMissingField("DIGITAL books require `fileSize`.")
		}
		if r.FileSize.Sign() < 0 {
			return nil, NewInvalidShape("`fileSize` must not be negative.")
		}
		nb.FileSize = r.FileSize
	}

	return nb, nil
}

// checkRequired rejects payloads with absent or blank required fields. A zero
// price counts as absent, matching the create contract where every field is
// supplied explicitly.
func (r *BookRequest) checkRequired() error {
	fields := validation.Errors{
		"title":     validation.Validate(r.Title, validation.Required),
		"publisher": validation.Validate(r.Publisher, validation.Required),
		"price":     validation.Validate(r.Price, validation.Required),
		"type":      validation.Validate(r.Type, validation.Required),
	}

	if len(r.Authors) == 0 || string(r.Authors) == "null" {
		fields["authors"] = validation.ErrRequired
	}
	if r.Price != nil && r.Price.Sign() == 0 {
		fields["price"] = validation.ErrRequired
	}

	if err := fields.Filter(); err != nil {
		missing := make([]string, 0, len(fields))
		if vErrs, ok := err.(validation.Errors); ok {
			for field := range vErrs {
				missing = append(missing, field)
			}
		}
		sort.Strings(missing)
		return NewMissingField("Missing required fields: " + strings.Join(missing, ", ") + ".")
	}

	return nil
}

func (r *BookRequest) parseAuthors() ([]string, error) {
	var authors []string
	if err := json.Unmarshal(r.Authors, &authors); err != nil {
		return nil, NewInvalidShape("`authors` must be a list of names.")
	}

	if len(authors) == 0 {
		return nil, NewInvalidShape("`authors` must contain at least one name.")
	}

	for _, name := range authors {
		if strings.TrimSpace(name) == "" {
			return nil, NewInvalidShape("`authors` must not contain empty names.")
		}
	}

	return authors, nil
}
