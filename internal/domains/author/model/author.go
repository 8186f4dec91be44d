package model

import (
	"time"

	"github.com/google/uuid"
)

// Author identity is its name: unique, case-sensitive, immutable once
// created. Authors are created lazily on first reference from a book payload
// and never deleted by the catalog.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
