package model

import (
	"time"

	"github.com/google/uuid"
)

// Publisher follows the same identity rules as Author: unique name, lazy
// creation on first reference, immutable, never cascade-deleted.
type Publisher struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
