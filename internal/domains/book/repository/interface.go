package repository

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book/model"
)

// RepositoryInterface is the persistence contract for books. Create and
// Update are whole units of work: entity resolution, the book row and its
// author links succeed or fail together.
type RepositoryInterface interface {
	Create(ctx context.Context, nb *model.NormalizedBook) (*model.Book, error)
	Update(ctx context.Context, id uuid.UUID, nb *model.NormalizedBook) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
}
