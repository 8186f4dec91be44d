package service

import (
	"context"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book/model"
)

// ServiceInterface is the catalog's book-facing business logic.
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.BookView, error)
	CreateBook(ctx context.Context, req *model.BookRequest) (*model.BookView, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req *model.BookRequest) (*model.BookView, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
