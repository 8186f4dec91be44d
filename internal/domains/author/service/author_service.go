package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/domains/author/repository"
)

// ServiceInterface - author business logic.
type ServiceInterface interface {
	ResolveAuthor(ctx context.Context, name string) (uuid.UUID, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
}

type AuthorService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &AuthorService{repo: repo}
}

func (s *AuthorService) ResolveAuthor(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := s.repo.ResolveByName(ctx, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve author %q: %w", name, err)
	}
	return id, nil
}

func (s *AuthorService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}
