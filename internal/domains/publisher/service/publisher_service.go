package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/publisher/model"
	"bookcatalog-backend/internal/domains/publisher/repository"
)

// ServiceInterface - publisher business logic.
type ServiceInterface interface {
	ResolvePublisher(ctx context.Context, name string) (uuid.UUID, error)
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
}

type PublisherService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &PublisherService{repo: repo}
}

func (s *PublisherService) ResolvePublisher(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := s.repo.ResolveByName(ctx, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve publisher %q: %w", name, err)
	}
	return id, nil
}

func (s *PublisherService) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	publishers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	return publishers, nil
}
