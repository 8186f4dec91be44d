package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/repository"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"
)

const (
	bookListCacheKey = "books:list"
	bookListCacheTTL = 15 * time.Minute
)

// BookService orchestrates the write path (normalize, resolve entities,
// persist) and the read path (list + view shaping). The repository carries
// the transactional semantics; this layer stays thin.
type BookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &BookService{
		repo:  repo,
		cache: cache,
	}
}

// ListBooks returns every stored book in display form.
func (s *BookService) ListBooks(ctx context.Context) ([]model.BookView, error) {
	var cached []model.BookView
	found, err := s.cache.Get(ctx, bookListCacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		logger.Error("book list cache read failed", err)
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	views := make([]model.BookView, len(books))
	for i := range books {
		views[i] = *model.ToView(&books[i])
	}

	if err := s.cache.Set(ctx, bookListCacheKey, views, bookListCacheTTL); err != nil {
		logger.Error("book list cache write failed", err)
	}

	return views, nil
}

// CreateBook validates the payload and persists the book together with its
// publisher reference and author links.
func (s *BookService) CreateBook(ctx context.Context, req *model.BookRequest) (*model.BookView, error) {
	nb, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	book, err := s.repo.Create(ctx, nb)
	if err != nil {
		return nil, fmt.Errorf("create book %q: %w", nb.Title, err)
	}

	s.invalidateListCache(ctx)

	logger.Info("book created", map[string]interface{}{
		"book_id": book.ID,
		"title":   book.Title,
		"type":    book.Type,
	})

	return model.ToView(book), nil
}

// UpdateBook applies full-replace (PUT) semantics: every field and the whole
// author-link set are overwritten from the payload.
func (s *BookService) UpdateBook(ctx context.Context, id uuid.UUID, req *model.BookRequest) (*model.BookView, error) {
	nb, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	book, err := s.repo.Update(ctx, id, nb)
	if err != nil {
		if err == model.ErrBookNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("update book %s: %w", id, err)
	}

	s.invalidateListCache(ctx)

	logger.Info("book updated", map[string]interface{}{
		"book_id": book.ID,
		"title":   book.Title,
		"type":    book.Type,
	})

	return model.ToView(book), nil
}

// DeleteBook removes the book and its author links.
func (s *BookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == model.ErrBookNotFound {
			return err
		}
		return fmt.Errorf("delete book %s: %w", id, err)
	}

	s.invalidateListCache(ctx)

	logger.Info("book deleted", map[string]interface{}{
		"book_id": id,
	})

	return nil
}

func (s *BookService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, bookListCacheKey); err != nil {
		logger.Error("book list cache invalidation failed", err)
	}
}
