package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/shared/resolver"
)

// RepositoryInterface - author data access.
type RepositoryInterface interface {
	// ResolveByName returns the id of the author with this exact name,
	// creating the author on first reference.
	ResolveByName(ctx context.Context, name string) (uuid.UUID, error)
	List(ctx context.Context) ([]model.Author, error)
}

type postgresRepository struct {
	pool     *pgxpool.Pool
	resolver resolver.NameResolver
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		resolver: resolver.NameResolver{Table: "authors"},
	}
}

func (r *postgresRepository) ResolveByName(ctx context.Context, name string) (uuid.UUID, error) {
	return r.resolver.Resolve(ctx, r.pool, name)
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `SELECT id, name, created_at FROM authors ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
