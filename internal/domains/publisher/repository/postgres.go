package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/publisher/model"
	"bookcatalog-backend/internal/shared/resolver"
)

// RepositoryInterface - publisher data access.
type RepositoryInterface interface {
	ResolveByName(ctx context.Context, name string) (uuid.UUID, error)
	List(ctx context.Context) ([]model.Publisher, error)
}

type postgresRepository struct {
	pool     *pgxpool.Pool
	resolver resolver.NameResolver
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		resolver: resolver.NameResolver{Table: "publishers"},
	}
}

func (r *postgresRepository) ResolveByName(ctx context.Context, name string) (uuid.UUID, error) {
	return r.resolver.Resolve(ctx, r.pool, name)
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Publisher, error) {
	query := `SELECT id, name, created_at FROM publishers ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query publishers: %w", err)
	}
	defer rows.Close()

	var publishers []model.Publisher
	for rows.Next() {
		var p model.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publishers: %w", err)
	}

	return publishers, nil
}
