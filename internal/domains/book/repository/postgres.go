package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/shared/resolver"
	"bookcatalog-backend/pkg/database"
)

// postgresRepository - raw SQL over pgxpool. Write operations resolve the
// referenced author and publisher entities inside the same transaction as the
// book row and its link rows.
type postgresRepository struct {
	pool       *pgxpool.Pool
	authors    resolver.NameResolver
	publishers resolver.NameResolver
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool:       pool,
		authors:    resolver.NameResolver{Table: "authors"},
		publishers: resolver.NameResolver{Table: "publishers"},
	}
}

const bookSelect = `
	SELECT b.id, b.title, b.price, b.type, b.shipping_cost, b.stock, b.file_size,
	       b.publisher_id, b.created_at, b.updated_at,
	       p.name AS publisher_name,
	       COALESCE(array_agg(a.name ORDER BY ba.position) FILTER (WHERE a.id IS NOT NULL), '{}') AS author_names
	FROM books b
	JOIN publishers p ON p.id = b.publisher_id
	LEFT JOIN book_authors ba ON ba.book_id = b.id
	LEFT JOIN authors a ON a.id = ba.author_id
`

// Create persists the book row plus one link row per author as a single
// transaction. Any failure aborts the whole unit; no partial book is visible.
func (r *postgresRepository) Create(ctx context.Context, nb *model.NormalizedBook) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		publisherID, authorIDs, err := r.resolveEntities(ctx, tx, nb)
		if err != nil {
			return nil, err
		}

		query := `
			INSERT INTO books (title, price, type, shipping_cost, stock, file_size, publisher_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`

		var bookID uuid.UUID
		err = tx.QueryRow(ctx, query,
			nb.Title,
			nb.Price,
			nb.Type,
			nb.ShippingCost,
			nb.Stock,
			nb.FileSize,
			publisherID,
		).Scan(&bookID)
		if err != nil {
			return nil, fmt.Errorf("failed to create book: %w", err)
		}

		if err := insertAuthorLinks(ctx, tx, bookID, authorIDs); err != nil {
			return nil, err
		}

		return getByID(ctx, tx, bookID)
	})
}

// Update replaces every scalar field, reassigns the publisher, and swaps the
// entire author-link set. The existence check runs before any mutation.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, nb *model.NormalizedBook) (*model.Book, error) {
	exists, err := r.exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrBookNotFound
	}

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		publisherID, authorIDs, err := r.resolveEntities(ctx, tx, nb)
		if err != nil {
			return nil, err
		}

		query := `
			UPDATE books
			SET title = $1, price = $2, type = $3, shipping_cost = $4,
			    stock = $5, file_size = $6, publisher_id = $7, updated_at = NOW()
			WHERE id = $8
		`

		tag, err := tx.Exec(ctx, query,
			nb.Title,
			nb.Price,
			nb.Type,
			nb.ShippingCost,
			nb.Stock,
			nb.FileSize,
			publisherID,
			id,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, model.ErrBookNotFound
		}

		// Full link-set replacement: the old set is destroyed and the
		// current author list written fresh.
		if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, id); err != nil {
			return nil, fmt.Errorf("failed to clear author links: %w", err)
		}

		if err := insertAuthorLinks(ctx, tx, id, authorIDs); err != nil {
			return nil, err
		}

		return getByID(ctx, tx, id)
	})
}

// Delete removes the author links before the book row to keep referential
// integrity.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrBookNotFound
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete author links: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}

		return nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return getByID(ctx, r.pool, id)
}

// List returns every stored book with its joined publisher and author names.
func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := bookSelect + `
	GROUP BY b.id, p.name
	ORDER BY b.created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// resolveEntities maps the publisher name and each author name to stable ids,
// creating rows for unseen names. Author id order follows input order.
func (r *postgresRepository) resolveEntities(ctx context.Context, q database.Querier, nb *model.NormalizedBook) (uuid.UUID, []uuid.UUID, error) {
	publisherID, err := r.publishers.Resolve(ctx, q, nb.Publisher)
	if err != nil {
		return uuid.Nil, nil, err
	}

	authorIDs, err := r.authors.ResolveAll(ctx, q, nb.Authors)
	if err != nil {
		return uuid.Nil, nil, err
	}

	return publisherID, authorIDs, nil
}

func (r *postgresRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

// insertAuthorLinks writes one link row per author. The position column keeps
// the display order of the author list; duplicates collapse onto the first
// occurrence via ON CONFLICT.
func insertAuthorLinks(ctx context.Context, q database.Querier, bookID uuid.UUID, authorIDs []uuid.UUID) error {
	query := `
		INSERT INTO book_authors (book_id, author_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (book_id, author_id) DO NOTHING
	`

	for i, authorID := range authorIDs {
		if _, err := q.Exec(ctx, query, bookID, authorID, i); err != nil {
			return fmt.Errorf("failed to link author %s: %w", authorID, err)
		}
	}

	return nil
}

func getByID(ctx context.Context, q database.Querier, id uuid.UUID) (*model.Book, error) {
	query := bookSelect + `
	WHERE b.id = $1
	GROUP BY b.id, p.name
	`

	var b model.Book
	err := scanBook(q.QueryRow(ctx, query, id), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &b, nil
}

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.Price,
		&b.Type,
		&b.ShippingCost,
		&b.Stock,
		&b.FileSize,
		&b.PublisherID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.PublisherName,
		pq.Array(&b.AuthorNames),
	)
}
