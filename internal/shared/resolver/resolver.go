package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookcatalog-backend/pkg/database"
)

// NameResolver maps a unique name to a stable entity id, creating the row on
// first reference. Authors and publishers share this exact behavior; the
// backing table is the only thing that varies.
type NameResolver struct {
	Table string
}

// Resolve returns the id for an exact (case-sensitive) name match, inserting
// a new row when the name is unseen.
//
// Two concurrent first references can both miss the lookup and race on the
// insert. The UNIQUE constraint on name decides the winner; the insert uses
// ON CONFLICT DO NOTHING so the loser sees no error (which would abort an
// enclosing transaction) and re-resolves with a second lookup instead.
func (r NameResolver) Resolve(ctx context.Context, q database.Querier, name string) (uuid.UUID, error) {
	var id uuid.UUID

	lookup := fmt.Sprintf(`SELECT id FROM %s WHERE name = $1`, r.Table)
	err := q.QueryRow(ctx, lookup, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("failed to look up %s %q: %w", r.Table, name, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id`, r.Table)
	err = q.QueryRow(ctx, insert, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("failed to create %s %q: %w", r.Table, name, err)
	}

	// Lost the create race; the row exists now.
	if err := q.QueryRow(ctx, lookup, name).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to re-resolve %s %q after conflict: %w", r.Table, name, err)
	}

	return id, nil
}

// ResolveAll resolves a list of names in order, preserving input order in the
// returned ids. Duplicate names resolve to the same id.
func (r NameResolver) ResolveAll(ctx context.Context, q database.Querier, names []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		id, err := r.Resolve(ctx, q, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
