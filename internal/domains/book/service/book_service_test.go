package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book/model"
)

// fakeRepository keeps books in memory and mimics the relation writer's
// contract: creates assign ids, updates fully replace fields and the author
// set, deletes fail on unknown ids.
type fakeRepository struct {
	books     map[uuid.UUID]*model.Book
	order     []uuid.UUID
	listCalls int
	failWith  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: map[uuid.UUID]*model.Book{}}
}

func (f *fakeRepository) materialize(id uuid.UUID, nb *model.NormalizedBook) *model.Book {
	return &model.Book{
		ID:            id,
		Title:         nb.Title,
		Price:         nb.Price,
		Type:          nb.Type,
		ShippingCost:  nb.ShippingCost,
		Stock:         nb.Stock,
		FileSize:      nb.FileSize,
		PublisherName: nb.Publisher,
		AuthorNames:   append([]string(nil), nb.Authors...),
	}
}

func (f *fakeRepository) Create(_ context.Context, nb *model.NormalizedBook) (*model.Book, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	b := f.materialize(uuid.New(), nb)
	f.books[b.ID] = b
	f.order = append(f.order, b.ID)
	return b, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, nb *model.NormalizedBook) (*model.Book, error) {
	if _, ok := f.books[id]; !ok {
		return nil, model.ErrBookNotFound
	}
	b := f.materialize(id, nb)
	f.books[id] = b
	return b, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeRepository) List(_ context.Context) ([]model.Book, error) {
	f.listCalls++
	books := make([]model.Book, 0, len(f.books))
	for _, id := range f.order {
		if b, ok := f.books[id]; ok {
			books = append(books, *b)
		}
	}
	return books, nil
}

// fakeCache is an in-memory pkg/cache.Cache.
type fakeCache struct {
	entries map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
		f.deletes = append(f.deletes, key)
	}
	return nil
}

func (f *fakeCache) DeletePattern(_ context.Context, _ string) error { return nil }
func (f *fakeCache) Ping(_ context.Context) error                    { return nil }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int {
	return &i
}

func printedRequest() *model.BookRequest {
	return &model.BookRequest{
		Title:        "Test Book",
		Authors:      json.RawMessage(`["A","B"]`),
		Publisher:    "Publisher X",
		Price:        decPtr("100"),
		Type:         "PRINTED",
		ShippingCost: decPtr("10"),
		Stock:        intPtr(50),
	}
}

func digitalRequest() *model.BookRequest {
	return &model.BookRequest{
		Title:     "Test Book",
		Authors:   json.RawMessage(`["C"]`),
		Publisher: "Publisher X",
		Price:     decPtr("100"),
		Type:      "digital",
		FileSize:  decPtr("25"),
	}
}

func TestCreateBook_PrintedHasNullFileSize(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeCache())

	view, err := svc.CreateBook(context.Background(), printedRequest())
	require.NoError(t, err)

	assert.Equal(t, model.TypePrinted, view.Type)
	require.NotNil(t, view.ShippingCost)
	require.NotNil(t, view.Stock)
	assert.Nil(t, view.FileSize)
	assert.ElementsMatch(t, []string{"A", "B"}, view.Authors)
	assert.Equal(t, "Publisher X", view.Publisher)
}

func TestCreateBook_InvalidPayloadNeverReachesStorage(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeCache())

	req := printedRequest()
	req.Authors = json.RawMessage(`"A"`)

	_, err := svc.CreateBook(context.Background(), req)

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.books, "validation failures must not persist anything")
}

func TestCreateBook_InvalidatesListCache(t *testing.T) {
	repo := newFakeRepository()
	cache := newFakeCache()
	svc := NewService(repo, cache)

	_, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Contains(t, cache.entries, "books:list")

	_, err = svc.CreateBook(context.Background(), printedRequest())
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, "books:list")
}

func TestListBooks_ServedFromCacheOnSecondCall(t *testing.T) {
	repo := newFakeRepository()
	cache := newFakeCache()
	svc := NewService(repo, cache)

	_, err := svc.CreateBook(context.Background(), printedRequest())
	require.NoError(t, err)

	first, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second list must hit the cache")
}

func TestUpdateBook_ReplacesAuthorSet(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeCache())

	created, err := svc.CreateBook(context.Background(), printedRequest())
	require.NoError(t, err)

	req := printedRequest()
	req.Authors = json.RawMessage(`["C"]`)

	updated, err := svc.UpdateBook(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"C"}, updated.Authors, "the old author set must be fully replaced")
}

func TestUpdateBook_TypeFlipNullsOppositeGroup(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeCache())

	created, err := svc.CreateBook(context.Background(), printedRequest())
	require.NoError(t, err)

	req := digitalRequest()
	req.Type = "DIGITAL"

	updated, err := svc.UpdateBook(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Nil(t, updated.ShippingCost)
	assert.Nil(t, updated.Stock)
	require.NotNil(t, updated.FileSize)
	assert.True(t, updated.FileSize.Equal(decimal.RequireFromString("25")))
}

func TestUpdateBook_NotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeCache())

	_, err := svc.UpdateBook(context.Background(), uuid.New(), printedRequest())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteBook_NotFoundLeavesStorageUnchanged(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, newFakeCache())

	created, err := svc.CreateBook(context.Background(), printedRequest())
	require.NoError(t, err)

	err = svc.DeleteBook(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
	assert.Len(t, repo.books, 1)

	require.NoError(t, svc.DeleteBook(context.Background(), created.ID))
	assert.Empty(t, repo.books)
}

func TestCreateBook_WrapsPersistenceFailures(t *testing.T) {
	repo := newFakeRepository()
	repo.failWith = errors.New("connection reset")
	svc := NewService(repo, newFakeCache())

	_, err := svc.CreateBook(context.Background(), printedRequest())
	require.Error(t, err)

	var vErr *model.ValidationError
	assert.False(t, errors.As(err, &vErr), "storage failures are not client errors")
}
