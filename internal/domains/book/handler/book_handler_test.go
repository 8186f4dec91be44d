package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/service"
)

type fakeRepository struct {
	books map[uuid.UUID]*model.Book
	order []uuid.UUID
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
	books := make([]model.Book, 0, len(f.books))
	for _, id := range f.order {
		if b, ok := f.books[id]; ok {
			books = append(books, *b)
		}
	}
	return books, nil
}

type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) { return false, nil }
func (noopCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (noopCache) Delete(_ context.Context, _ ...string) error     { return nil }
func (noopCache) DeletePattern(_ context.Context, _ string) error { return nil }
func (noopCache) Ping(_ context.Context) error                    { return nil }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(service.NewService(newFakeRepository(), noopCache{}))

	router := gin.New()
	router.GET("/books", h.List)
	router.POST("/books", h.Create)
	router.PUT("/books/:id", h.Update)
	router.DELETE("/books/:id", h.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestPostBooks_CreatesPrintedBook(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/books", `{
		"title": "Test Book",
		"authors": ["Author X"],
		"publisher": "Publisher X",
		"price": 100,
		"type": "PRINTED",
		"shippingCost": 10,
		"stock": 50
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, body["message"])

	book, ok := body["book"].(map[string]interface{})
	require.True(t, ok, "response must echo the created book")
	assert.Equal(t, "PRINTED", book["type"])
	assert.Equal(t, "10", book["shippingCost"])
	assert.Equal(t, float64(50), book["stock"])
	assert.Nil(t, book["fileSize"], "file size must be null for printed books")
	assert.Equal(t, "Publisher X", book["publisher"])
	assert.Equal(t, []interface{}{"Author X"}, book["authors"])
}

func TestPostBooks_AuthorsAsStringIsRejected(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/books", `{
		"title": "Test Book",
		"authors": "Author X",
		"publisher": "Publisher X",
		"price": 100,
		"type": "PRINTED",
		"shippingCost": 10,
		"stock": 50
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "authors")
}

func TestPostBooks_MissingFieldsRejected(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/books", `{"title": "Test Book"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestPutBooks_TypeFlipNullsPrintedFields(t *testing.T) {
	router := setupRouter(t)

	_, created := doJSON(t, router, http.MethodPost, "/books", `{
		"title": "Test Book",
		"authors": ["Author X"],
		"publisher": "Publisher X",
		"price": 100,
		"type": "PRINTED",
		"shippingCost": 10,
		"stock": 50
	}`)

	id := created["book"].(map[string]interface{})["id"].(string)

	rec, body := doJSON(t, router, http.MethodPut, "/books/"+id, `{
		"title": "Test Book",
		"authors": ["Author X"],
		"publisher": "Publisher X",
		"price": 100,
		"type": "DIGITAL",
		"fileSize": 25
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	book := body["book"].(map[string]interface{})
	assert.Equal(t, "DIGITAL", book["type"])
	assert.Nil(t, book["shippingCost"])
	assert.Nil(t, book["stock"])
	assert.Equal(t, "25", book["fileSize"])
}

func TestPutBooks_UnknownIDReturns404(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodPut, "/books/"+uuid.NewString(), `{
		"title": "Test Book",
		"authors": ["Author X"],
		"publisher": "Publisher X",
		"price": 100,
		"type": "DIGITAL",
		"fileSize": 25
	}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestDeleteBooks(t *testing.T) {
	router := setupRouter(t)

	t.Run("unknown id", func(t *testing.T) {
		rec, body := doJSON(t, router, http.MethodDelete, "/books/"+uuid.NewString(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("malformed id", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodDelete, "/books/not-a-uuid", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("existing book", func(t *testing.T) {
		_, created := doJSON(t, router, http.MethodPost, "/books", `{
			"title": "Test Book",
			"authors": ["Author X"],
			"publisher": "Publisher X",
			"price": 100,
			"type": "DIGITAL",
			"fileSize": 25
		}`)
		id := created["book"].(map[string]interface{})["id"].(string)

		rec, body := doJSON(t, router, http.MethodDelete, "/books/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, body["message"])

		listRec, listBody := doJSON(t, router, http.MethodGet, "/books", "")
		require.Equal(t, http.StatusOK, listRec.Code)
		assert.Empty(t, listBody["books"])
	})
}

func TestGetBooks_RoundTripsAuthorSet(t *testing.T) {
	router := setupRouter(t)

	rec, body := doJSON(t, router, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, body["books"], "empty catalog returns an empty list, not null")

	doJSON(t, router, http.MethodPost, "/books", `{
		"title": "Test Book",
		"authors": ["A", "B"],
		"publisher": "Publisher X",
		"price": 100,
		"type": "PRINTED",
		"shippingCost": 10,
		"stock": 50
	}`)

	_, listBody := doJSON(t, router, http.MethodGet, "/books", "")
	books := listBody["books"].([]interface{})
	require.Len(t, books, 1)

	authors := books[0].(map[string]interface{})["authors"].([]interface{})
	assert.ElementsMatch(t, []interface{}{"A", "B"}, authors)
}
