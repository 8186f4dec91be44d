package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/logger"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// Validation error kinds. Both surface as 400s; the kind records whether the
// input was absent or structurally wrong.
const (
	KindMissingField = "MISSING_FIELD"
	KindInvalidShape = "INVALID_SHAPE"
)

// ValidationError - client input failure produced by Normalize.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewMissingField(message string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Message: message}
}

func NewInvalidShape(message string) *ValidationError {
	return &ValidationError{Kind: KindInvalidShape, Message: message}
}

// HandleBookError maps a domain error to its HTTP response. Returns true when
// err was non-nil and a response has been written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		response.BadRequest(c, vErr.Message)
		return true
	}

	if errors.Is(err, ErrBookNotFound) {
		response.NotFound(c, "Book not found.")
		return true
	}

	logger.ErrorWithFields("book operation failed", err, map[string]interface{}{
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
	})
	response.InternalServerError(c, "Internal server error.")
	return true
}
