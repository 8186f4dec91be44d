package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/shared/response"
)

// BookHandler exposes the catalog's book endpoints.
type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(service service.ServiceInterface) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books
func (h *BookHandler) List(c *gin.Context) {
	views, err := h.service.ListBooks(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	if views == nil {
		views = []model.BookView{}
	}

	response.OK(c, gin.H{"books": views})
}

// Create handles POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.")
		return
	}

	view, err := h.service.CreateBook(c.Request.Context(), &req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Created(c, gin.H{
		"message": "Book created successfully.",
		"book":    view,
	})
}

// Update handles PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book not found.")
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.")
		return
	}

	view, err := h.service.UpdateBook(c.Request.Context(), id, &req)
	if model.HandleBookError(c, err) {
		return
	}

	response.OK(c, gin.H{
		"message": "Book updated successfully.",
		"book":    view,
	})
}

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book not found.")
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); model.HandleBookError(c, err) {
		return
	}

	response.OK(c, gin.H{"message": "Book deleted successfully."})
}
