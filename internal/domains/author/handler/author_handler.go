package handler

import (
	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/author/model"
	"bookcatalog-backend/internal/domains/author/service"
	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/logger"
)

// AuthorHandler exposes read-only author endpoints. Authors are created only
// as a side effect of book writes, so there is no create route.
type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(service service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		logger.ErrorWithFields("failed to list authors", err, map[string]interface{}{
			"request_id": c.GetString("request_id"),
		})
		response.InternalServerError(c, "Internal server error.")
		return
	}

	if authors == nil {
		authors = []model.Author{}
	}

	response.OK(c, gin.H{"authors": authors})
}
