package handler

import (
	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/publisher/model"
	"bookcatalog-backend/internal/domains/publisher/service"
	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/logger"
)

// PublisherHandler exposes read-only publisher endpoints.
type PublisherHandler struct {
	service service.ServiceInterface
}

func NewPublisherHandler(service service.ServiceInterface) *PublisherHandler {
	return &PublisherHandler{service: service}
}

// List handles GET /publishers
func (h *PublisherHandler) List(c *gin.Context) {
	publishers, err := h.service.ListPublishers(c.Request.Context())
	if err != nil {
		logger.ErrorWithFields("failed to list publishers", err, map[string]interface{}{
			"request_id": c.GetString("request_id"),
		})
		response.InternalServerError(c, "Internal server error.")
		return
	}

	if publishers == nil {
		publishers = []model.Publisher{}
	}

	response.OK(c, gin.H{"publishers": publishers})
}
