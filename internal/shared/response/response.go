package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The catalog API uses flat JSON bodies: list endpoints return their
// collection under a named key, mutations return {message, ...} and failures
// return {error}.

func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
