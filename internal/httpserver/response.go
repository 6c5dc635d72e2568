package httpserver

import (
	"errors"
	"net/http"

	"shoemarket/internal/domain"
	"github.com/gin-gonic/gin"
)

// All responses share one envelope: {"message": ..., "data": ...} on
// success, {"error": ...} on failure with the message echoed verbatim.

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"message": message, "data": data})
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
