package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gatherhub/server/internal/middleware"
	"github.com/gatherhub/server/internal/models"
)

// actorFrom is shorthand for the identity the resolver middleware attached
// to this request.
func actorFrom(c *gin.Context) models.Actor {
	return middleware.ActorFrom(c)
}

// respondError maps the service error kinds onto HTTP codes. Every kind
// is a per-request outcome; nothing here is fatal.
func respondError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid id"))
		return 0, false
	}
	return id, true
}
