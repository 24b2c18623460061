package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"revana/cmd/api/dto"
	"revana/cmd/api/services"
)

// writeServiceError maps the service sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the real cause is
// already in the request log.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal error"})
	}
}
