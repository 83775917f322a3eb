package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atelierhq/atelier/internal/api/dto"
	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps a repository or service error onto the API error
// taxonomy: NotFound -> 404, ValidationError -> 400, everything else is a
// backend error -> 500 (logged; the caller's view state stays untouched).
func respondError(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: notFound.Error(),
			Code:    http.StatusNotFound,
		})
		return
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: validation.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	slog.Error("backend error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Bad Request",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}
