package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	collectionDomain "scrapcar-backend/internal/domain/collection"
	quotaDomain "scrapcar-backend/internal/domain/quota"
	quoteDomain "scrapcar-backend/internal/domain/quote"
)

// jsonError maps the domain error taxonomy onto HTTP codes:
// validation → 422, invalid transition → 409, not found → 404.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, quoteDomain.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, quoteDomain.ErrInvalidTransition),
		errors.Is(err, quoteDomain.ErrAlreadyReviewed),
		errors.Is(err, quoteDomain.ErrAlreadyCollected):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, quoteDomain.ErrNotFound),
		errors.Is(err, quotaDomain.ErrNotFound),
		errors.Is(err, collectionDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
