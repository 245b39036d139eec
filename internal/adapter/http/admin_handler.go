package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scrapcar-backend/internal/usecase/admin"
	"scrapcar-backend/internal/usecase/review"
)

type AdminHandler struct {
	admin  *admin.Usecase
	review *review.Usecase
}

func NewAdminHandler(a *admin.Usecase, r *review.Usecase) *AdminHandler {
	return &AdminHandler{admin: a, review: r}
}

type reviewQuoteReq struct {
	OfferPrice float64 `json:"offer_price" validate:"required,gt=0,dec2"`
	Message    string  `json:"message"`
}

func (h *AdminHandler) ReviewQuote(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	var req reviewQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.review.Review(c.Request().Context(), quoteID, review.ReviewInput{
		OfferPrice: req.OfferPrice,
		Message:    req.Message,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) MarkCollected(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	dto, err := h.admin.MarkCollected(c.Request().Context(), quoteID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) DeleteQuote(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	if err := h.admin.Delete(c.Request().Context(), quoteID); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListQuotes serves the admin directory pages, one status view per request.
func (h *AdminHandler) ListQuotes(c echo.Context) error {
	quotes, err := h.admin.List(c.Request().Context(), c.QueryParam("view"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"quotes": quotes})
}

type refillQuotaReq struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

func (h *AdminHandler) RefillQuota(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	var req refillQuotaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.admin.RefillQuota(c.Request().Context(), userID, req.Amount)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
