package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"scrapcar-backend/internal/usecase/quote"
)

type QuoteHandler struct{ uc *quote.Usecase }

func NewQuoteHandler(uc *quote.Usecase) *QuoteHandler { return &QuoteHandler{uc: uc} }

type submitQuoteReq struct {
	UserID       string `json:"user_id"       validate:"required,hex32"`
	Registration string `json:"registration"  validate:"required,ukreg"`
}

// SubmitQuote is the hero-form entry: one registration lookup, priced
// automatically when the registry data allows it.
func (h *QuoteHandler) SubmitQuote(c echo.Context) error {
	var req submitQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.Submit(c.Request().Context(), quote.SubmitInput{
		UserID:       req.UserID,
		Registration: req.Registration,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type submitManualReq struct {
	UserID             string   `json:"user_id"              validate:"required,hex32"`
	Registration       string   `json:"registration"         validate:"required,ukreg"`
	Make               string   `json:"make"`
	Model              string   `json:"model"`
	Colour             string   `json:"colour"`
	FuelType           string   `json:"fuel_type"`
	Year               int      `json:"year"`
	WeightKg           float64  `json:"weight_kg"`
	UserEstimatedPrice *float64 `json:"user_estimated_price" validate:"omitempty,gt=0,dec2"`
	Reason             string   `json:"reason"               validate:"required"`
	Message            string   `json:"message"`
	Photos             []string `json:"photos"`
}

func (h *QuoteHandler) SubmitManualValuation(c echo.Context) error {
	var req submitManualReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.SubmitManual(c.Request().Context(), quote.SubmitManualInput{
		UserID:       req.UserID,
		Registration: req.Registration,
		Vehicle: quote.VehicleInput{
			Make: req.Make, Model: req.Model, Colour: req.Colour,
			FuelType: req.FuelType, Year: req.Year, WeightKg: req.WeightKg,
		},
		UserEstimatedPrice: req.UserEstimatedPrice,
		Reason:             req.Reason,
		Message:            req.Message,
		Photos:             req.Photos,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *QuoteHandler) GetQuote(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("quote_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type confirmQuoteReq struct {
	// Canonical date `YYYY-MM-DD`, must be at least two days out
	PickupDate    string `json:"pickup_date"    validate:"required,datetime=2006-01-02"`
	ContactNumber string `json:"contact_number" validate:"required"`
	Address       string `json:"address"        validate:"required"`
}

func (h *QuoteHandler) ConfirmQuote(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	var req confirmQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	pickup, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pickup_date"})
	}
	dto, err := h.uc.Confirm(c.Request().Context(), quoteID, quote.ConfirmInput{
		PickupDate:    pickup,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectQuoteReq struct {
	Reason string `json:"reason" validate:"required,min=10"`
}

func (h *QuoteHandler) RejectQuote(c echo.Context) error {
	quoteID := c.Param("quote_id")
	if quoteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing quote_id path param"})
	}
	var req rejectQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), quoteID, req.Reason)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
