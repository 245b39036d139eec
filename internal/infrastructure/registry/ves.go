package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scrapcar-backend/internal/domain/vehicle"
)

// VESClient talks to a DVLA Vehicle-Enquiry-style JSON API. One POST per
// lookup; the caller decides what a failure means (for the quote flow it
// always means "cannot auto-price").
type VESClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewVESClient(baseURL, apiKey string, timeout time.Duration) *VESClient {
	return &VESClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type vesRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
}

type vesResponse struct {
	Make              string  `json:"make"`
	Model             string  `json:"model"`
	Colour            string  `json:"colour"`
	FuelType          string  `json:"fuelType"`
	YearOfManufacture int     `json:"yearOfManufacture"`
	RevenueWeight     float64 `json:"revenueWeight"`
}

func (c *VESClient) Lookup(ctx context.Context, registration string) (*vehicle.Attributes, error) {
	body, _ := json.Marshal(vesRequest{RegistrationNumber: registration})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vehicle-enquiry/v1/vehicles", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vehicle.ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vehicle.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, vehicle.ErrNotFound
	default:
		return nil, fmt.Errorf("%w: status %d", vehicle.ErrUnavailable, resp.StatusCode)
	}

	var out vesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", vehicle.ErrIncomplete, err)
	}
	if out.Make == "" {
		return nil, vehicle.ErrIncomplete
	}
	return &vehicle.Attributes{
		Make:     out.Make,
		Model:    out.Model,
		Colour:   out.Colour,
		FuelType: out.FuelType,
		Year:     out.YearOfManufacture,
		WeightKg: out.RevenueWeight,
	}, nil
}
