package vehicle

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("vehicle not found in registry")
	// ErrIncomplete: registry answered but required fields (weight) are missing.
	ErrIncomplete  = errors.New("registry data incomplete")
	ErrUnavailable = errors.New("vehicle registry unavailable")
)

// Attributes is the snapshot captured when a registration is looked up.
type Attributes struct {
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Colour   string  `json:"colour"`
	FuelType string  `json:"fuel_type"`
	Year     int     `json:"year"`
	WeightKg float64 `json:"weight_kg"`
}

// Registry resolves a normalized registration to vehicle attributes.
// Lookups block on the external service and are not retried here; any
// error just means the quote cannot be auto-priced.
type Registry interface {
	Lookup(ctx context.Context, registration string) (*Attributes, error)
}
