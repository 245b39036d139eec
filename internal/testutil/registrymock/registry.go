package registrymock

import (
	"context"

	"scrapcar-backend/internal/domain/vehicle"
)

// Ensure compile-time compliance
var _ vehicle.Registry = (*Registry)(nil)

// Registry is a function-backed mock that satisfies vehicle.Registry.
type Registry struct {
	LookupFn func(ctx context.Context, registration string) (*vehicle.Attributes, error)
}

func (m *Registry) Lookup(ctx context.Context, registration string) (*vehicle.Attributes, error) {
	if m.LookupFn != nil {
		return m.LookupFn(ctx, registration)
	}
	return nil, vehicle.ErrUnavailable
}
