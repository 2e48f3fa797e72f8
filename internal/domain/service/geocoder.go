package service

import (
	"context"

	"github.com/paulmach/orb"
)

// UnknownLocation is the fallback place name used whenever reverse
// geocoding is unavailable or returns malformed data.
const UnknownLocation = "Unknown location"

// ReverseGeocoder resolves coordinates into a human-readable place name.
// Enrichment is best-effort: implementations must never fail the caller,
// they log the problem and return UnknownLocation instead.
type ReverseGeocoder interface {
	// ResolvePlaceName returns the place name for the given point
	// (orb.Point is lon/lat ordered). Always returns a non-empty string.
	ResolvePlaceName(ctx context.Context, point orb.Point) string
}
