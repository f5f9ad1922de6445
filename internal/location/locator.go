package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

var (
	// ErrUnsupported means the host has no location capability at all.
	ErrUnsupported = errors.New("location capability not supported")
	// ErrUnavailable covers denial, timeouts and unusable positions.
	ErrUnavailable = errors.New("location unavailable")
)

// Locator obtains the user's position once per session.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinate, error)
}

// Report is what the browser sends after running its geolocation request.
// Error is empty on success and one of the Reason values otherwise.
type Report struct {
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Error string   `json:"error,omitempty"`
}

const (
	ReasonDenied      = "denied"
	ReasonUnavailable = "unavailable"
	ReasonTimeout     = "timeout"
	ReasonUnsupported = "unsupported"
)

func (r Report) Locate(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}

	switch r.Error {
	case "":
	case ReasonUnsupported:
		return models.Coordinate{}, ErrUnsupported
	default:
		return models.Coordinate{}, fmt.Errorf("%w: %s", ErrUnavailable, r.Error)
	}

	if r.Lat == nil || r.Lon == nil {
		return models.Coordinate{}, fmt.Errorf("%w: report has no position", ErrUnavailable)
	}
	return validated(models.Coordinate{Latitude: *r.Lat, Longitude: *r.Lon})
}

// Fixed is a known position, e.g. from command line flags.
type Fixed models.Coordinate

func (f Fixed) Locate(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}
	return validated(models.Coordinate(f))
}

// Unsupported is the locator for hosts without a location capability.
type Unsupported struct{}

func (Unsupported) Locate(context.Context) (models.Coordinate, error) {
	return models.Coordinate{}, ErrUnsupported
}

func validated(c models.Coordinate) (models.Coordinate, error) {
	if err := c.Validate(); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return c, nil
}
