package session

import (
	"slices"

	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

const (
	MsgLocationUnavailable = "Unable to retrieve your location. Please enable location services."
	MsgLocationUnsupported = "Geolocation is not supported by your browser."
	MsgQueryFailed         = "Failed to fetch nearby hospitals. Please try again later."
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusResults Status = "results"
)

// State is everything the presentation layer needs for one session.
type State struct {
	Location  *models.Coordinate
	Hospitals []models.Hospital
	Loading   bool
	Error     string
}

func (s State) Status() Status {
	switch {
	case s.Error != "":
		return StatusError
	case s.Loading:
		return StatusLoading
	default:
		return StatusResults
	}
}

// Snapshot returns a copy that shares no memory with s.
func (s State) Snapshot() State {
	out := State{
		Loading: s.Loading,
		Error:   s.Error,
	}
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	if s.Hospitals != nil {
		out.Hospitals = make([]models.Hospital, len(s.Hospitals))
		for i, h := range s.Hospitals {
			h.Specialties = slices.Clone(h.Specialties)
			out.Hospitals[i] = h
		}
	}
	return out
}
