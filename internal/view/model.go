package view

import (
	"github.com/mr1hm/go-nearby-hospitals/internal/models"
	"github.com/mr1hm/go-nearby-hospitals/internal/session"
)

// Model is the JSON contract between the session and the page.
type Model struct {
	Status    session.Status     `json:"status"`
	Location  *models.Coordinate `json:"location"`
	Hospitals []Hospital         `json:"hospitals"`
	Loading   bool               `json:"loading"`
	Error     string             `json:"error,omitempty"`
}

type Hospital struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Distance      float64           `json:"distance"`
	Address       string            `json:"address"`
	Phone         string            `json:"phone"`
	Emergency     bool              `json:"emergency"`
	Rating        float64           `json:"rating"`
	Specialties   []string          `json:"specialties"`
	OpenNow       bool              `json:"openNow"`
	Location      models.Coordinate `json:"location"`
	DirectionsURL string            `json:"directionsUrl,omitempty"`
	TelURI        string            `json:"telUri,omitempty"`
}

// FromState renders s. Directions links need the user location and are
// omitted without it.
func FromState(s session.State) Model {
	m := Model{
		Status:    s.Status(),
		Location:  s.Location,
		Hospitals: make([]Hospital, 0, len(s.Hospitals)),
		Loading:   s.Loading,
		Error:     s.Error,
	}
	for _, h := range s.Hospitals {
		vh := Hospital{
			ID:          h.ID,
			Name:        h.Name,
			Distance:    h.Distance,
			Address:     h.Address,
			Phone:       h.Phone,
			Emergency:   h.Emergency,
			Rating:      h.Rating,
			Specialties: h.Specialties,
			OpenNow:     h.OpenNow,
			Location:    h.Location,
			TelURI:      TelURI(h.Phone),
		}
		if s.Location != nil {
			vh.DirectionsURL = DirectionsURL(*s.Location, h.Location)
		}
		m.Hospitals = append(m.Hospitals, vh)
	}
	return m
}
