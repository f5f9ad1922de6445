package hospitals

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mr1hm/go-nearby-hospitals/internal/geo"
	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

// MaxResults caps every result set.
const MaxResults = 10

// Placeholder values; the source carries no rating, specialty or opening data.
const (
	DefaultRating  = 4.0
	DefaultOpenNow = true
)

var DefaultSpecialties = []string{"General"}

const (
	tagName      = "name"
	tagStreet    = "addr:street"
	tagPhone     = "phone"
	tagEmergency = "emergency"
)

// BuildResultSet turns raw Overpass elements into at most MaxResults
// hospitals sorted by ascending distance from user. Elements without a name
// or a resolvable coordinate are dropped.
func BuildResultSet(elements []models.Element, user models.Coordinate) []models.Hospital {
	out := make([]models.Hospital, 0, len(elements))
	var unnamed, unlocated int

	for _, e := range elements {
		name, ok := e.Tag(tagName)
		if !ok || name == "" {
			unnamed++
			continue
		}
		loc, ok := e.Coordinate()
		if !ok {
			unlocated++
			continue
		}
		out = append(out, newHospital(e, name, loc, user))
	}

	if unnamed > 0 || unlocated > 0 {
		slog.Debug("skipped elements", "unnamed", unnamed, "unlocated", unlocated, "kept", len(out))
	}

	slices.SortStableFunc(out, func(a, b models.Hospital) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

func newHospital(e models.Element, name string, loc, user models.Coordinate) models.Hospital {
	dist := geo.GreatCircleDistanceKm(user.Latitude, user.Longitude, loc.Latitude, loc.Longitude)

	address := models.UnknownAddress
	if v, ok := e.Tag(tagStreet); ok && v != "" {
		address = v
	}
	phone := models.NoPhone
	if v, ok := e.Tag(tagPhone); ok && v != "" {
		phone = v
	}
	emergency, _ := e.Tag(tagEmergency)

	return models.Hospital{
		ID:          fmt.Sprintf("%s/%d", e.Type, e.ID),
		Name:        name,
		Distance:    geo.RoundTo(dist, 1),
		Address:     address,
		Phone:       phone,
		Emergency:   emergency == "yes",
		Rating:      DefaultRating,
		Specialties: slices.Clone(DefaultSpecialties),
		OpenNow:     DefaultOpenNow,
		Location:    loc,
	}
}
