package view

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

const directionsBase = "https://www.google.com/maps/dir/"

// DirectionsURL links to turn-by-turn directions from origin to dest.
func DirectionsURL(origin, dest models.Coordinate) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", latLon(origin))
	q.Set("destination", latLon(dest))
	return directionsBase + "?" + q.Encode()
}

// TelURI returns a tel: URI for phone, or "" when there is no number to call.
func TelURI(phone string) string {
	if phone == "" || phone == models.NoPhone {
		return ""
	}
	// Overpass phone tags may list several numbers separated by ';'.
	if i := strings.IndexByte(phone, ';'); i >= 0 {
		phone = phone[:i]
	}
	phone = strings.Join(strings.Fields(phone), "")
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}

func latLon(c models.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
