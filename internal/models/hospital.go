package models

const (
	UnknownAddress = "Address not available"
	NoPhone        = "N/A"
)

// Hospital is a normalized facility built from one Overpass element.
type Hospital struct {
	ID          string // "<element type>/<element id>"
	Name        string
	Distance    float64 // km from the user, one decimal
	Address     string  // UnknownAddress when the source has no street
	Phone       string  // NoPhone when the source has no phone
	Emergency   bool
	Rating      float64  // placeholder, not sourced
	Specialties []string // placeholder, not sourced
	OpenNow     bool     // placeholder, not sourced
	Location    Coordinate
}

// HasPhone reports whether the phone field carries a real number.
func (h Hospital) HasPhone() bool {
	return h.Phone != "" && h.Phone != NoPhone
}
