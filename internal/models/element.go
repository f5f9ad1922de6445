package models

// Element is one raw item of an Overpass JSON response.
// Nodes carry lat/lon; ways and relations queried with "out center" carry Center.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Center struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// Coordinate resolves the element position, preferring the direct point
// over the center of an extended geometry.
func (e Element) Coordinate() (Coordinate, bool) {
	if e.Lat != nil && e.Lon != nil {
		return Coordinate{Latitude: *e.Lat, Longitude: *e.Lon}, true
	}
	if e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil {
		return Coordinate{Latitude: *e.Center.Lat, Longitude: *e.Center.Lon}, true
	}
	return Coordinate{}, false
}

func (e Element) Tag(key string) (string, bool) {
	v, ok := e.Tags[key]
	return v, ok
}
