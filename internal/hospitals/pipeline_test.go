package hospitals

import (
	"fmt"
	"math"
	"testing"

	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

var user = models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

func f(v float64) *float64 { return &v }

func node(id int64, lat, lon float64, tags map[string]string) models.Element {
	return models.Element{Type: "node", ID: id, Lat: f(lat), Lon: f(lon), Tags: tags}
}

func named(name string) map[string]string {
	return map[string]string{"name": name, "amenity": "hospital"}
}

func TestBuildResultSet_CapsAndSorts(t *testing.T) {
	// 12 hospitals spread north of the user, inserted far-to-near.
	var elements []models.Element
	for i := 12; i >= 1; i-- {
		elements = append(elements, node(int64(i), user.Latitude+float64(i)*0.01, user.Longitude, named(fmt.Sprintf("H%d", i))))
	}

	got := BuildResultSet(elements, user)

	if len(got) != MaxResults {
		t.Fatalf("expected %d hospitals, got %d", MaxResults, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Errorf("not sorted at %d: %v < %v", i, got[i].Distance, got[i-1].Distance)
		}
	}
	for _, h := range got {
		if h.Name == "H11" || h.Name == "H12" {
			t.Errorf("expected the two farthest hospitals to be truncated, found %s", h.Name)
		}
	}
	if got[0].Name != "H1" {
		t.Errorf("expected nearest H1 first, got %s", got[0].Name)
	}
}

func TestBuildResultSet_DropsUnnamed(t *testing.T) {
	elements := []models.Element{
		node(1, 40.72, -74.0, map[string]string{"amenity": "hospital"}),
		node(2, 40.72, -74.0, map[string]string{"name": ""}),
		node(3, 40.72, -74.0, named("Bellevue")),
	}

	got := BuildResultSet(elements, user)

	if len(got) != 1 || got[0].ID != "node/3" {
		t.Fatalf("expected only node/3, got %+v", got)
	}
}

func TestBuildResultSet_ResolvesCoordinates(t *testing.T) {
	elements := []models.Element{
		// way with center only
		{Type: "way", ID: 10, Center: &models.Center{Lat: f(40.73), Lon: f(-74.0)}, Tags: named("Way Hospital")},
		// no coordinates at all
		{Type: "relation", ID: 11, Tags: named("Ghost Hospital")},
		// half a center
		{Type: "way", ID: 12, Center: &models.Center{Lat: f(40.73)}, Tags: named("Half Hospital")},
		// direct point wins over center
		{Type: "node", ID: 13, Lat: f(40.7128), Lon: f(-74.0060), Center: &models.Center{Lat: f(50), Lon: f(0)}, Tags: named("Point Hospital")},
	}

	got := BuildResultSet(elements, user)

	if len(got) != 2 {
		t.Fatalf("expected 2 hospitals, got %d: %+v", len(got), got)
	}
	if got[0].ID != "node/13" || got[0].Distance != 0 {
		t.Errorf("expected node/13 at distance 0 first, got %s at %v", got[0].ID, got[0].Distance)
	}
	if got[1].ID != "way/10" {
		t.Errorf("expected way/10 second, got %s", got[1].ID)
	}
	if got[1].Location.Latitude != 40.73 {
		t.Errorf("expected center latitude 40.73, got %v", got[1].Location.Latitude)
	}
}

func TestBuildResultSet_Emergency(t *testing.T) {
	tests := []struct {
		value string
		set   bool
		want  bool
	}{
		{"yes", true, true},
		{"no", true, false},
		{"Yes", true, false},
		{"designated", true, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			tags := named("A")
			if tt.set {
				tags["emergency"] = tt.value
			}
			got := BuildResultSet([]models.Element{node(1, 40.72, -74.0, tags)}, user)
			if len(got) != 1 {
				t.Fatalf("expected 1 hospital, got %d", len(got))
			}
			if got[0].Emergency != tt.want {
				t.Errorf("emergency=%q: got %v, want %v", tt.value, got[0].Emergency, tt.want)
			}
		})
	}
}

func TestBuildResultSet_SentinelsAndPlaceholders(t *testing.T) {
	withContact := named("Contact")
	withContact["addr:street"] = "First Avenue"
	withContact["phone"] = "+1 212 562 4141"

	got := BuildResultSet([]models.Element{
		node(1, 40.72, -74.0, named("Bare")),
		node(2, 40.73, -74.0, withContact),
	}, user)

	if len(got) != 2 {
		t.Fatalf("expected 2 hospitals, got %d", len(got))
	}
	bare, contact := got[0], got[1]

	if bare.Address != models.UnknownAddress || bare.Phone != models.NoPhone {
		t.Errorf("expected sentinels, got address=%q phone=%q", bare.Address, bare.Phone)
	}
	if bare.HasPhone() {
		t.Error("expected HasPhone false for sentinel")
	}
	if contact.Address != "First Avenue" || contact.Phone != "+1 212 562 4141" {
		t.Errorf("unexpected contact fields: %+v", contact)
	}
	for _, h := range got {
		if h.Rating != DefaultRating || !h.OpenNow {
			t.Errorf("unexpected placeholders: rating=%v open=%v", h.Rating, h.OpenNow)
		}
		if len(h.Specialties) != 1 || h.Specialties[0] != "General" {
			t.Errorf("unexpected specialties: %v", h.Specialties)
		}
	}

	// Placeholder slices are not shared.
	got[0].Specialties[0] = "Cardiology"
	if got[1].Specialties[0] != "General" || DefaultSpecialties[0] != "General" {
		t.Error("specialties slice is shared between records")
	}
}

func TestBuildResultSet_DistanceRounded(t *testing.T) {
	got := BuildResultSet([]models.Element{node(1, 40.8, -73.9, named("A"))}, user)
	if len(got) != 1 {
		t.Fatalf("expected 1 hospital, got %d", len(got))
	}
	d := got[0].Distance
	if d < 0 {
		t.Errorf("negative distance %v", d)
	}
	if math.Abs(d*10-math.Round(d*10)) > 1e-9 {
		t.Errorf("distance %v not rounded to one decimal", d)
	}
}

func TestBuildResultSet_Empty(t *testing.T) {
	got := BuildResultSet(nil, user)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
