package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mr1hm/go-nearby-hospitals/internal/metrics"
	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

// SearchRadiusMeters is the fixed search radius around the user.
const SearchRadiusMeters = 20000

// StatusError is returned when Overpass answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("overpass: unexpected status %d: %s", e.Code, e.Body)
}

type response struct {
	Elements []models.Element `json:"elements"`
}

type Client struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

// NewClient returns a client for the Overpass interpreter at endpoint. The
// timeout bounds a whole request including reading the body.
func NewClient(endpoint, userAgent string, timeout time.Duration) *Client {
	return &Client{
		endpoint:  endpoint,
		userAgent: userAgent,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchHospitals issues one query for hospital nodes, ways and relations
// within SearchRadiusMeters of c. It never retries.
func (cl *Client) FetchHospitals(ctx context.Context, c models.Coordinate) (_ []models.Element, err error) {
	start := time.Now()
	defer func() {
		metrics.OverpassDurationMs.Observe(float64(time.Since(start).Milliseconds()))
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		metrics.OverpassRequestsTotal.WithLabelValues(outcome).Inc()
	}()

	form := url.Values{"data": {HospitalQuery(c, SearchRadiusMeters)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if cl.userAgent != "" {
		req.Header.Set("User-Agent", cl.userAgent)
	}

	resp, err := cl.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var data response
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	return data.Elements, nil
}

// HospitalQuery builds the Overpass QL for hospitals around c.
func HospitalQuery(c models.Coordinate, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", radiusMeters, formatDeg(c.Latitude), formatDeg(c.Longitude))

	var b strings.Builder
	b.WriteString("[out:json];(")
	for _, kind := range []string{"node", "way", "relation"} {
		b.WriteString(kind)
		b.WriteString(`["amenity"="hospital"]`)
		b.WriteString(around)
		b.WriteString(";")
	}
	b.WriteString(");out center;")
	return b.String()
}

func formatDeg(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.7f", v), "0"), ".")
}
