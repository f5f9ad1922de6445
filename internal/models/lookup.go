package models

import "time"

// Lookup is the audit record of one finished session. It deliberately holds
// no coordinates and no results.
type Lookup struct {
	ID              string
	Status          string // "results" or "error"
	Stage           string // failing stage, empty on success
	Error           string
	ResultCount     int
	NearestDistance float64 // km, 0 when there are no results
	Duration        time.Duration
	CreatedAt       time.Time
}
