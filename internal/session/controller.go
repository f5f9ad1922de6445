package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mr1hm/go-nearby-hospitals/internal/hospitals"
	"github.com/mr1hm/go-nearby-hospitals/internal/location"
	"github.com/mr1hm/go-nearby-hospitals/internal/metrics"
	"github.com/mr1hm/go-nearby-hospitals/internal/models"
)

// Fetcher issues the geodata query for one location.
type Fetcher interface {
	FetchHospitals(ctx context.Context, c models.Coordinate) ([]models.Element, error)
}

// Stage names the step of the session chain that produced an outcome.
type Stage string

const (
	StageLocate Stage = "locate"
	StageQuery  Stage = "query"
)

// Result is the outcome of one session. Stage and Err are set only when the
// session ended in the error state.
type Result struct {
	State    State
	Stage    Stage
	Err      error
	Duration time.Duration
}

func (r Result) Failed() bool { return r.Err != nil }

// PublishFunc receives a read-only snapshot after every state transition.
type PublishFunc func(State)

type Controller struct {
	fetcher Fetcher
}

func NewController(fetcher Fetcher) *Controller {
	return &Controller{fetcher: fetcher}
}

// Run executes locate, query and the result build once, in order. The first failing
// stage ends the session in the error state; a query failure never exposes
// partial results. publish may be nil.
func (c *Controller) Run(ctx context.Context, locator location.Locator, publish PublishFunc) Result {
	start := time.Now()
	st := State{Loading: true}
	emit := func() {
		if publish != nil {
			publish(st.Snapshot())
		}
	}
	finish := func(stage Stage, err error) Result {
		st.Loading = false
		emit()
		res := Result{State: st, Stage: stage, Err: err, Duration: time.Since(start)}
		record(res)
		return res
	}

	emit()

	loc, err := locator.Locate(ctx)
	if err != nil {
		st.Error = locationMessage(err)
		slog.Info("location unavailable", "error", err)
		return finish(StageLocate, err)
	}
	st.Location = &loc
	emit()

	elements, err := c.fetcher.FetchHospitals(ctx, loc)
	if err != nil {
		st.Error = MsgQueryFailed
		st.Hospitals = nil
		slog.Error("hospital query failed", "error", err)
		return finish(StageQuery, err)
	}

	st.Hospitals = hospitals.BuildResultSet(elements, loc)
	slog.Debug("session complete", "elements", len(elements), "hospitals", len(st.Hospitals))
	return finish("", nil)
}

func locationMessage(err error) string {
	if errors.Is(err, location.ErrUnsupported) {
		return MsgLocationUnsupported
	}
	return MsgLocationUnavailable
}

func record(res Result) {
	status := string(res.State.Status())
	metrics.SessionsTotal.WithLabelValues(status, string(res.Stage)).Inc()
	metrics.SessionDurationMs.Observe(float64(res.Duration.Milliseconds()))
	if !res.Failed() {
		metrics.ResultsReturned.Observe(float64(len(res.State.Hospitals)))
	}
}
