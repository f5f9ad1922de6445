package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mr1hm/go-nearby-hospitals/internal/config"
	"github.com/mr1hm/go-nearby-hospitals/internal/metrics"
	"github.com/mr1hm/go-nearby-hospitals/internal/models"
	"github.com/mr1hm/go-nearby-hospitals/internal/repository"
	"github.com/mr1hm/go-nearby-hospitals/internal/session"
	"github.com/mr1hm/go-nearby-hospitals/internal/worker"
)

// Recorder writes finished sessions to the lookup repository off the request
// path. Records are dropped rather than blocking when the queue is full.
type Recorder struct {
	cfg  *config.Config
	repo repository.LookupRepository
	pool *worker.Pool[*models.Lookup]
	now  func() time.Time
}

func NewRecorder(cfg *config.Config, repo repository.LookupRepository) *Recorder {
	return &Recorder{
		cfg:  cfg,
		repo: repo,
		now:  time.Now,
	}
}

func (r *Recorder) Start(ctx context.Context) {
	processor := func(ctx context.Context, l *models.Lookup) error {
		if err := r.repo.Add(ctx, l); err != nil {
			return err
		}
		slog.Debug("recorded lookup", "id", l.ID, "status", l.Status, "results", l.ResultCount)
		return nil
	}

	r.pool = worker.NewPool("audit", r.cfg.Audit.WorkerCount, r.cfg.Audit.BufferSize, processor)
	r.pool.Start(ctx)
}

// Record queues res and returns the lookup id, or "" if it was dropped.
func (r *Recorder) Record(res session.Result) string {
	l := NewLookup(res, r.now())
	if r.pool == nil || !r.pool.TrySubmit(l) {
		metrics.AuditDroppedTotal.Inc()
		slog.Warn("audit queue full, dropping lookup", "id", l.ID)
		return ""
	}
	return l.ID
}

func (r *Recorder) Stop() {
	if r.pool != nil {
		r.pool.Stop()
	}
	slog.Info("audit recorder stopped")
}

// NewLookup summarizes a session result without keeping its location.
func NewLookup(res session.Result, now time.Time) *models.Lookup {
	l := &models.Lookup{
		ID:          uuid.NewString(),
		Status:      string(res.State.Status()),
		Stage:       string(res.Stage),
		ResultCount: len(res.State.Hospitals),
		Duration:    res.Duration,
		CreatedAt:   now,
	}
	if res.Err != nil {
		l.Error = res.Err.Error()
	}
	if len(res.State.Hospitals) > 0 {
		l.NearestDistance = res.State.Hospitals[0].Distance
	}
	return l
}
