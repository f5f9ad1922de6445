package api

import (
	_ "embed"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/go-nearby-hospitals/internal/location"
	"github.com/mr1hm/go-nearby-hospitals/internal/metrics"
	"github.com/mr1hm/go-nearby-hospitals/internal/repository"
	"github.com/mr1hm/go-nearby-hospitals/internal/session"
	"github.com/mr1hm/go-nearby-hospitals/internal/view"
)

//go:embed static/index.html
var indexHTML []byte

// FinishFunc observes every finished session, e.g. for the audit log.
type FinishFunc func(session.Result)

type Handler struct {
	sessions *session.Controller
	lookups  repository.LookupRepository
	onFinish FinishFunc
}

// NewHandler wires the session controller into HTTP routes. lookups and
// onFinish may be nil when the audit log is disabled.
func NewHandler(sessions *session.Controller, lookups repository.LookupRepository, onFinish FinishFunc) *Handler {
	return &Handler{
		sessions: sessions,
		lookups:  lookups,
		onFinish: onFinish,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/api/hospitals", h.getHospitals)
	r.GET("/ws/session", h.streamSession)
	if h.lookups != nil {
		r.GET("/api/lookups", h.getLookups)
	}
}

func (h *Handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getHospitals runs one session from the location report carried in the
// query string. Session failures are a normal render state and return 200.
func (h *Handler) getHospitals(c *gin.Context) {
	report, ok := reportFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and lon query parameters are required unless error is set",
		})
		return
	}

	res := h.sessions.Run(c.Request.Context(), report, nil)
	h.finish(res)

	c.JSON(http.StatusOK, view.FromState(res.State))
}

func (h *Handler) getLookups(c *gin.Context) {
	filter := repository.Filter{
		Limit: 20, // Default to 20 lookups if limit param not supplied
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			filter.Limit = lim
		}
	}
	if s := c.Query("status"); s == string(session.StatusResults) || s == string(session.StatusError) {
		filter.Status = &s
	}

	lookups, err := h.lookups.ListLookups(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch lookups",
		})
		return
	}

	out := make([]gin.H, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, gin.H{
			"id":          l.ID,
			"status":      l.Status,
			"stage":       l.Stage,
			"error":       l.Error,
			"results":     l.ResultCount,
			"nearest_km":  l.NearestDistance,
			"duration_ms": l.Duration.Milliseconds(),
			"created_at":  l.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"lookups": out})
}

func (h *Handler) finish(res session.Result) {
	if h.onFinish != nil {
		h.onFinish(res)
	}
}

func reportFromQuery(c *gin.Context) (location.Report, bool) {
	if reason := c.Query("error"); reason != "" {
		return location.Report{Error: reason}, true
	}

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return location.Report{}, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return location.Report{}, false
	}
	return location.Report{Lat: &lat, Lon: &lon}, true
}
