package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukydev/wastefleet/internal/db"
)

const healthCheckTimeout = 5 * time.Second

// isoMillis matches the timestamp layout of JavaScript's toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// DatabaseChecker reports database reachability and size.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (db.Stats, error)
}

// HealthHandler serves the liveness and database health endpoints.
type HealthHandler struct {
	db  DatabaseChecker
	log log.FieldLogger
	now func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker DatabaseChecker, logger log.FieldLogger) *HealthHandler {
	return &HealthHandler{db: checker, log: logger, now: time.Now}
}

// Register mounts /health and /health/db on r.
func (h *HealthHandler) Register(r gin.IRoutes) {
	r.GET("/health", h.Live)
	r.GET("/health/db", h.Database)
}

// Live always answers ok while the process serves requests.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type healthDetails struct {
	Collections int64   `json:"collections"`
	DataSize    float64 `json:"dataSize"`
	StorageSize float64 `json:"storageSize"`
}

type healthError struct {
	Message string      `json:"message"`
	Code    interface{} `json:"code"`
}

type healthBody struct {
	Status    string         `json:"status"`
	Database  string         `json:"database"`
	Connected bool           `json:"connected"`
	Timestamp string         `json:"timestamp"`
	Details   *healthDetails `json:"details,omitempty"`
	Error     *healthError   `json:"error,omitempty"`
}

// Database pings MongoDB and reports dbStats, or 503 when either fails.
func (h *HealthHandler) Database(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	body := healthBody{
		Database:  "mongodb",
		Timestamp: h.now().UTC().Format(isoMillis),
	}

	stats, err := h.check(ctx)
	if err != nil {
		h.log.WithError(err).Error("MongoDB health check failed")
		body.Status = "unhealthy"
		body.Error = &healthError{Message: err.Error(), Code: errorCode(err)}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body.Status = "healthy"
	body.Connected = true
	body.Details = &healthDetails{
		Collections: stats.Collections,
		DataSize:    stats.DataSize,
		StorageSize: stats.StorageSize,
	}
	c.JSON(http.StatusOK, body)
}

func (h *HealthHandler) check(ctx context.Context) (db.Stats, error) {
	if err := h.db.Ping(ctx); err != nil {
		return db.Stats{}, err
	}
	return h.db.Stats(ctx)
}

// errorCode returns the server error code when there is one.
func errorCode(err error) interface{} {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code != 0 {
		return cmdErr.Code
	}
	return "UNKNOWN"
}
