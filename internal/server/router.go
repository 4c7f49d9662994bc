// Package server wires the HTTP routes and runs the API server.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/handlers"
	"github.com/ukydev/wastefleet/internal/metrics"
	"github.com/ukydev/wastefleet/internal/middleware"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Vehicles    db.VehicleRepo
	Producers   db.ProducerRepo
	Collections db.CollectionRepo
	Database    handlers.DatabaseChecker
	Metrics     *metrics.Metrics
	// RateLimiter guards /api routes. Nil disables limiting.
	RateLimiter *middleware.RateLimiter
	Logger      log.FieldLogger
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = log.StandardLogger()
	}

	r := gin.New()
	r.Use(middleware.Recovery(d.Logger), middleware.RequestID(), middleware.AccessLog(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	handlers.NewHealthHandler(d.Database, d.Logger).Register(r)

	api := r.Group("/api")
	if d.RateLimiter != nil {
		api.Use(d.RateLimiter.Middleware())
	}
	handlers.NewVehicleHandler(d.Vehicles).Register(api)
	handlers.NewProducerHandler(d.Producers).Register(api)
	handlers.NewCollectionHandler(d.Collections).Register(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}
