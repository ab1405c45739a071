// Package api exposes the scheduling core over HTTP: creating a job
// enqueues it, and clients poll its status and read back assignments
// once it completes. Every handler is thin — it validates, then either
// reads a repository or enqueues a job; none of them touch the solver
// directly.
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/schedcu/optimizer/internal/repository"
)

// Router wraps an Echo instance configured with every scheduling-core
// route.
type Router struct {
	echo     *echo.Echo
	handlers *Handlers
}

// NewRouter creates a Router backed by db and scheduler.
func NewRouter(db repository.Database, scheduler Scheduler) *Router {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	r := &Router{
		echo:     e,
		handlers: NewHandlers(db, scheduler),
	}
	r.registerRoutes()

	return r
}

func (r *Router) registerRoutes() {
	r.echo.GET("/api/health", r.handlers.Health)
	r.echo.GET("/api/health/db", r.handlers.HealthDB)

	jobs := r.echo.Group("/api/scheduling-jobs")
	jobs.POST("", r.handlers.CreateSchedulingJob)
	jobs.GET("/:id", r.handlers.GetSchedulingJob)
	jobs.GET("/:id/assignments", r.handlers.ListSchedulingJobAssignments)
}

// Echo exposes the underlying Echo instance, mainly so cmd/server can
// register the /metrics handler without the api package depending on
// internal/metrics.
func (r *Router) Echo() *echo.Echo {
	return r.echo
}

// Start starts the HTTP server on addr, blocking until it stops.
func (r *Router) Start(addr string) error {
	return r.echo.Start(addr)
}

// Shutdown gracefully shuts down the HTTP server.
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
