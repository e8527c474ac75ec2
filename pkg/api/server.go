// Package api exposes the HTTP control surface: health, process status,
// and the start/stop/post-comments triggers. Everything else happens in
// the background scheduler.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/pkg/database"
	"github.com/yourmoment/yourmoment/pkg/services"
)

// ProcessController is the slice of the scheduler the API drives.
type ProcessController interface {
	StartProcess(ctx context.Context, userID, processID string) (*ent.Process, error)
	StopProcess(ctx context.Context, userID, processID string) error
	TriggerPosting(ctx context.Context, userID, processID string) error
}

// Server holds the handler dependencies.
type Server struct {
	db         *database.Client
	processes  *services.ProcessService
	items      *services.WorkItemService
	controller ProcessController

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	processes *services.ProcessService,
	items *services.WorkItemService,
	controller ProcessController,
) *Server {
	return &Server{
		db:         db,
		processes:  processes,
		items:      items,
		controller: controller,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.healthHandler)

	processes := router.Group("/api/processes")
	{
		processes.GET("/:id/status", s.processStatusHandler)
		processes.POST("/:id/start", s.startProcessHandler)
		processes.POST("/:id/stop", s.stopProcessHandler)
		processes.POST("/:id/post-comments", s.postCommentsHandler)
	}

	return router
}

// Start runs the HTTP server on the given address. Blocks until the
// server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
