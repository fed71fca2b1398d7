package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drakonoslav/bulk-coach-sub003/external/healthsync"
	"github.com/drakonoslav/bulk-coach-sub003/store"
)

// Server serves the readiness API.
type Server struct {
	server *http.Server

	coachStore store.CoachStore
	healthSync *healthsync.Client

	traceMode bool
}

// NewServer returns a new server instance backed by the given store and
// snapshot client.
func NewServer(coachStore store.CoachStore, healthSync *healthsync.Client, traceMode bool) *Server {
	return &Server{
		coachStore: coachStore,
		healthSync: healthSync,
		traceMode:  traceMode,
	}
}

// Run starts the server listening on addr.
func (s *Server) Run(addr string) error {
	if !s.traceMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	v1 := r.Group("/api/v1")
	v1.Use(s.recognizeAccount)
	{
		v1.GET("/readiness/:date", s.readinessForDate)
		v1.GET("/readiness/:date/advice", s.readinessAdvice)
		v1.GET("/readiness/average", s.readinessAverage)
		v1.POST("/readiness/recompute", s.recomputeReadiness)
		v1.POST("/snapshots", s.importSnapshot)
	}

	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// recognizeAccount reads the account identity the auth gateway forwards.
// Authentication itself happens upstream of this service.
func (s *Server) recognizeAccount(c *gin.Context) {
	account := c.GetHeader("X-Account-Number")
	if account == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	c.Set("requester", account)
	c.Next()
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.coachStore.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
