// Package server exposes the matching engine over a JSON HTTP API. The
// candidates and assign endpoints keep the exact response shapes of the
// legacy API, so existing UI callers keep working.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// Server wires the HTTP routes to the services layer
type Server struct {
	store    store.Store
	logger   *zap.Logger
	notifier services.Notifier
	hours    float64
}

// New creates a Server. notifier may be nil (records only, no email).
func New(st store.Store, logger *zap.Logger, notifier services.Notifier, defaultHours float64) *Server {
	if defaultHours <= 0 {
		defaultHours = services.DefaultHours
	}
	return &Server{store: st, logger: logger, notifier: notifier, hours: defaultHours}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/events", s.listEvents)
	r.POST("/events", s.createEvent)
	r.PUT("/events/:id", s.updateEvent)
	r.DELETE("/events/:id", s.deleteEvent)

	// Legacy compatibility endpoints; response shapes are fixed
	r.GET("/events/:id/candidates", s.candidates)
	r.POST("/events/:id/assign", s.assign)

	r.GET("/events/:id/matches", s.matches)
	r.POST("/events/:id/unassign", s.unassign)

	r.GET("/volunteers", s.listVolunteers)
	r.PUT("/volunteers/:id", s.saveVolunteer)
	r.GET("/volunteers/:id/notifications", s.notifications)
	r.GET("/volunteers/:id/history", s.volunteerHistory)

	r.GET("/history", s.listHistory)
	r.POST("/history", s.addHistory)

	return r
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	s.logger.Info("HTTP API listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}
