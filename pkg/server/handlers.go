package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
)

func (s *Server) listEvents(c *gin.Context) {
	events, err := services.ListEvents(c.Request.Context(), s.store)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func (s *Server) createEvent(c *gin.Context) {
	var input services.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	events, err := services.CreateEvent(c.Request.Context(), s.store, s.logger, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": events})
}

func (s *Server) updateEvent(c *gin.Context) {
	var input services.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := services.UpdateEvent(c.Request.Context(), s.store, s.logger, c.Param("id"), input)
	if errors.Is(err, services.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event-not-found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

func (s *Server) deleteEvent(c *gin.Context) {
	err := services.DeleteEvent(c.Request.Context(), s.store, s.logger, c.Param("id"))
	if errors.Is(err, services.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event-not-found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// candidates is the legacy skill-overlap-only query. Response shape is
// fixed: {"data": [...]} or 404 {"error": "event not found"}.
func (s *Server) candidates(c *gin.Context) {
	volunteers, err := services.Candidates(c.Request.Context(), s.store, c.Param("id"))
	if errors.Is(err, services.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": volunteers})
}

type assignRequest struct {
	VolunteerIDs []string `json:"volunteerIds"`
	Hours        float64  `json:"hours"`
}

// assign is the legacy batch-assign endpoint. Response shape is fixed:
// {"ok": true, "assigned": [...], "eventId": ...} or 404
// {"error": "event-not-found"}.
func (s *Server) assign(c *gin.Context) {
	var req assignRequest
	// An empty or malformed body degrades to an empty batch, as the
	// original endpoint did
	_ = c.ShouldBindJSON(&req)
	if req.Hours <= 0 {
		req.Hours = s.hours
	}

	result, err := services.AssignVolunteers(c.Request.Context(), s.store, s.logger, s.notifier,
		c.Param("id"), req.VolunteerIDs, req.Hours)
	if errors.Is(err, services.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event-not-found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "assigned": result.Assigned, "eventId": result.EventID})
}

func (s *Server) matches(c *gin.Context) {
	includeUnavailable := c.Query("includeUnavailable") == "true"
	result, err := services.MatchCandidates(c.Request.Context(), s.store, s.logger,
		c.Param("id"), includeUnavailable)
	if errors.Is(err, services.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event-not-found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"event":       result.Event,
		"bestMatches": result.Ranking.BestMatches,
		"others":      result.Ranking.Others,
		"assigned":    result.Assigned,
	})
}

type unassignRequest struct {
	VolunteerID string `json:"volunteerId"`
}

func (s *Server) unassign(c *gin.Context) {
	var req unassignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VolunteerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "volunteerId is required"})
		return
	}
	if err := services.Unassign(c.Request.Context(), s.store, s.logger, req.VolunteerID, c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) listVolunteers(c *gin.Context) {
	volunteers, err := services.ListVolunteers(c.Request.Context(), s.store)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": volunteers})
}

func (s *Server) saveVolunteer(c *gin.Context) {
	var v model.Volunteer
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.ID = c.Param("id")
	if err := services.SaveProfile(c.Request.Context(), s.store, s.logger, &v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": v})
}

func (s *Server) notifications(c *gin.Context) {
	notifications, err := s.store.NotificationsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notifications})
}

func (s *Server) volunteerHistory(c *gin.Context) {
	entries, err := services.HistoryForVolunteer(c.Request.Context(), s.store, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func (s *Server) listHistory(c *gin.Context) {
	entries, err := services.ListHistory(c.Request.Context(), s.store)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func (s *Server) addHistory(c *gin.Context) {
	var entry model.HistoryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := services.AddHistoryEntry(c.Request.Context(), s.store, s.logger, &entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "History entry added successfully.",
		"data":    entry,
	})
}

// fail reports a store failure as a generic error; matching and listing
// callers degrade rather than crash
func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
