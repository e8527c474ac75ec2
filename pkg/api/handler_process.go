package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProcessStatusResponse is the GET /api/processes/:id/status body.
type ProcessStatusResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	GenerateOnly bool           `json:"generate_only"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	StoppedAt    *time.Time     `json:"stopped_at,omitempty"`
	StopReason   *string        `json:"stop_reason,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	Items        map[string]int `json:"items"`
}

// processStatusHandler handles GET /api/processes/:id/status. The items
// map is a per-status histogram of the process's work items.
func (s *Server) processStatusHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := extractUser(c)

	proc, err := s.processes.GetProcess(ctx, userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	counts, err := s.items.CountByStatus(ctx, proc.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ProcessStatusResponse{
		ID:           proc.ID,
		Name:         proc.Name,
		Status:       string(proc.Status),
		GenerateOnly: proc.GenerateOnly,
		StartedAt:    proc.StartedAt,
		ExpiresAt:    proc.ExpiresAt,
		StoppedAt:    proc.StoppedAt,
		StopReason:   proc.StopReason,
		ErrorMessage: proc.ErrorMessage,
		Items:        counts,
	})
}

// startProcessHandler handles POST /api/processes/:id/start.
func (s *Server) startProcessHandler(c *gin.Context) {
	userID := extractUser(c)

	proc, err := s.controller.StartProcess(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         proc.ID,
		"status":     string(proc.Status),
		"expires_at": proc.ExpiresAt,
	})
}

// stopProcessHandler handles POST /api/processes/:id/stop. Stopping an
// already stopped process succeeds without changing it.
func (s *Server) stopProcessHandler(c *gin.Context) {
	userID := extractUser(c)
	processID := c.Param("id")

	if err := s.controller.StopProcess(c.Request.Context(), userID, processID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     processID,
		"status": "stopped",
	})
}

// postCommentsHandler handles POST /api/processes/:id/post-comments. The
// posting pass runs in the background; 202 means it was enqueued.
func (s *Server) postCommentsHandler(c *gin.Context) {
	userID := extractUser(c)
	processID := c.Param("id")

	if err := s.controller.TriggerPosting(c.Request.Context(), userID, processID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"id":     processID,
		"status": "posting_enqueued",
	})
}
