package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/meetsched/pkg/models"
)

// availableSlotsHandler handles POST /api/meetings/available-slots.
func (s *Server) availableSlotsHandler(c *gin.Context) {
	var req models.AvailableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := s.meetings.FindAvailableSlots(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// verifyBatchHandler handles POST /api/meetings/verify-batch. The proposals
// are checked against the confirmed schedule and each other; nothing is
// persisted.
func (s *Server) verifyBatchHandler(c *gin.Context) {
	var req models.BatchVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.meetings.VerifyBatch(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// verificationStatsHandler handles GET /api/meetings/verification/stats.
func (s *Server) verificationStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.meetings.Stats())
}

// violationsHandler handles GET /api/meetings/verification/violations.
func (s *Server) violationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.meetings.Violations())
}

// checkPendingHandler handles POST /api/meetings/verification/check-pending.
// It runs the liveness sweep on demand and returns the violations found.
func (s *Server) checkPendingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.meetings.CheckPending())
}

// getSolverStateHandler handles GET /api/meetings/verification/solver.
func (s *Server) getSolverStateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SolverState{Enabled: s.meetings.SolverEnabled()})
}

// setSolverStateHandler handles POST /api/meetings/verification/solver.
func (s *Server) setSolverStateHandler(c *gin.Context) {
	var state models.SolverState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	s.meetings.SetSolverEnabled(state.Enabled)
	c.JSON(http.StatusOK, models.SolverState{Enabled: s.meetings.SolverEnabled()})
}
