package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/meetsched/pkg/models"
)

// createParticipantHandler handles POST /api/participants.
func (s *Server) createParticipantHandler(c *gin.Context) {
	var req models.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	p, err := s.participants.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// getParticipantHandler handles GET /api/participants/:id.
func (s *Server) getParticipantHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	p, err := s.participants.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// listParticipantsHandler handles GET /api/participants.
func (s *Server) listParticipantsHandler(c *gin.Context) {
	ps, err := s.participants.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// listParticipantsByDepartmentHandler handles GET /api/participants/department/:department.
func (s *Server) listParticipantsByDepartmentHandler(c *gin.Context) {
	ps, err := s.participants.ListByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// updateParticipantHandler handles PUT /api/participants/:id.
func (s *Server) updateParticipantHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var req models.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	p, err := s.participants.Update(c.Request.Context(), id, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// deleteParticipantHandler handles DELETE /api/participants/:id.
func (s *Server) deleteParticipantHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	if err := s.participants.Delete(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
