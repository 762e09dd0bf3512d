package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/meetsched/pkg/models"
)

// createMeetingHandler handles POST /api/meetings. A feasible request is
// persisted and answered 201; an infeasible one is answered 409 with the
// constraint witnesses.
func (s *Server) createMeetingHandler(c *gin.Context) {
	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.meetings.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if result.Success {
		c.JSON(http.StatusCreated, result)
		return
	}
	c.JSON(http.StatusConflict, result)
}

// getMeetingHandler handles GET /api/meetings/:id.
func (s *Server) getMeetingHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	m, err := s.meetings.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// listMeetingsHandler handles GET /api/meetings.
func (s *Server) listMeetingsHandler(c *gin.Context) {
	ms, err := s.meetings.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// listMeetingsByStatusHandler handles GET /api/meetings/status/:status.
func (s *Server) listMeetingsByStatusHandler(c *gin.Context) {
	status, err := models.ParseMeetingStatus(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ms, err := s.meetings.ListByStatus(c.Request.Context(), status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// listMeetingsByRoomHandler handles GET /api/meetings/room/:roomId.
func (s *Server) listMeetingsByRoomHandler(c *gin.Context) {
	roomID, ok := pathInt(c, "roomId")
	if !ok {
		return
	}

	ms, err := s.meetings.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// listMeetingsInRangeHandler handles GET /api/meetings/range?start&end.
// Only meetings fully contained in the window and still live (pending or
// confirmed) are returned.
func (s *Server) listMeetingsInRangeHandler(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start: must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end: must be RFC3339"})
		return
	}

	ms, err := s.meetings.ListInRange(c.Request.Context(), start, end)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// updateMeetingHandler handles PUT /api/meetings/:id. Nil fields keep their
// persisted values; the merged meeting is re-verified before saving.
func (s *Server) updateMeetingHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.meetings.Update(c.Request.Context(), id, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if result.Success {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusConflict, result)
}

// deleteMeetingHandler handles DELETE /api/meetings/:id. The monitor sees the
// delete first and can veto it, which maps to 409.
func (s *Server) deleteMeetingHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	if err := s.meetings.Delete(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// transitionHandler builds the POST /api/meetings/:id/{action} handlers.
func (s *Server) transitionHandler(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathInt(c, "id")
		if !ok {
			return
		}

		var (
			m   *models.MeetingResponse
			err error
		)
		switch action {
		case "confirm":
			m, err = s.meetings.Confirm(c.Request.Context(), id)
		case "reject":
			m, err = s.meetings.Reject(c.Request.Context(), id)
		case "cancel":
			m, err = s.meetings.Cancel(c.Request.Context(), id)
		case "complete":
			m, err = s.meetings.Complete(c.Request.Context(), id)
		}
		if err != nil {
			mapServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// pathInt parses a numeric path parameter, answering 400 itself on failure.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}
