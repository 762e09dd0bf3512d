package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/meetsched/pkg/models"
)

// createRoomHandler handles POST /api/rooms.
func (s *Server) createRoomHandler(c *gin.Context) {
	var req models.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	room, err := s.rooms.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// getRoomHandler handles GET /api/rooms/:id.
func (s *Server) getRoomHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	room, err := s.rooms.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// listRoomsHandler handles GET /api/rooms.
func (s *Server) listRoomsHandler(c *gin.Context) {
	rooms, err := s.rooms.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// listAvailableRoomsHandler handles GET /api/rooms/available.
func (s *Server) listAvailableRoomsHandler(c *gin.Context) {
	rooms, err := s.rooms.ListAvailable(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// listRoomsByCapacityHandler handles GET /api/rooms/capacity/:min.
func (s *Server) listRoomsByCapacityHandler(c *gin.Context) {
	min, ok := pathInt(c, "min")
	if !ok {
		return
	}

	rooms, err := s.rooms.ListWithMinCapacity(c.Request.Context(), min)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// updateRoomHandler handles PUT /api/rooms/:id.
func (s *Server) updateRoomHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var req models.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	room, err := s.rooms.Update(c.Request.Context(), id, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// deleteRoomHandler handles DELETE /api/rooms/:id.
func (s *Server) deleteRoomHandler(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	if err := s.rooms.Delete(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
