// Package api exposes the scheduler over HTTP. Handlers stay thin: they bind
// the payload, call the service layer, and translate errors to statuses.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codeready-toolchain/meetsched/pkg/database"
	"github.com/codeready-toolchain/meetsched/pkg/services"
	"github.com/codeready-toolchain/meetsched/pkg/version"
)

// Server bundles the services behind the REST surface.
type Server struct {
	db           *database.Client
	meetings     *services.MeetingService
	rooms        *services.RoomService
	participants *services.ParticipantService
}

// NewServer creates a new API server.
func NewServer(db *database.Client, meetings *services.MeetingService, rooms *services.RoomService, participants *services.ParticipantService) *Server {
	return &Server{
		db:           db,
		meetings:     meetings,
		rooms:        rooms,
		participants: participants,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), securityHeaders())

	r.GET("/healthz", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	meetings := r.Group("/api/meetings")
	{
		meetings.POST("", s.createMeetingHandler)
		meetings.GET("", s.listMeetingsHandler)
		meetings.GET("/range", s.listMeetingsInRangeHandler)
		meetings.GET("/status/:status", s.listMeetingsByStatusHandler)
		meetings.GET("/room/:roomId", s.listMeetingsByRoomHandler)
		meetings.GET("/:id", s.getMeetingHandler)
		meetings.PUT("/:id", s.updateMeetingHandler)
		meetings.DELETE("/:id", s.deleteMeetingHandler)
		meetings.POST("/:id/confirm", s.transitionHandler("confirm"))
		meetings.POST("/:id/reject", s.transitionHandler("reject"))
		meetings.POST("/:id/cancel", s.transitionHandler("cancel"))
		meetings.POST("/:id/complete", s.transitionHandler("complete"))

		meetings.POST("/available-slots", s.availableSlotsHandler)
		meetings.POST("/verify-batch", s.verifyBatchHandler)

		verification := meetings.Group("/verification")
		{
			verification.GET("/stats", s.verificationStatsHandler)
			verification.GET("/violations", s.violationsHandler)
			verification.POST("/check-pending", s.checkPendingHandler)
			verification.GET("/solver", s.getSolverStateHandler)
			verification.POST("/solver", s.setSolverStateHandler)
		}
	}

	rooms := r.Group("/api/rooms")
	{
		rooms.POST("", s.createRoomHandler)
		rooms.GET("", s.listRoomsHandler)
		rooms.GET("/available", s.listAvailableRoomsHandler)
		rooms.GET("/capacity/:min", s.listRoomsByCapacityHandler)
		rooms.GET("/:id", s.getRoomHandler)
		rooms.PUT("/:id", s.updateRoomHandler)
		rooms.DELETE("/:id", s.deleteRoomHandler)
	}

	participants := r.Group("/api/participants")
	{
		participants.POST("", s.createParticipantHandler)
		participants.GET("", s.listParticipantsHandler)
		participants.GET("/department/:department", s.listParticipantsByDepartmentHandler)
		participants.GET("/:id", s.getParticipantHandler)
		participants.PUT("/:id", s.updateParticipantHandler)
		participants.DELETE("/:id", s.deleteParticipantHandler)
	}

	return r
}

// healthHandler reports service and database health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
