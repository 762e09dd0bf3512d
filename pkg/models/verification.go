package models

import (
	"time"

	"github.com/codeready-toolchain/meetsched/pkg/verification/monitor"
)

// AvailableSlotsRequest asks for free slot starts in a room.
type AvailableSlotsRequest struct {
	RoomID          int       `json:"roomId"`
	DurationMinutes int       `json:"durationMinutes"`
	SearchStart     time.Time `json:"searchStart"`
	SearchEnd       time.Time `json:"searchEnd"`
}

// AvailableSlotsResponse lists the free slot starts found.
type AvailableSlotsResponse struct {
	RoomID          int         `json:"roomId"`
	DurationMinutes int         `json:"durationMinutes"`
	SearchStart     time.Time   `json:"searchStart"`
	SearchEnd       time.Time   `json:"searchEnd"`
	AvailableSlots  []time.Time `json:"availableSlots"`
	TotalSlots      int         `json:"totalSlots"`
}

// BatchMeeting is one proposal inside a batch verification request.
type BatchMeeting struct {
	RoomID         int       `json:"roomId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	ParticipantIDs []int     `json:"participantIds"`
}

// BatchVerifyRequest is a planning query; nothing is persisted.
type BatchVerifyRequest struct {
	Meetings []BatchMeeting `json:"meetings"`
}

// SolverState reports and updates the decision backend's live toggle.
type SolverState struct {
	Enabled bool `json:"enabled"`
}

// VerificationStats merges solver state with monitor statistics.
type VerificationStats struct {
	SolverEnabled bool `json:"solverEnabled"`
	monitor.Statistics
}
