// Package models holds the request and result value types that cross the API
// boundary unchanged.
package models

import (
	"fmt"
	"strings"
	"time"
)

// MeetingStatus is the lifecycle state of a meeting.
type MeetingStatus string

const (
	StatusPending   MeetingStatus = "PENDING"
	StatusConfirmed MeetingStatus = "CONFIRMED"
	StatusRejected  MeetingStatus = "REJECTED"
	StatusCancelled MeetingStatus = "CANCELLED"
	StatusCompleted MeetingStatus = "COMPLETED"
)

// ParseMeetingStatus parses a status string case-insensitively.
func ParseMeetingStatus(s string) (MeetingStatus, error) {
	switch MeetingStatus(strings.ToUpper(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown meeting status %q", s)
	}
}

// Terminal reports whether no further transitions are allowed from s.
func (s MeetingStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo validates the status machine:
// PENDING → CONFIRMED | REJECTED, CONFIRMED → CANCELLED | COMPLETED.
func (s MeetingStatus) CanTransitionTo(to MeetingStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusConfirmed || to == StatusRejected
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	default:
		return false
	}
}

// MeetingRequest is the inbound payload for create and update. On create all
// scheduling fields are required; on update nil fields keep their persisted
// values.
type MeetingRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	RoomID         *int       `json:"roomId,omitempty"`
	ParticipantIDs []int      `json:"participantIds,omitempty"`
}

// MeetingResponse is the outbound representation of a persisted meeting.
type MeetingResponse struct {
	ID             int                   `json:"id"`
	Title          string                `json:"title"`
	Description    *string               `json:"description,omitempty"`
	StartTime      time.Time             `json:"startTime"`
	EndTime        time.Time             `json:"endTime"`
	RoomID         int                   `json:"roomId"`
	RoomName       string                `json:"roomName,omitempty"`
	ParticipantIDs []int                 `json:"participantIds"`
	Participants   []ParticipantResponse `json:"participants,omitempty"`
	Status         MeetingStatus         `json:"status"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}
