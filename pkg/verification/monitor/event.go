package monitor

import "time"

// EventType tags a lifecycle event in the monitor's history.
type EventType string

const (
	EventCreate   EventType = "CREATE"
	EventUpdate   EventType = "UPDATE"
	EventDelete   EventType = "DELETE"
	EventConfirm  EventType = "CONFIRM"
	EventReject   EventType = "REJECT"
	EventCancel   EventType = "CANCEL"
	EventComplete EventType = "COMPLETE"
)

// Event is a monitor-local record of one observed state transition. CREATE
// events carry the room, interval and participant count; DELETE and CANCEL
// carry the prior status; the remaining transitions carry both statuses.
type Event struct {
	Type             EventType  `json:"type"`
	MeetingID        int        `json:"meetingId"`
	RoomID           int        `json:"roomId,omitempty"`
	Start            *time.Time `json:"start,omitempty"`
	End              *time.Time `json:"end,omitempty"`
	ParticipantCount int        `json:"participantCount,omitempty"`
	PreviousStatus   string     `json:"previousStatus,omitempty"`
	NewStatus        string     `json:"newStatus,omitempty"`
	Timestamp        time.Time  `json:"timestamp"`
}

// MeetingInfo is the lifecycle-relevant slice of a persisted meeting handed
// to OnCreate.
type MeetingInfo struct {
	ID               int
	RoomID           int
	Start            time.Time
	End              time.Time
	ParticipantCount int
}
