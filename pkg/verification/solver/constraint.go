// Package solver implements the static constraint checker that decides
// whether a proposed meeting is admissible against the confirmed snapshot.
//
// The checker is structured like an incremental SMT session: every conflict
// hypothesis is asserted inside its own push/pop frame and checked for
// satisfiability, so richer constraint families (preferred rooms, soft
// priorities, multi-room packing) can be added without restructuring, and a
// real SMT adapter can be substituted behind the Backend interface.
package solver

import "time"

// SchedulingConstraint is a proposed meeting as seen by the decision backend.
// MeetingID is set only for updates; the meeting with that id is excluded
// from the existing set during checking.
type SchedulingConstraint struct {
	MeetingID      *int      `json:"meetingId,omitempty"`
	RoomID         int       `json:"roomId"`
	RoomCapacity   int       `json:"roomCapacity"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	ParticipantIDs []int     `json:"participantIds"`
}

// ValidTimeRange reports whether the proposed interval is well-formed.
func (c SchedulingConstraint) ValidTimeRange() bool {
	return c.Start.Before(c.End)
}

// FitsCapacity reports whether the participant count fits the room.
func (c SchedulingConstraint) FitsCapacity() bool {
	return len(c.ParticipantIDs) <= c.RoomCapacity
}

// StartEpoch returns the start instant as UTC epoch seconds.
func (c SchedulingConstraint) StartEpoch() int64 { return c.Start.Unix() }

// EndEpoch returns the end instant as UTC epoch seconds.
func (c SchedulingConstraint) EndEpoch() int64 { return c.End.Unix() }

// ExistingMeeting is a confirmed meeting in the snapshot the backend checks
// proposals against.
type ExistingMeeting struct {
	MeetingID      int       `json:"meetingId"`
	RoomID         int       `json:"roomId"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	ParticipantIDs []int     `json:"participantIds"`
}

// StartEpoch returns the start instant as UTC epoch seconds.
func (m ExistingMeeting) StartEpoch() int64 { return m.Start.Unix() }

// EndEpoch returns the end instant as UTC epoch seconds.
func (m ExistingMeeting) EndEpoch() int64 { return m.End.Unix() }

// Involves reports whether the meeting books the given participant.
func (m ExistingMeeting) Involves(participantID int) bool {
	for _, id := range m.ParticipantIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

// Overlaps is the standard overlap predicate over half-open intervals:
// aStart < bEnd AND bStart < aEnd.
func Overlaps(aStart, aEnd, bStart, bEnd int64) bool {
	return aStart < bEnd && bStart < aEnd
}
