// Package monitor implements the runtime lifecycle monitor: an event-sourced
// in-memory observer that checks four temporal properties over the observable
// meeting lifecycle.
//
//	P1  G(create(id) → F(confirm(id) ∨ reject(id)))
//	P2  G(delete(id) → previouslyCreated(id))
//	P3  G ¬overlap(m, n) for live meetings in the same room
//	P4  G(assign(room, attendees) → |attendees| ≤ capacity(room))
//
// The monitor owns a derived, eventually-consistent mirror of persisted
// state. It is volatile and rebuilds from zero on restart.
package monitor

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/codeready-toolchain/meetsched/pkg/metrics"
)

// Monitor is the process-wide runtime verification monitor. All methods are
// safe for concurrent use; unrelated rooms do not serialize each other.
type Monitor struct {
	// now is swapped in tests to drive the pending sweep.
	now func() time.Time

	// mu guards createdIDs, pendingIDs and roomCapacities.
	mu             sync.RWMutex
	createdIDs     map[int]struct{}
	pendingIDs     map[int]Event
	roomCapacities map[int]int

	// schedMu guards the roomSchedule map; each timeline serializes its own
	// slot mutations.
	schedMu      sync.RWMutex
	roomSchedule map[int]*roomTimeline

	histMu       sync.RWMutex
	eventHistory []Event

	violMu     sync.RWMutex
	violations []PropertyViolation
}

type roomTimeline struct {
	mu    sync.Mutex
	slots []slot
}

type slot struct {
	meetingID int
	start     int64
	end       int64
}

// New builds an empty monitor.
func New() *Monitor {
	m := &Monitor{now: time.Now}
	m.resetLocked()
	return m
}

func (m *Monitor) resetLocked() {
	m.createdIDs = make(map[int]struct{})
	m.pendingIDs = make(map[int]Event)
	m.roomCapacities = make(map[int]int)
	m.roomSchedule = make(map[int]*roomTimeline)
	m.eventHistory = nil
	m.violations = nil
}

// RegisterRoom records a room's capacity for P4 checking.
func (m *Monitor) RegisterRoom(roomID, capacity int) {
	m.mu.Lock()
	m.roomCapacities[roomID] = capacity
	m.mu.Unlock()

	m.schedMu.Lock()
	if _, ok := m.roomSchedule[roomID]; !ok {
		m.roomSchedule[roomID] = &roomTimeline{}
	}
	m.schedMu.Unlock()

	slog.Debug("Monitor: registered room", "room_id", roomID, "capacity", capacity)
}

// OnCreate observes a CREATE transition. It starts P1 tracking and checks P4
// and P3. Returns the newly raised violations.
func (m *Monitor) OnCreate(info MeetingInfo) []PropertyViolation {
	start, end := info.Start, info.End
	ev := Event{
		Type:             EventCreate,
		MeetingID:        info.ID,
		RoomID:           info.RoomID,
		Start:            &start,
		End:              &end,
		ParticipantCount: info.ParticipantCount,
		NewStatus:        "PENDING",
		Timestamp:        m.now(),
	}
	m.appendHistory(ev)

	m.mu.Lock()
	m.createdIDs[info.ID] = struct{}{}
	m.pendingIDs[info.ID] = ev
	capacity, capacityKnown := m.roomCapacities[info.RoomID]
	m.mu.Unlock()

	var raised []PropertyViolation

	if capacityKnown && info.ParticipantCount > capacity {
		v := m.violation(SeverityError, PropertyCapacityExceeded,
			"Room capacity exceeded", info.ID,
			fmt.Sprintf("Meeting has %d participants but room capacity is %d",
				info.ParticipantCount, capacity))
		if m.record(v) {
			raised = append(raised, v)
		}
	}

	tl := m.timeline(info.RoomID)
	tl.mu.Lock()
	overlapped := false
	for _, existing := range tl.slots {
		if existing.meetingID == info.ID {
			continue
		}
		if start.Unix() < existing.end && existing.start < end.Unix() {
			overlapped = true
			v := m.violation(SeverityCritical, PropertyMeetingOverlap,
				"Overlapping meetings detected in same room", info.ID,
				fmt.Sprintf("Meeting %d overlaps with meeting %d in room %d",
					info.ID, existing.meetingID, info.RoomID))
			if m.record(v) {
				raised = append(raised, v)
			}
		}
	}
	if !overlapped {
		tl.slots = append(tl.slots, slot{meetingID: info.ID, start: start.Unix(), end: end.Unix()})
	}
	tl.mu.Unlock()

	slog.Info("Monitor: CREATE observed",
		"meeting_id", info.ID, "room_id", info.RoomID, "violations", len(raised))
	return raised
}

// OnConfirm observes a CONFIRM transition, resolving P1 for the meeting.
func (m *Monitor) OnConfirm(meetingID int) []PropertyViolation {
	m.appendHistory(Event{
		Type:           EventConfirm,
		MeetingID:      meetingID,
		PreviousStatus: "PENDING",
		NewStatus:      "CONFIRMED",
		Timestamp:      m.now(),
	})

	m.mu.Lock()
	_, wasPending := m.pendingIDs[meetingID]
	delete(m.pendingIDs, meetingID)
	m.mu.Unlock()

	var raised []PropertyViolation
	if !wasPending {
		v := m.violation(SeverityWarning, PropertyConfirmWithoutCreate,
			"Confirming a meeting that was not tracked as pending", meetingID,
			"Meeting may have been created before monitor was active")
		if m.record(v) {
			raised = append(raised, v)
		}
	}

	m.scrubUnresolved(meetingID)

	slog.Info("Monitor: CONFIRM observed", "meeting_id", meetingID)
	return raised
}

// OnReject observes a REJECT transition. A rejected booking releases its
// room slot.
func (m *Monitor) OnReject(meetingID int) []PropertyViolation {
	m.appendHistory(Event{
		Type:           EventReject,
		MeetingID:      meetingID,
		PreviousStatus: "PENDING",
		NewStatus:      "REJECTED",
		Timestamp:      m.now(),
	})

	m.mu.Lock()
	delete(m.pendingIDs, meetingID)
	m.mu.Unlock()

	m.scrubUnresolved(meetingID)
	m.removeSlots(meetingID)

	slog.Info("Monitor: REJECT observed", "meeting_id", meetingID)
	return nil
}

// OnDelete observes a DELETE transition and checks P2.
func (m *Monitor) OnDelete(meetingID int, previousStatus string) []PropertyViolation {
	m.appendHistory(Event{
		Type:           EventDelete,
		MeetingID:      meetingID,
		PreviousStatus: previousStatus,
		Timestamp:      m.now(),
	})

	m.mu.Lock()
	_, wasCreated := m.createdIDs[meetingID]
	delete(m.createdIDs, meetingID)
	delete(m.pendingIDs, meetingID)
	m.mu.Unlock()

	var raised []PropertyViolation
	if !wasCreated {
		v := m.violation(SeverityError, PropertyDeleteNonexistent,
			"Attempting to delete a meeting that doesn't exist", meetingID,
			"Property G(delete(id) -> previouslyCreated(id)) violated")
		if m.record(v) {
			raised = append(raised, v)
		}
	}

	m.removeSlots(meetingID)

	slog.Info("Monitor: DELETE observed",
		"meeting_id", meetingID, "violations", len(raised))
	return raised
}

// OnCancel observes a CANCEL transition.
func (m *Monitor) OnCancel(meetingID int, previousStatus string) []PropertyViolation {
	m.appendHistory(Event{
		Type:           EventCancel,
		MeetingID:      meetingID,
		PreviousStatus: previousStatus,
		NewStatus:      "CANCELLED",
		Timestamp:      m.now(),
	})

	m.mu.Lock()
	delete(m.pendingIDs, meetingID)
	m.mu.Unlock()

	m.removeSlots(meetingID)

	slog.Info("Monitor: CANCEL observed", "meeting_id", meetingID)
	return nil
}

// OnComplete observes a COMPLETE transition. A finished meeting is no longer
// live, so its room slot is released.
func (m *Monitor) OnComplete(meetingID int) []PropertyViolation {
	m.appendHistory(Event{
		Type:           EventComplete,
		MeetingID:      meetingID,
		PreviousStatus: "CONFIRMED",
		NewStatus:      "COMPLETED",
		Timestamp:      m.now(),
	})

	m.removeSlots(meetingID)

	slog.Info("Monitor: COMPLETE observed", "meeting_id", meetingID)
	return nil
}

// OnUpdate logs an UPDATE event. Updates do not change pending tracking.
func (m *Monitor) OnUpdate(meetingID int) {
	m.appendHistory(Event{
		Type:      EventUpdate,
		MeetingID: meetingID,
		Timestamp: m.now(),
	})
}

// CheckPending sweeps P1: every pending meeting whose start has passed
// without a CONFIRM or REJECT raises UNRESOLVED_MEETING. Called periodically
// and at service checkpoints.
func (m *Monitor) CheckPending() []PropertyViolation {
	now := m.now()

	m.mu.RLock()
	pending := make([]Event, 0, len(m.pendingIDs))
	for _, ev := range m.pendingIDs {
		pending = append(pending, ev)
	}
	m.mu.RUnlock()

	var raised []PropertyViolation
	for _, ev := range pending {
		if ev.Start == nil || !ev.Start.Before(now) {
			continue
		}
		v := m.violation(SeverityError, PropertyUnresolvedMeeting,
			"Meeting started without being confirmed or rejected", ev.MeetingID,
			fmt.Sprintf("Property G(create(id) -> F(confirm(id) v reject(id))) violated. "+
				"Meeting created at %s, start time was %s",
				ev.Timestamp.UTC().Format(time.RFC3339),
				ev.Start.UTC().Format(time.RFC3339)))
		if m.record(v) {
			raised = append(raised, v)
		}
	}
	return raised
}

// Violations returns a copy of the violation log.
func (m *Monitor) Violations() []PropertyViolation {
	m.violMu.RLock()
	defer m.violMu.RUnlock()
	out := make([]PropertyViolation, len(m.violations))
	copy(out, m.violations)
	return out
}

// ViolationsBySeverity returns the violations of the given severity.
func (m *Monitor) ViolationsBySeverity(s Severity) []PropertyViolation {
	m.violMu.RLock()
	defer m.violMu.RUnlock()
	return lo.Filter(m.violations, func(v PropertyViolation, _ int) bool {
		return v.Severity == s
	})
}

// EventHistory returns a copy of the observed event log.
func (m *Monitor) EventHistory() []Event {
	m.histMu.RLock()
	defer m.histMu.RUnlock()
	out := make([]Event, len(m.eventHistory))
	copy(out, m.eventHistory)
	return out
}

// PendingCount returns the number of meetings awaiting confirm/reject.
func (m *Monitor) PendingCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pendingIDs)
}

// RemoveViolationsForMeeting prunes all violations recorded for the meeting.
// The service calls this after a committed delete.
func (m *Monitor) RemoveViolationsForMeeting(meetingID int) {
	m.violMu.Lock()
	defer m.violMu.Unlock()
	m.violations = lo.Filter(m.violations, func(v PropertyViolation, _ int) bool {
		return v.MeetingID != meetingID
	})
}

// Statistics summarizes the monitor's state.
type Statistics struct {
	TotalEvents        int `json:"totalEvents"`
	PendingMeetings    int `json:"pendingMeetings"`
	TrackedMeetings    int `json:"trackedMeetings"`
	TotalViolations    int `json:"totalViolations"`
	CriticalViolations int `json:"criticalViolations"`
	ErrorViolations    int `json:"errorViolations"`
	WarningViolations  int `json:"warningViolations"`
}

// Stats returns totals and per-severity violation counts.
func (m *Monitor) Stats() Statistics {
	m.histMu.RLock()
	totalEvents := len(m.eventHistory)
	m.histMu.RUnlock()

	m.mu.RLock()
	pending := len(m.pendingIDs)
	tracked := len(m.createdIDs)
	m.mu.RUnlock()

	m.violMu.RLock()
	defer m.violMu.RUnlock()
	st := Statistics{
		TotalEvents:     totalEvents,
		PendingMeetings: pending,
		TrackedMeetings: tracked,
		TotalViolations: len(m.violations),
	}
	for _, v := range m.violations {
		switch v.Severity {
		case SeverityCritical:
			st.CriticalViolations++
		case SeverityError:
			st.ErrorViolations++
		case SeverityWarning:
			st.WarningViolations++
		}
	}
	return st
}

// Reset clears all monitoring state.
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.schedMu.Lock()
	m.histMu.Lock()
	m.violMu.Lock()
	m.resetLocked()
	m.violMu.Unlock()
	m.histMu.Unlock()
	m.schedMu.Unlock()
	m.mu.Unlock()
	slog.Info("Monitor: state reset")
}

func (m *Monitor) violation(sev Severity, property, description string, meetingID int, details string) PropertyViolation {
	return PropertyViolation{
		Property:    property,
		Description: description,
		Severity:    sev,
		MeetingID:   meetingID,
		DetectedAt:  m.now(),
		Details:     details,
	}
}

// record appends the violation unless it duplicates an existing entry.
// Duplicates are suppressed from both the log and the caller's return list.
func (m *Monitor) record(v PropertyViolation) bool {
	m.violMu.Lock()
	defer m.violMu.Unlock()
	for _, existing := range m.violations {
		if existing.sameAs(v) {
			return false
		}
	}
	m.violations = append(m.violations, v)
	metrics.Violations.WithLabelValues(v.Property, string(v.Severity)).Inc()
	return true
}

// scrubUnresolved drops prior UNRESOLVED_MEETING errors once the meeting has
// been confirmed or rejected.
func (m *Monitor) scrubUnresolved(meetingID int) {
	m.violMu.Lock()
	defer m.violMu.Unlock()
	m.violations = lo.Filter(m.violations, func(v PropertyViolation, _ int) bool {
		return !(v.Property == PropertyUnresolvedMeeting && v.MeetingID == meetingID)
	})
}

func (m *Monitor) appendHistory(ev Event) {
	m.histMu.Lock()
	m.eventHistory = append(m.eventHistory, ev)
	m.histMu.Unlock()
}

func (m *Monitor) timeline(roomID int) *roomTimeline {
	m.schedMu.RLock()
	tl, ok := m.roomSchedule[roomID]
	m.schedMu.RUnlock()
	if ok {
		return tl
	}
	m.schedMu.Lock()
	defer m.schedMu.Unlock()
	if tl, ok = m.roomSchedule[roomID]; !ok {
		tl = &roomTimeline{}
		m.roomSchedule[roomID] = tl
	}
	return tl
}

func (m *Monitor) removeSlots(meetingID int) {
	m.schedMu.RLock()
	timelines := make([]*roomTimeline, 0, len(m.roomSchedule))
	for _, tl := range m.roomSchedule {
		timelines = append(timelines, tl)
	}
	m.schedMu.RUnlock()

	for _, tl := range timelines {
		tl.mu.Lock()
		tl.slots = lo.Filter(tl.slots, func(s slot, _ int) bool {
			return s.meetingID != meetingID
		})
		tl.mu.Unlock()
	}
}
