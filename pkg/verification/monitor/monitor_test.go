package monitor

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func info(id, roomID, participants int, start, end time.Time) MeetingInfo {
	return MeetingInfo{
		ID:               id,
		RoomID:           roomID,
		Start:            start,
		End:              end,
		ParticipantCount: participants,
	}
}

func TestOnCreateCleanLifecycle(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	raised := m.OnCreate(info(1, 1, 3, ts(10, 0), ts(11, 0)))
	assert.Empty(t, raised)
	assert.Equal(t, 1, m.PendingCount())

	raised = m.OnConfirm(1)
	assert.Empty(t, raised)
	assert.Equal(t, 0, m.PendingCount())
	assert.Empty(t, m.Violations())

	history := m.EventHistory()
	require.Len(t, history, 2)
	assert.Equal(t, EventCreate, history[0].Type)
	assert.Equal(t, EventConfirm, history[1].Type)
}

func TestOnCreateCapacityExceeded(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 2)

	raised := m.OnCreate(info(1, 1, 5, ts(10, 0), ts(11, 0)))

	require.Len(t, raised, 1)
	assert.Equal(t, PropertyCapacityExceeded, raised[0].Property)
	assert.Equal(t, SeverityError, raised[0].Severity)
	assert.Equal(t, 1, raised[0].MeetingID)
	assert.Contains(t, raised[0].Details, "5 participants but room capacity is 2")
}

func TestOnCreateUnknownRoomSkipsCapacityCheck(t *testing.T) {
	m := New()

	raised := m.OnCreate(info(1, 99, 500, ts(10, 0), ts(11, 0)))
	assert.Empty(t, raised)
}

func TestOnCreateOverlapCritical(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	raised := m.OnCreate(info(2, 1, 2, ts(10, 30), ts(11, 30)))

	require.Len(t, raised, 1)
	assert.Equal(t, PropertyMeetingOverlap, raised[0].Property)
	assert.Equal(t, SeverityCritical, raised[0].Severity)
	assert.Equal(t, 2, raised[0].MeetingID)
	assert.Contains(t, raised[0].Details, "Meeting 2 overlaps with meeting 1 in room 1")
}

func TestOnCreateBackToBackNoOverlap(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	raised := m.OnCreate(info(2, 1, 2, ts(11, 0), ts(12, 0)))

	assert.Empty(t, raised)
}

func TestOnRejectReleasesSlot(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	m.OnReject(1)

	// The slot is released, so a new booking in the same window is clean.
	raised := m.OnCreate(info(2, 1, 2, ts(10, 0), ts(11, 0)))
	assert.Empty(t, raised)
}

func TestOnCompleteReleasesSlot(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	m.OnConfirm(1)
	m.OnComplete(1)

	// A completed meeting is no longer live; its window is free again.
	raised := m.OnCreate(info(2, 1, 2, ts(10, 0), ts(11, 0)))
	assert.Empty(t, raised)

	history := m.EventHistory()
	require.Len(t, history, 4)
	assert.Equal(t, EventComplete, history[2].Type)
	assert.Equal(t, "CONFIRMED", history[2].PreviousStatus)
	assert.Equal(t, "COMPLETED", history[2].NewStatus)
}

func TestOnDeleteNonexistent(t *testing.T) {
	m := New()

	raised := m.OnDelete(9999, "")

	require.Len(t, raised, 1)
	assert.Equal(t, PropertyDeleteNonexistent, raised[0].Property)
	assert.Equal(t, SeverityError, raised[0].Severity)
	assert.Equal(t, 9999, raised[0].MeetingID)

	// A repeat of the same call is deduplicated.
	raised = m.OnDelete(9999, "")
	assert.Empty(t, raised)
	assert.Len(t, m.Violations(), 1)
}

func TestOnDeleteTrackedMeeting(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	raised := m.OnDelete(1, "PENDING")

	assert.Empty(t, raised)
	assert.Equal(t, 0, m.PendingCount())

	// The room slot is freed.
	raised = m.OnCreate(info(2, 1, 2, ts(10, 0), ts(11, 0)))
	assert.Empty(t, raised)
}

func TestOnConfirmWithoutCreate(t *testing.T) {
	m := New()

	raised := m.OnConfirm(42)

	require.Len(t, raised, 1)
	assert.Equal(t, PropertyConfirmWithoutCreate, raised[0].Property)
	assert.Equal(t, SeverityWarning, raised[0].Severity)
}

func TestCheckPendingUnresolvedMeeting(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	clock := ts(9, 0)
	m.now = func() time.Time { return clock }

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))

	// Before the start time nothing is flagged.
	assert.Empty(t, m.CheckPending())

	// Past the start time the pending meeting violates P1.
	clock = ts(10, 30)
	raised := m.CheckPending()
	require.Len(t, raised, 1)
	assert.Equal(t, PropertyUnresolvedMeeting, raised[0].Property)
	assert.Equal(t, SeverityError, raised[0].Severity)
	assert.Contains(t, raised[0].Details, "Meeting created at 2026-03-02T09:00:00Z")
	assert.Contains(t, raised[0].Details, "start time was 2026-03-02T10:00:00Z")

	// Sweeping again does not duplicate.
	assert.Empty(t, m.CheckPending())
	assert.Len(t, m.Violations(), 1)
}

func TestConfirmScrubsUnresolvedViolation(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	clock := ts(9, 0)
	m.now = func() time.Time { return clock }

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	clock = ts(10, 30)
	require.Len(t, m.CheckPending(), 1)

	// Late confirm resolves P1; the stale violation is dropped.
	m.OnConfirm(1)
	assert.Empty(t, m.Violations())
	assert.Empty(t, m.CheckPending())
}

func TestViolationsBySeverity(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 1)

	m.OnCreate(info(1, 1, 5, ts(10, 0), ts(11, 0)))
	m.OnCreate(info(2, 1, 1, ts(10, 30), ts(11, 30)))
	m.OnConfirm(77)

	assert.Len(t, m.ViolationsBySeverity(SeverityError), 1)
	assert.Len(t, m.ViolationsBySeverity(SeverityCritical), 1)
	assert.Len(t, m.ViolationsBySeverity(SeverityWarning), 1)
}

func TestRemoveViolationsForMeeting(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 1)

	m.OnCreate(info(1, 1, 5, ts(10, 0), ts(11, 0)))
	m.OnDelete(2, "")
	require.Len(t, m.Violations(), 2)

	m.RemoveViolationsForMeeting(1)

	violations := m.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].MeetingID)
}

func TestStats(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 1)

	m.OnCreate(info(1, 1, 5, ts(10, 0), ts(11, 0)))
	m.OnCreate(info(2, 1, 1, ts(10, 30), ts(11, 30)))
	m.OnConfirm(2)

	st := m.Stats()
	assert.Equal(t, 3, st.TotalEvents)
	assert.Equal(t, 1, st.PendingMeetings)
	assert.Equal(t, 2, st.TrackedMeetings)
	assert.Equal(t, 2, st.TotalViolations)
	assert.Equal(t, 1, st.CriticalViolations)
	assert.Equal(t, 1, st.ErrorViolations)
	assert.Equal(t, 0, st.WarningViolations)
}

func TestReset(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 1)
	m.OnCreate(info(1, 1, 5, ts(10, 0), ts(11, 0)))

	m.Reset()

	assert.Empty(t, m.Violations())
	assert.Empty(t, m.EventHistory())
	assert.Equal(t, 0, m.PendingCount())
	st := m.Stats()
	assert.Equal(t, 0, st.TotalEvents)
	assert.Equal(t, 0, st.TrackedMeetings)
}

func TestCancelReleasesSlotAndPending(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(11, 0)))
	m.OnConfirm(1)
	m.OnCancel(1, "CONFIRMED")

	raised := m.OnCreate(info(2, 1, 2, ts(10, 0), ts(11, 0)))
	assert.Empty(t, raised)
}

func TestConcurrentEvents(t *testing.T) {
	m := New()
	for room := 1; room <= 4; room++ {
		m.RegisterRoom(room, 10)
	}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room := i%4 + 1
			start := ts(8, 0).Add(time.Duration(i) * time.Hour)
			m.OnCreate(info(i, room, 2, start, start.Add(30*time.Minute)))
			if i%2 == 0 {
				m.OnConfirm(i)
			} else {
				m.OnReject(i)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, m.PendingCount())
	assert.Len(t, m.EventHistory(), 80)
	assert.Empty(t, m.Violations())
}

func TestEventHistoryReturnsCopy(t *testing.T) {
	m := New()
	m.OnUpdate(1)

	history := m.EventHistory()
	history[0].MeetingID = 999

	assert.Equal(t, 1, m.EventHistory()[0].MeetingID)
}

func TestDedupKeyIncludesDetails(t *testing.T) {
	m := New()
	m.RegisterRoom(1, 10)

	// Same property and meeting, different offending counterpart: both kept.
	m.OnCreate(info(1, 1, 2, ts(10, 0), ts(12, 0)))
	m.OnCreate(info(2, 1, 2, ts(10, 0), ts(12, 0)))
	_ = m.OnDelete(2, "PENDING")
	m.OnCreate(info(3, 1, 2, ts(11, 0), ts(13, 0)))

	overlaps := m.ViolationsBySeverity(SeverityCritical)
	descriptions := make([]string, 0, len(overlaps))
	for _, v := range overlaps {
		descriptions = append(descriptions, v.Details)
	}
	assert.Contains(t, descriptions, fmt.Sprintf("Meeting %d overlaps with meeting %d in room %d", 2, 1, 1))
	assert.Contains(t, descriptions, fmt.Sprintf("Meeting %d overlaps with meeting %d in room %d", 3, 1, 1))
}
