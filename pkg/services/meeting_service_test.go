package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/meetsched/pkg/models"
	"github.com/codeready-toolchain/meetsched/pkg/verification/monitor"
)

func TestCreateMeetingSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	result, err := f.meetings.Create(ctx,
		meetingReq("Kickoff", room.ID, future(0), future(1), alice.ID, bob.ID))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "SATISFIABLE", result.SolverStatus)
	require.NotNil(t, result.Meeting)
	assert.Equal(t, models.StatusPending, result.Meeting.Status)
	assert.Equal(t, room.ID, result.Meeting.RoomID)
	assert.ElementsMatch(t, []int{alice.ID, bob.ID}, result.Meeting.ParticipantIDs)

	loaded, err := f.meetings.Get(ctx, result.Meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kickoff", loaded.Title)
	assert.Equal(t, "Fishbowl", loaded.RoomName)

	confirmed, err := f.meetings.Confirm(ctx, result.Meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	assert.Empty(t, f.meetings.Violations())
}

func TestCreateMeetingShapeErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.MeetingRequest
		witness string
	}{
		{
			"missing title",
			models.MeetingRequest{StartTime: ptr(future(0)), EndTime: ptr(future(1)), RoomID: ptr(1), ParticipantIDs: []int{1}},
			"Title is required",
		},
		{
			"missing times",
			models.MeetingRequest{Title: ptr("X"), RoomID: ptr(1), ParticipantIDs: []int{1}},
			"Start and end times are required",
		},
		{
			"missing room",
			models.MeetingRequest{Title: ptr("X"), StartTime: ptr(future(0)), EndTime: ptr(future(1)), ParticipantIDs: []int{1}},
			"Room is required",
		},
		{
			"no participants",
			models.MeetingRequest{Title: ptr("X"), StartTime: ptr(future(0)), EndTime: ptr(future(1)), RoomID: ptr(1)},
			"At least one participant is required",
		},
		{
			"inverted time range",
			models.MeetingRequest{Title: ptr("X"), StartTime: ptr(future(1)), EndTime: ptr(future(0)), RoomID: ptr(1), ParticipantIDs: []int{1}},
			"Start time must be before end time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.meetings.Create(ctx, tt.req)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Contains(t, result.ConstraintViolations, tt.witness)
		})
	}

	// Shape failures never touch the store or monitor.
	all, err := f.meetings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.monitor.EventHistory())
}

func TestCreateMeetingRoomConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	first, err := f.meetings.Create(ctx,
		meetingReq("First", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	require.True(t, first.Success)
	_, err = f.meetings.Confirm(ctx, first.Meeting.ID)
	require.NoError(t, err)

	second, err := f.meetings.Create(ctx,
		meetingReq("Second", room.ID, future(0).Add(30*time.Minute), future(1).Add(30*time.Minute), bob.ID))
	require.NoError(t, err)

	assert.False(t, second.Success)
	assert.Equal(t, "UNSATISFIABLE", second.SolverStatus)
	require.Len(t, second.ConstraintViolations, 1)
	assert.Contains(t, second.ConstraintViolations[0], "Room conflict")

	// The rejected proposal was never persisted.
	all, err := f.meetings.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateMeetingPendingDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	// A pending meeting is only a proposed hold; the static check decides
	// against confirmed meetings, and the monitor flags the race instead.
	first, err := f.meetings.Create(ctx,
		meetingReq("First", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := f.meetings.Create(ctx,
		meetingReq("Second", room.ID, future(0), future(1), bob.ID))
	require.NoError(t, err)

	assert.True(t, second.Success)
	require.Len(t, second.RuntimeWarnings, 1)
	assert.Contains(t, second.RuntimeWarnings[0], monitor.PropertyMeetingOverlap)

	critical := f.monitor.ViolationsBySeverity(monitor.SeverityCritical)
	require.Len(t, critical, 1)
	assert.Equal(t, second.Meeting.ID, critical[0].MeetingID)
}

func TestCreateMeetingParticipantConflictAcrossRooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomA := f.room(t, "A", 10)
	roomB := f.room(t, "B", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	first, err := f.meetings.Create(ctx,
		meetingReq("First", roomA.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Confirm(ctx, first.Meeting.ID)
	require.NoError(t, err)

	second, err := f.meetings.Create(ctx,
		meetingReq("Second", roomB.ID, future(0).Add(30*time.Minute), future(1).Add(30*time.Minute), alice.ID))
	require.NoError(t, err)

	assert.False(t, second.Success)
	require.Len(t, second.ConstraintViolations, 1)
	assert.Contains(t, second.ConstraintViolations[0], "Participant conflict")
}

func TestCreateMeetingCapacityExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Closet", 1)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	result, err := f.meetings.Create(ctx,
		meetingReq("Crowded", room.ID, future(0), future(1), alice.ID, bob.ID))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.ConstraintViolations, 1)
	assert.Equal(t, "Room capacity exceeded: 2 requested, capacity 1", result.ConstraintViolations[0])
}

func TestCreateMeetingUnavailableRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room, err := f.rooms.Create(ctx, models.RoomRequest{
		Name:      ptr("Maintenance"),
		Capacity:  ptr(10),
		Available: ptr(false),
	})
	require.NoError(t, err)
	alice := f.participant(t, "Alice", "alice@example.com")

	result, err := f.meetings.Create(ctx,
		meetingReq("Doomed", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.ConstraintViolations[0], "not available")
}

func TestCreateMeetingUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)

	_, err := f.meetings.Create(ctx, meetingReq("X", 9999, future(0), future(1), 1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.meetings.Create(ctx, meetingReq("X", room.ID, future(0), future(1), 9999))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMeetingUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Sync", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	id := created.Meeting.ID

	_, err = f.meetings.Update(ctx, id, models.MeetingRequest{RoomID: ptr(9999)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.meetings.Update(ctx, id, models.MeetingRequest{ParticipantIDs: []int{9999}})
	assert.ErrorIs(t, err, ErrNotFound)

	// The persisted participant set is untouched.
	loaded, err := f.meetings.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, loaded.Participants, 1)
	assert.Equal(t, alice.ID, loaded.Participants[0].ID)
}

func TestCreateMeetingDisabledSolverSkipsChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Closet", 1)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	f.meetings.SetSolverEnabled(false)
	assert.False(t, f.meetings.SolverEnabled())

	// Statically infeasible, but the disabled backend admits everything. The
	// monitor still reports the capacity breach as a runtime warning.
	result, err := f.meetings.Create(ctx,
		meetingReq("Crowded", room.ID, future(0), future(1), alice.ID, bob.ID))
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.NotEmpty(t, result.RuntimeWarnings)
	assert.Contains(t, result.RuntimeWarnings[0], monitor.PropertyCapacityExceeded)
}

func TestUpdateMeetingSelfExclusion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Sync", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Confirm(ctx, created.Meeting.ID)
	require.NoError(t, err)

	// Shift within the meeting's own confirmed window. Without
	// self-exclusion this would conflict with its persisted self.
	result, err := f.meetings.Update(ctx, created.Meeting.ID, models.MeetingRequest{
		StartTime: ptr(future(0).Add(15 * time.Minute)),
		EndTime:   ptr(future(1).Add(15 * time.Minute)),
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, future(0).Add(15*time.Minute), result.Meeting.StartTime.UTC())
}

func TestUpdateMeetingConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	first, err := f.meetings.Create(ctx,
		meetingReq("First", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Confirm(ctx, first.Meeting.ID)
	require.NoError(t, err)

	second, err := f.meetings.Create(ctx,
		meetingReq("Second", room.ID, future(2), future(3), bob.ID))
	require.NoError(t, err)
	require.True(t, second.Success)

	// Moving the second meeting onto the first one's confirmed slot fails.
	result, err := f.meetings.Update(ctx, second.Meeting.ID, models.MeetingRequest{
		StartTime: ptr(future(0).Add(30 * time.Minute)),
		EndTime:   ptr(future(1).Add(30 * time.Minute)),
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.ConstraintViolations[0], "Room conflict")

	// The persisted interval is untouched.
	loaded, err := f.meetings.Get(ctx, second.Meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, future(2), loaded.StartTime.UTC())
}

func TestUpdateTerminalMeetingRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Done", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Confirm(ctx, created.Meeting.ID)
	require.NoError(t, err)
	_, err = f.meetings.Complete(ctx, created.Meeting.ID)
	require.NoError(t, err)

	result, err := f.meetings.Update(ctx, created.Meeting.ID, models.MeetingRequest{
		Title: ptr("Renamed"),
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.ConstraintViolations[0], "Cannot update a completed meeting")
}

func TestStatusMachine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Sync", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	id := created.Meeting.ID

	// PENDING cannot jump to COMPLETED or CANCELLED.
	_, err = f.meetings.Complete(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.meetings.Cancel(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.meetings.Confirm(ctx, id)
	require.NoError(t, err)

	// CONFIRMED cannot be confirmed or rejected again.
	_, err = f.meetings.Confirm(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.meetings.Reject(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	cancelled, err := f.meetings.Cancel(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Terminal states admit nothing.
	_, err = f.meetings.Confirm(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteNotifiesMonitor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Retro", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	id := created.Meeting.ID

	_, err = f.meetings.Confirm(ctx, id)
	require.NoError(t, err)
	done, err := f.meetings.Complete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)

	history := f.monitor.EventHistory()
	require.NotEmpty(t, history)
	last := history[len(history)-1]
	assert.Equal(t, monitor.EventComplete, last.Type)
	assert.Equal(t, id, last.MeetingID)
}

func TestRejectReleasesRoomSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	first, err := f.meetings.Create(ctx,
		meetingReq("First", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Reject(ctx, first.Meeting.ID)
	require.NoError(t, err)

	// The same window is clean again for the monitor and the solver.
	second, err := f.meetings.Create(ctx,
		meetingReq("Second", room.ID, future(0), future(1), bob.ID))
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Empty(t, second.RuntimeWarnings)
}

func TestDeleteMeeting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Doomed", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)

	require.NoError(t, f.meetings.Delete(ctx, created.Meeting.ID))

	_, err = f.meetings.Get(ctx, created.Meeting.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.meetings.Delete(ctx, created.Meeting.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVetoedByMonitor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Orphan", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)

	// Simulate a monitor restart: the persisted meeting is no longer in
	// createdIds, so the delete violates the delete-safety property.
	f.monitor.Reset()

	err = f.meetings.Delete(ctx, created.Meeting.ID)
	var schedErr *SchedulingError
	require.ErrorAs(t, err, &schedErr)
	assert.NotEmpty(t, schedErr.Violations)

	// Nothing was committed.
	loaded, err := f.meetings.Get(ctx, created.Meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, "Orphan", loaded.Title)
}

func TestCheckPendingFlagsOverdueMeeting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	// Start already in the past; the sweep inside Create flags it.
	start := time.Now().UTC().Add(-2 * time.Hour)
	created, err := f.meetings.Create(ctx,
		meetingReq("Overdue", room.ID, start, start.Add(time.Hour), alice.ID))
	require.NoError(t, err)
	require.True(t, created.Success)

	violations := f.meetings.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, monitor.PropertyUnresolvedMeeting, violations[0].Property)
	assert.Equal(t, created.Meeting.ID, violations[0].MeetingID)

	// A late confirm resolves the liveness property and scrubs the record.
	_, err = f.meetings.Confirm(ctx, created.Meeting.ID)
	require.NoError(t, err)
	assert.Empty(t, f.meetings.Violations())
}

func TestListQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomA := f.room(t, "A", 10)
	roomB := f.room(t, "B", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	m1, err := f.meetings.Create(ctx, meetingReq("One", roomA.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)
	m2, err := f.meetings.Create(ctx, meetingReq("Two", roomB.ID, future(2), future(3), bob.ID))
	require.NoError(t, err)
	_, err = f.meetings.Confirm(ctx, m2.Meeting.ID)
	require.NoError(t, err)
	m3, err := f.meetings.Create(ctx, meetingReq("Three", roomA.ID, future(4), future(5), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Reject(ctx, m3.Meeting.ID)
	require.NoError(t, err)

	all, err := f.meetings.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := f.meetings.ListByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, m1.Meeting.ID, pending[0].ID)

	inA, err := f.meetings.ListByRoom(ctx, roomA.ID)
	require.NoError(t, err)
	assert.Len(t, inA, 2)

	// Range queries return live meetings fully contained in the window;
	// the rejected one is filtered out.
	ranged, err := f.meetings.ListInRange(ctx, future(0), future(5))
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	ranged, err = f.meetings.ListInRange(ctx, future(0), future(2))
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, m1.Meeting.ID, ranged[0].ID)
}

func TestFindAvailableSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Busy", room.ID, future(1), future(2), alice.ID))
	require.NoError(t, err)
	_, err = f.meetings.Confirm(ctx, created.Meeting.ID)
	require.NoError(t, err)

	resp, err := f.meetings.FindAvailableSlots(ctx, models.AvailableSlotsRequest{
		RoomID:          room.ID,
		DurationMinutes: 60,
		SearchStart:     future(0),
		SearchEnd:       future(4),
	})
	require.NoError(t, err)

	assert.Equal(t, resp.TotalSlots, len(resp.AvailableSlots))
	assert.Contains(t, resp.AvailableSlots, future(0))
	assert.Contains(t, resp.AvailableSlots, future(2))
	assert.NotContains(t, resp.AvailableSlots, future(1))
	assert.NotContains(t, resp.AvailableSlots, future(1).Add(30*time.Minute))
}

func TestFindAvailableSlotsValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)

	_, err := f.meetings.FindAvailableSlots(ctx, models.AvailableSlotsRequest{
		RoomID: room.ID, DurationMinutes: 0, SearchStart: future(0), SearchEnd: future(4),
	})
	assert.True(t, IsValidationError(err))

	_, err = f.meetings.FindAvailableSlots(ctx, models.AvailableSlotsRequest{
		RoomID: room.ID, DurationMinutes: 60, SearchStart: future(4), SearchEnd: future(0),
	})
	assert.True(t, IsValidationError(err))

	_, err = f.meetings.FindAvailableSlots(ctx, models.AvailableSlotsRequest{
		RoomID: 9999, DurationMinutes: 60, SearchStart: future(0), SearchEnd: future(4),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	f.meetings.SetSolverEnabled(false)
	_, err = f.meetings.FindAvailableSlots(ctx, models.AvailableSlotsRequest{
		RoomID: room.ID, DurationMinutes: 60, SearchStart: future(0), SearchEnd: future(4),
	})
	assert.ErrorIs(t, err, ErrSolverDisabled)
}

func TestVerifyBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)

	t.Run("clean batch", func(t *testing.T) {
		result, err := f.meetings.VerifyBatch(ctx, models.BatchVerifyRequest{
			Meetings: []models.BatchMeeting{
				{RoomID: room.ID, StartTime: future(0), EndTime: future(1)},
				{RoomID: room.ID, StartTime: future(1), EndTime: future(2)},
			},
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, result.Explanation, "2 meetings can be scheduled")
	})

	t.Run("pairwise conflict", func(t *testing.T) {
		result, err := f.meetings.VerifyBatch(ctx, models.BatchVerifyRequest{
			Meetings: []models.BatchMeeting{
				{RoomID: room.ID, StartTime: future(0), EndTime: future(2)},
				{RoomID: room.ID, StartTime: future(1), EndTime: future(3)},
			},
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.ConstraintViolations[0], "Batch conflict")
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := f.meetings.VerifyBatch(ctx, models.BatchVerifyRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := f.meetings.VerifyBatch(ctx, models.BatchVerifyRequest{
			Meetings: []models.BatchMeeting{{RoomID: 9999, StartTime: future(0), EndTime: future(1)}},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("solver disabled", func(t *testing.T) {
		f.meetings.SetSolverEnabled(false)
		defer f.meetings.SetSolverEnabled(true)
		_, err := f.meetings.VerifyBatch(ctx, models.BatchVerifyRequest{})
		assert.ErrorIs(t, err, ErrSolverDisabled)
	})
}

func TestStatsReflectsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")

	created, err := f.meetings.Create(ctx,
		meetingReq("Sync", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)

	st := f.meetings.Stats()
	assert.True(t, st.SolverEnabled)
	assert.Equal(t, 1, st.PendingMeetings)
	assert.Equal(t, 1, st.TrackedMeetings)
	assert.Equal(t, 1, st.TotalEvents)

	_, err = f.meetings.Confirm(ctx, created.Meeting.ID)
	require.NoError(t, err)

	st = f.meetings.Stats()
	assert.Equal(t, 0, st.PendingMeetings)
	assert.Equal(t, 2, st.TotalEvents)
}

func TestGetUnknownMeeting(t *testing.T) {
	f := newFixture(t)

	_, err := f.meetings.Get(context.Background(), 424242)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
