package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func newTestSolver() *ConstraintSolver {
	return NewConstraintSolver(5*time.Second, 15*time.Minute)
}

func TestCheckFeasibilityEmptySchedule(t *testing.T) {
	s := newTestSolver()

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:         1,
		RoomCapacity:   10,
		Start:          ts(10, 0),
		End:            ts(11, 0),
		ParticipantIDs: []int{1, 2, 3},
	}, nil)

	assert.True(t, res.Satisfiable)
	assert.Equal(t, StatusSatisfiable, res.Status)
	assert.Empty(t, res.Violations)
}

func TestCheckFeasibilityRoomConflict(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID:      7,
		RoomID:         1,
		Start:          ts(10, 0),
		End:            ts(11, 0),
		ParticipantIDs: []int{4, 5},
	}}

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:         1,
		RoomCapacity:   10,
		Start:          ts(10, 30),
		End:            ts(11, 30),
		ParticipantIDs: []int{1, 2},
	}, existing)

	assert.False(t, res.Satisfiable)
	assert.Equal(t, StatusUnsatisfiable, res.Status)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "Room conflict: overlaps with meeting 7 in room 1")
}

func TestCheckFeasibilityBackToBackIsSatisfiable(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID: 7,
		RoomID:    1,
		Start:     ts(10, 0),
		End:       ts(11, 0),
	}}

	// Half-open intervals: [10,11) and [11,12) touch but do not overlap.
	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:       1,
		RoomCapacity: 10,
		Start:        ts(11, 0),
		End:          ts(12, 0),
	}, existing)

	assert.True(t, res.Satisfiable)
}

func TestCheckFeasibilityParticipantConflictAcrossRooms(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID:      3,
		RoomID:         2,
		Start:          ts(10, 0),
		End:            ts(11, 0),
		ParticipantIDs: []int{42, 43},
	}}

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:         1,
		RoomCapacity:   10,
		Start:          ts(10, 30),
		End:            ts(11, 30),
		ParticipantIDs: []int{42},
	}, existing)

	assert.False(t, res.Satisfiable)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "Participant conflict: participant 42 already booked in meeting 3")
}

func TestCheckFeasibilityCapacityExceeded(t *testing.T) {
	s := newTestSolver()

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:         1,
		RoomCapacity:   2,
		Start:          ts(10, 0),
		End:            ts(11, 0),
		ParticipantIDs: []int{1, 2, 3},
	}, nil)

	assert.False(t, res.Satisfiable)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "Room capacity exceeded: 3 requested, capacity 2", res.Violations[0])
}

func TestCheckFeasibilityInvalidTimeRange(t *testing.T) {
	s := newTestSolver()

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:       1,
		RoomCapacity: 10,
		Start:        ts(11, 0),
		End:          ts(10, 0),
	}, nil)

	assert.False(t, res.Satisfiable)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "Invalid time range: start time must be before end time", res.Violations[0])
}

func TestCheckFeasibilityUpdateSelfExclusion(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID:      5,
		RoomID:         1,
		Start:          ts(10, 0),
		End:            ts(11, 0),
		ParticipantIDs: []int{1},
	}}

	// Moving meeting 5 within its own slot must not conflict with itself.
	id := 5
	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		MeetingID:      &id,
		RoomID:         1,
		RoomCapacity:   10,
		Start:          ts(10, 15),
		End:            ts(11, 15),
		ParticipantIDs: []int{1},
	}, existing)

	assert.True(t, res.Satisfiable)
}

func TestCheckFeasibilityIdempotent(t *testing.T) {
	s := newTestSolver()

	proposed := SchedulingConstraint{
		RoomID:         1,
		RoomCapacity:   10,
		Start:          ts(10, 0),
		End:            ts(11, 0),
		ParticipantIDs: []int{1},
	}
	existing := []ExistingMeeting{{
		MeetingID: 2,
		RoomID:    1,
		Start:     ts(10, 30),
		End:       ts(11, 30),
	}}

	first := s.CheckFeasibility(context.Background(), proposed, existing)
	second := s.CheckFeasibility(context.Background(), proposed, existing)

	assert.Equal(t, first.Satisfiable, second.Satisfiable)
	assert.Equal(t, first.Violations, second.Violations)
	assert.Equal(t, first.Status, second.Status)
}

func TestCheckFeasibilityCollectsAllWitnesses(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{
		{MeetingID: 1, RoomID: 1, Start: ts(10, 0), End: ts(11, 0)},
		{MeetingID: 2, RoomID: 1, Start: ts(10, 30), End: ts(11, 30), ParticipantIDs: []int{9}},
	}

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:         1,
		RoomCapacity:   10,
		Start:          ts(10, 0),
		End:            ts(12, 0),
		ParticipantIDs: []int{9},
	}, existing)

	assert.False(t, res.Satisfiable)
	// Two room conflicts plus one participant conflict.
	assert.Len(t, res.Violations, 3)
}

func TestCheckFeasibilityDisabled(t *testing.T) {
	s := newTestSolver()
	s.SetEnabled(false)

	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:       1,
		RoomCapacity: 0,
		Start:        ts(11, 0),
		End:          ts(10, 0),
	}, nil)

	assert.True(t, res.Satisfiable)
	assert.Equal(t, StatusSatisfiable, res.Status)

	s.SetEnabled(true)
	assert.True(t, s.Enabled())
}

func TestCheckFeasibilityTimeout(t *testing.T) {
	s := NewConstraintSolver(time.Nanosecond, 15*time.Minute)

	existing := make([]ExistingMeeting, 10000)
	for i := range existing {
		existing[i] = ExistingMeeting{MeetingID: i, RoomID: 2, Start: ts(8, 0), End: ts(9, 0)}
	}

	// The deadline is already expired when decide starts walking the
	// snapshot, so the check aborts with the timeout contract.
	res := s.CheckFeasibility(context.Background(), SchedulingConstraint{
		RoomID:       1,
		RoomCapacity: 10,
		Start:        ts(10, 0),
		End:          ts(11, 0),
	}, existing)

	assert.False(t, res.Satisfiable)
	assert.Equal(t, StatusError, res.Status)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "solver timeout", res.Violations[0])
}

func TestVerifyBatchPairwiseRoomConflict(t *testing.T) {
	s := newTestSolver()

	proposals := []SchedulingConstraint{
		{RoomID: 1, RoomCapacity: 10, Start: ts(10, 0), End: ts(11, 0)},
		{RoomID: 1, RoomCapacity: 10, Start: ts(10, 30), End: ts(11, 30)},
	}

	res := s.VerifyBatch(context.Background(), proposals, nil)

	assert.False(t, res.Satisfiable)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "Batch conflict: meetings at indices 0 and 1 overlap in room 1", res.Violations[0])
}

func TestVerifyBatchParticipantDoubleBooking(t *testing.T) {
	s := newTestSolver()

	proposals := []SchedulingConstraint{
		{RoomID: 1, RoomCapacity: 10, Start: ts(10, 0), End: ts(11, 0), ParticipantIDs: []int{5, 6}},
		{RoomID: 2, RoomCapacity: 10, Start: ts(10, 30), End: ts(11, 30), ParticipantIDs: []int{6, 7}},
	}

	res := s.VerifyBatch(context.Background(), proposals, nil)

	assert.False(t, res.Satisfiable)
	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "participants [6] double-booked between meetings at indices 0 and 1")
}

func TestVerifyBatchAgainstSnapshotAndClean(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{MeetingID: 1, RoomID: 1, Start: ts(9, 0), End: ts(10, 0)}}

	t.Run("clean batch", func(t *testing.T) {
		proposals := []SchedulingConstraint{
			{RoomID: 1, RoomCapacity: 10, Start: ts(10, 0), End: ts(11, 0)},
			{RoomID: 2, RoomCapacity: 10, Start: ts(10, 0), End: ts(11, 0)},
		}
		res := s.VerifyBatch(context.Background(), proposals, existing)
		assert.True(t, res.Satisfiable)
	})

	t.Run("snapshot conflict", func(t *testing.T) {
		proposals := []SchedulingConstraint{
			{RoomID: 1, RoomCapacity: 10, Start: ts(9, 30), End: ts(10, 30)},
		}
		res := s.VerifyBatch(context.Background(), proposals, existing)
		assert.False(t, res.Satisfiable)
		require.Len(t, res.Violations, 1)
		assert.Contains(t, res.Violations[0], "Room conflict: overlaps with meeting 1")
	})
}

func TestOverlapsPredicate(t *testing.T) {
	// Half-open interval semantics.
	assert.True(t, Overlaps(0, 10, 5, 15))
	assert.True(t, Overlaps(5, 15, 0, 10))
	assert.True(t, Overlaps(0, 10, 2, 8))
	assert.False(t, Overlaps(0, 10, 10, 20))
	assert.False(t, Overlaps(10, 20, 0, 10))
	assert.False(t, Overlaps(0, 5, 6, 10))
}
