package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailableSlotsEmptyRoom(t *testing.T) {
	s := newTestSolver()

	slots := s.FindAvailableSlots(1, time.Hour, ts(9, 0), ts(12, 0), nil)

	// 9:00 through 11:00 on the 15-minute grid.
	require.Len(t, slots, 9)
	assert.Equal(t, ts(9, 0), slots[0])
	assert.Equal(t, ts(9, 15), slots[1])
	assert.Equal(t, ts(11, 0), slots[8])
}

func TestFindAvailableSlotsSkipsBookedWindow(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID: 1,
		RoomID:    1,
		Start:     ts(10, 0),
		End:       ts(11, 0),
	}}

	slots := s.FindAvailableSlots(1, time.Hour, ts(9, 0), ts(13, 0), existing)

	assert.Contains(t, slots, ts(9, 0))
	// Any start in (9:00, 11:00) collides with [10:00, 11:00).
	assert.NotContains(t, slots, ts(9, 15))
	assert.NotContains(t, slots, ts(10, 0))
	assert.NotContains(t, slots, ts(10, 45))
	// The cursor resumes at the meeting's end.
	assert.Contains(t, slots, ts(11, 0))
	assert.Contains(t, slots, ts(12, 0))
}

func TestFindAvailableSlotsOffGridMeetingEnd(t *testing.T) {
	s := newTestSolver()

	// Meeting ends at 10:05, off the grid anchored at 9:00. The cursor must
	// round up to 10:15, never emitting an off-grid start.
	existing := []ExistingMeeting{{
		MeetingID: 1,
		RoomID:    1,
		Start:     ts(9, 30),
		End:       ts(10, 5),
	}}

	slots := s.FindAvailableSlots(1, 30*time.Minute, ts(9, 0), ts(11, 0), existing)

	assert.Equal(t, []time.Time{ts(9, 0), ts(10, 15), ts(10, 30)}, slots)
}

func TestFindAvailableSlotsIgnoresOtherRooms(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID: 1,
		RoomID:    2,
		Start:     ts(9, 0),
		End:       ts(17, 0),
	}}

	slots := s.FindAvailableSlots(1, time.Hour, ts(9, 0), ts(11, 0), existing)
	require.Len(t, slots, 5)
}

func TestFindAvailableSlotsFullyBooked(t *testing.T) {
	s := newTestSolver()

	existing := []ExistingMeeting{{
		MeetingID: 1,
		RoomID:    1,
		Start:     ts(9, 0),
		End:       ts(12, 0),
	}}

	slots := s.FindAvailableSlots(1, time.Hour, ts(9, 0), ts(12, 0), existing)
	assert.Empty(t, slots)
}

func TestFindAvailableSlotsDurationLongerThanWindow(t *testing.T) {
	s := newTestSolver()

	slots := s.FindAvailableSlots(1, 2*time.Hour, ts(9, 0), ts(10, 0), nil)
	assert.Empty(t, slots)
}

func TestFindAvailableSlotsZeroDuration(t *testing.T) {
	s := newTestSolver()

	slots := s.FindAvailableSlots(1, 0, ts(9, 0), ts(12, 0), nil)
	assert.Nil(t, slots)
}

func TestRoundUpToGrid(t *testing.T) {
	base := int64(0)
	inc := int64(900)

	assert.Equal(t, int64(900), roundUpToGrid(900, base, inc))
	assert.Equal(t, int64(900), roundUpToGrid(1, base, inc))
	assert.Equal(t, int64(1800), roundUpToGrid(901, base, inc))

	// Grid anchored off the epoch.
	assert.Equal(t, int64(1000), roundUpToGrid(1000, 100, inc))
	assert.Equal(t, int64(1000), roundUpToGrid(999, 100, inc))
}
