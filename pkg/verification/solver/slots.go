package solver

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// FindAvailableSlots walks the room's confirmed timeline on the increment
// grid anchored at searchStart and returns every slot start whose interval
// [start, start+duration) is disjoint from all existing meetings. On a
// collision the cursor jumps to the colliding meeting's end, rounded up to
// the grid.
func (s *ConstraintSolver) FindAvailableSlots(roomID int, duration time.Duration, searchStart, searchEnd time.Time, existing []ExistingMeeting) []time.Time {
	inc := int64(s.slotIncrement / time.Second)
	dur := int64(duration / time.Second)
	if dur <= 0 || inc <= 0 {
		return nil
	}

	roomMeetings := lo.Filter(existing, func(m ExistingMeeting, _ int) bool {
		return m.RoomID == roomID
	})
	sort.Slice(roomMeetings, func(i, j int) bool {
		return roomMeetings[i].StartEpoch() < roomMeetings[j].StartEpoch()
	})

	base := searchStart.Unix()
	end := searchEnd.Unix()

	var slots []time.Time
	for cursor := base; cursor+dur <= end; {
		collided := false
		for _, m := range roomMeetings {
			if Overlaps(cursor, cursor+dur, m.StartEpoch(), m.EndEpoch()) {
				collided = true
				cursor = roundUpToGrid(m.EndEpoch(), base, inc)
				break
			}
		}
		if !collided {
			slots = append(slots, time.Unix(cursor, 0).UTC())
			cursor += inc
		}
	}
	return slots
}

// roundUpToGrid rounds v up to the next grid point of the increment grid
// anchored at base. Grid points themselves are returned unchanged.
func roundUpToGrid(v, base, inc int64) int64 {
	if off := (v - base) % inc; off != 0 {
		return v + inc - off
	}
	return v
}
