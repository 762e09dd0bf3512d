package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/meetsched/pkg/models"
	"github.com/codeready-toolchain/meetsched/pkg/verification/monitor"
	"github.com/codeready-toolchain/meetsched/pkg/verification/solver"
	"github.com/codeready-toolchain/meetsched/test/util"
)

// fixture wires the full service stack against a per-test database schema.
type fixture struct {
	meetings     *MeetingService
	rooms        *RoomService
	participants *ParticipantService
	monitor      *monitor.Monitor
	backend      *solver.ConstraintSolver
}

func newFixture(t *testing.T) *fixture {
	entClient, _ := util.SetupTestDatabase(t)

	mon := monitor.New()
	backend := solver.NewConstraintSolver(5*time.Second, 15*time.Minute)
	rooms := NewRoomService(entClient, mon)
	participants := NewParticipantService(entClient)
	meetings := NewMeetingService(entClient, rooms, participants, backend, mon)

	return &fixture{
		meetings:     meetings,
		rooms:        rooms,
		participants: participants,
		monitor:      mon,
		backend:      backend,
	}
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) room(t *testing.T, name string, capacity int) *models.RoomResponse {
	t.Helper()
	room, err := f.rooms.Create(context.Background(), models.RoomRequest{
		Name:     ptr(name),
		Capacity: ptr(capacity),
	})
	require.NoError(t, err)
	return room
}

func (f *fixture) participant(t *testing.T, name, email string) *models.ParticipantResponse {
	t.Helper()
	p, err := f.participants.Create(context.Background(), models.ParticipantRequest{
		Name:  ptr(name),
		Email: ptr(email),
	})
	require.NoError(t, err)
	return p
}

// meetingReq builds a create request for the given room and participants.
func meetingReq(title string, roomID int, start, end time.Time, participantIDs ...int) models.MeetingRequest {
	return models.MeetingRequest{
		Title:          ptr(title),
		StartTime:      ptr(start),
		EndTime:        ptr(end),
		RoomID:         ptr(roomID),
		ParticipantIDs: participantIDs,
	}
}

// future returns an instant comfortably in the future so the pending sweep
// stays quiet unless a test wants otherwise.
func future(hours int) time.Time {
	return time.Now().UTC().Truncate(time.Hour).Add(time.Duration(24+hours) * time.Hour)
}
