package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/meetsched/pkg/models"
)

func TestRoomCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.rooms.Create(ctx, models.RoomRequest{
		Name:     ptr("Fishbowl"),
		Capacity: ptr(8),
		Location: ptr("2F"),
	})
	require.NoError(t, err)
	assert.True(t, created.Available)

	loaded, err := f.rooms.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fishbowl", loaded.Name)
	require.NotNil(t, loaded.Location)
	assert.Equal(t, "2F", *loaded.Location)

	updated, err := f.rooms.Update(ctx, created.ID, models.RoomRequest{
		Capacity:  ptr(12),
		Available: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Capacity)
	assert.False(t, updated.Available)

	require.NoError(t, f.rooms.Delete(ctx, created.ID))
	_, err = f.rooms.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rooms.Create(ctx, models.RoomRequest{Capacity: ptr(5)})
	assert.True(t, IsValidationError(err))

	_, err = f.rooms.Create(ctx, models.RoomRequest{Name: ptr("X"), Capacity: ptr(0)})
	assert.True(t, IsValidationError(err))
}

func TestRoomNameUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.room(t, "Fishbowl", 8)
	other := f.room(t, "Aquarium", 4)

	_, err := f.rooms.Create(ctx, models.RoomRequest{Name: ptr("Fishbowl"), Capacity: ptr(4)})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = f.rooms.Update(ctx, other.ID, models.RoomRequest{Name: ptr("Fishbowl")})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Renaming a room to its own name is fine.
	_, err = f.rooms.Update(ctx, other.ID, models.RoomRequest{Name: ptr("Aquarium")})
	assert.NoError(t, err)
}

func TestRoomListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.room(t, "Small", 2)
	f.room(t, "Big", 20)
	_, err := f.rooms.Create(ctx, models.RoomRequest{
		Name:      ptr("Closed"),
		Capacity:  ptr(10),
		Available: ptr(false),
	})
	require.NoError(t, err)

	all, err := f.rooms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	available, err := f.rooms.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	big, err := f.rooms.ListWithMinCapacity(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, big, 2)
}

func TestRoomDeleteInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 8)
	alice := f.participant(t, "Alice", "alice@example.com")

	_, err := f.meetings.Create(ctx,
		meetingReq("Sync", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)

	err = f.rooms.Delete(ctx, room.ID)
	assert.ErrorIs(t, err, ErrInUse)
}

func TestRoomUpdateRefreshesMonitorCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 10)
	alice := f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	_, err := f.rooms.Update(ctx, room.ID, models.RoomRequest{Capacity: ptr(1)})
	require.NoError(t, err)

	// The static check reads the persisted capacity, the monitor reads its
	// refreshed table; both see 1 now.
	result, err := f.meetings.Create(ctx,
		meetingReq("Crowded", room.ID, future(0), future(1), alice.ID, bob.ID))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.ConstraintViolations[0], "Room capacity exceeded")
}
