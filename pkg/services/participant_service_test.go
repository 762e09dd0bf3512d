package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/meetsched/pkg/models"
)

func TestParticipantCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.participants.Create(ctx, models.ParticipantRequest{
		Name:       ptr("Alice"),
		Email:      ptr("alice@example.com"),
		Department: ptr("Engineering"),
	})
	require.NoError(t, err)

	loaded, err := f.participants.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", loaded.Email)

	updated, err := f.participants.Update(ctx, created.ID, models.ParticipantRequest{
		Department: ptr("Research"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Research", *updated.Department)

	require.NoError(t, f.participants.Delete(ctx, created.ID))
	_, err = f.participants.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParticipantValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.participants.Create(ctx, models.ParticipantRequest{Email: ptr("x@example.com")})
	assert.True(t, IsValidationError(err))

	_, err = f.participants.Create(ctx, models.ParticipantRequest{Name: ptr("X")})
	assert.True(t, IsValidationError(err))
}

func TestParticipantEmailUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.participant(t, "Alice", "alice@example.com")
	bob := f.participant(t, "Bob", "bob@example.com")

	_, err := f.participants.Create(ctx, models.ParticipantRequest{
		Name:  ptr("Impostor"),
		Email: ptr("alice@example.com"),
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = f.participants.Update(ctx, bob.ID, models.ParticipantRequest{
		Email: ptr("alice@example.com"),
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestParticipantListByDepartment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.participants.Create(ctx, models.ParticipantRequest{
		Name: ptr("Alice"), Email: ptr("alice@example.com"), Department: ptr("Engineering"),
	})
	require.NoError(t, err)
	_, err = f.participants.Create(ctx, models.ParticipantRequest{
		Name: ptr("Bob"), Email: ptr("bob@example.com"), Department: ptr("Sales"),
	})
	require.NoError(t, err)

	eng, err := f.participants.ListByDepartment(ctx, "Engineering")
	require.NoError(t, err)
	require.Len(t, eng, 1)
	assert.Equal(t, "Alice", eng[0].Name)
}

func TestParticipantDeleteInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room := f.room(t, "Fishbowl", 8)
	alice := f.participant(t, "Alice", "alice@example.com")

	_, err := f.meetings.Create(ctx,
		meetingReq("Sync", room.ID, future(0), future(1), alice.ID))
	require.NoError(t, err)

	err = f.participants.Delete(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrInUse)
}
