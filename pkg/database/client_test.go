package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/codeready-toolchain/meetsched/ent"
	"github.com/codeready-toolchain/meetsched/ent/meeting"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Ent auto-migration keeps the test schema in lockstep with the Ent
	// definitions without touching the golang-migrate version table.
	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	status, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}

func TestMeetingRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	room, err := client.Room.Create().
		SetName("Fishbowl").
		SetCapacity(8).
		SetLocation("2F").
		Save(ctx)
	require.NoError(t, err)

	alice, err := client.Participant.Create().
		SetName("Alice").
		SetEmail("alice@example.com").
		Save(ctx)
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	m, err := client.Meeting.Create().
		SetTitle("Standup").
		SetStartTime(start).
		SetEndTime(start.Add(30 * time.Minute)).
		SetRoomID(room.ID).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		AddParticipants(alice).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, meeting.StatusPending, m.Status)

	loaded, err := client.Meeting.Query().
		Where(meeting.IDEQ(m.ID)).
		WithRoom().
		WithParticipants().
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Standup", loaded.Title)
	require.NotNil(t, loaded.Edges.Room)
	assert.Equal(t, room.ID, loaded.Edges.Room.ID)
	require.Len(t, loaded.Edges.Participants, 1)
	assert.Equal(t, "alice@example.com", loaded.Edges.Participants[0].Email)
}

func TestUniqueConstraints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Room.Create().SetName("Aquarium").SetCapacity(4).Save(ctx)
	require.NoError(t, err)

	_, err = client.Room.Create().SetName("Aquarium").SetCapacity(10).Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}
