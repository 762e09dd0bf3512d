package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/codeready-toolchain/meetsched/ent"
	"github.com/codeready-toolchain/meetsched/ent/meeting"
	"github.com/codeready-toolchain/meetsched/ent/room"
	"github.com/codeready-toolchain/meetsched/pkg/models"
	"github.com/codeready-toolchain/meetsched/pkg/verification/monitor"
)

// RoomService manages rooms and keeps the monitor's capacity table current.
type RoomService struct {
	client  *ent.Client
	monitor *monitor.Monitor
}

// NewRoomService creates a new RoomService.
func NewRoomService(client *ent.Client, mon *monitor.Monitor) *RoomService {
	return &RoomService{client: client, monitor: mon}
}

// Create adds a room. Room names are unique.
func (s *RoomService) Create(ctx context.Context, req models.RoomRequest) (*models.RoomResponse, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Capacity == nil || *req.Capacity < 1 {
		return nil, NewValidationError("capacity", "must be at least 1")
	}

	exists, err := s.client.Room.Query().Where(room.NameEQ(*req.Name)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check room name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: room with name '%s'", ErrAlreadyExists, *req.Name)
	}

	builder := s.client.Room.Create().
		SetName(*req.Name).
		SetCapacity(*req.Capacity)
	if req.Location != nil {
		builder.SetLocation(*req.Location)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.Available != nil {
		builder.SetAvailable(*req.Available)
	}

	r, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: room with name '%s'", ErrAlreadyExists, *req.Name)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.monitor.RegisterRoom(r.ID, r.Capacity)
	s.monitor.CheckPending()

	slog.Info("Created room", "room_id", r.ID, "name", r.Name, "capacity", r.Capacity)
	resp := roomResponse(r)
	return &resp, nil
}

// Get returns a room by id.
func (s *RoomService) Get(ctx context.Context, id int) (*models.RoomResponse, error) {
	r, err := s.entity(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := roomResponse(r)
	return &resp, nil
}

// List returns all rooms.
func (s *RoomService) List(ctx context.Context) ([]models.RoomResponse, error) {
	rs, err := s.client.Room.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return lo.Map(rs, func(r *ent.Room, _ int) models.RoomResponse { return roomResponse(r) }), nil
}

// ListAvailable returns rooms flagged available.
func (s *RoomService) ListAvailable(ctx context.Context) ([]models.RoomResponse, error) {
	rs, err := s.client.Room.Query().Where(room.AvailableEQ(true)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return lo.Map(rs, func(r *ent.Room, _ int) models.RoomResponse { return roomResponse(r) }), nil
}

// ListWithMinCapacity returns rooms seating at least minCapacity.
func (s *RoomService) ListWithMinCapacity(ctx context.Context, minCapacity int) ([]models.RoomResponse, error) {
	rs, err := s.client.Room.Query().Where(room.CapacityGTE(minCapacity)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms by capacity: %w", err)
	}
	return lo.Map(rs, func(r *ent.Room, _ int) models.RoomResponse { return roomResponse(r) }), nil
}

// Update modifies a room and refreshes the monitor's capacity table.
func (s *RoomService) Update(ctx context.Context, id int, req models.RoomRequest) (*models.RoomResponse, error) {
	r, err := s.entity(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != r.Name {
		exists, err := s.client.Room.Query().
			Where(room.NameEQ(*req.Name), room.IDNEQ(id)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check room name: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: room with name '%s'", ErrAlreadyExists, *req.Name)
		}
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		return nil, NewValidationError("capacity", "must be at least 1")
	}

	updater := s.client.Room.UpdateOneID(id)
	if req.Name != nil {
		updater.SetName(*req.Name)
	}
	if req.Capacity != nil {
		updater.SetCapacity(*req.Capacity)
	}
	if req.Location != nil {
		updater.SetLocation(*req.Location)
	}
	if req.Description != nil {
		updater.SetDescription(*req.Description)
	}
	if req.Available != nil {
		updater.SetAvailable(*req.Available)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}

	s.monitor.RegisterRoom(updated.ID, updated.Capacity)

	slog.Info("Updated room", "room_id", id)
	resp := roomResponse(updated)
	return &resp, nil
}

// Delete removes a room. Refused while meetings still reference it.
func (s *RoomService) Delete(ctx context.Context, id int) error {
	if _, err := s.entity(ctx, id); err != nil {
		return err
	}

	referencing, err := s.client.Meeting.Query().Where(meeting.RoomID(id)).Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count meetings for room %d: %w", id, err)
	}
	if referencing > 0 {
		return fmt.Errorf("%w: room %d has %d meetings", ErrInUse, id, referencing)
	}

	if err := s.client.Room.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}

	slog.Info("Deleted room", "room_id", id)
	return nil
}

// entity loads the room row for internal use.
func (s *RoomService) entity(ctx context.Context, id int) (*ent.Room, error) {
	r, err := s.client.Room.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return r, nil
}

func roomResponse(r *ent.Room) models.RoomResponse {
	return models.RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Description: r.Description,
		Available:   r.Available,
	}
}
