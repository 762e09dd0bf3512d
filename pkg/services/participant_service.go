package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/codeready-toolchain/meetsched/ent"
	"github.com/codeready-toolchain/meetsched/ent/meeting"
	"github.com/codeready-toolchain/meetsched/ent/participant"
	"github.com/codeready-toolchain/meetsched/pkg/models"
)

// ParticipantService manages participants.
type ParticipantService struct {
	client *ent.Client
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(client *ent.Client) *ParticipantService {
	return &ParticipantService{client: client}
}

// Create adds a participant. Emails are unique.
func (s *ParticipantService) Create(ctx context.Context, req models.ParticipantRequest) (*models.ParticipantResponse, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return nil, NewValidationError("email", "required")
	}

	exists, err := s.client.Participant.Query().Where(participant.EmailEQ(*req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check participant email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: participant with email '%s'", ErrAlreadyExists, *req.Email)
	}

	builder := s.client.Participant.Create().
		SetName(*req.Name).
		SetEmail(*req.Email)
	if req.Department != nil {
		builder.SetDepartment(*req.Department)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: participant with email '%s'", ErrAlreadyExists, *req.Email)
		}
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	slog.Info("Created participant", "participant_id", p.ID, "email", p.Email)
	resp := participantResponse(p)
	return &resp, nil
}

// Get returns a participant by id.
func (s *ParticipantService) Get(ctx context.Context, id int) (*models.ParticipantResponse, error) {
	p, err := s.client.Participant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: participant %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load participant %d: %w", id, err)
	}
	resp := participantResponse(p)
	return &resp, nil
}

// List returns all participants.
func (s *ParticipantService) List(ctx context.Context) ([]models.ParticipantResponse, error) {
	ps, err := s.client.Participant.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return lo.Map(ps, func(p *ent.Participant, _ int) models.ParticipantResponse {
		return participantResponse(p)
	}), nil
}

// ListByDepartment returns participants of a department.
func (s *ParticipantService) ListByDepartment(ctx context.Context, department string) ([]models.ParticipantResponse, error) {
	ps, err := s.client.Participant.Query().
		Where(participant.DepartmentEQ(department)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants by department: %w", err)
	}
	return lo.Map(ps, func(p *ent.Participant, _ int) models.ParticipantResponse {
		return participantResponse(p)
	}), nil
}

// Update modifies a participant.
func (s *ParticipantService) Update(ctx context.Context, id int, req models.ParticipantRequest) (*models.ParticipantResponse, error) {
	p, err := s.client.Participant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: participant %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load participant %d: %w", id, err)
	}

	if req.Email != nil && *req.Email != p.Email {
		exists, err := s.client.Participant.Query().
			Where(participant.EmailEQ(*req.Email), participant.IDNEQ(id)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check participant email: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: participant with email '%s'", ErrAlreadyExists, *req.Email)
		}
	}

	updater := s.client.Participant.UpdateOneID(id)
	if req.Name != nil {
		updater.SetName(*req.Name)
	}
	if req.Email != nil {
		updater.SetEmail(*req.Email)
	}
	if req.Department != nil {
		updater.SetDepartment(*req.Department)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update participant %d: %w", id, err)
	}

	slog.Info("Updated participant", "participant_id", id)
	resp := participantResponse(updated)
	return &resp, nil
}

// Delete removes a participant. Refused while meetings still reference them.
func (s *ParticipantService) Delete(ctx context.Context, id int) error {
	if _, err := s.client.Participant.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: participant %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to load participant %d: %w", id, err)
	}

	referencing, err := s.client.Meeting.Query().
		Where(meeting.HasParticipantsWith(participant.IDEQ(id))).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count meetings for participant %d: %w", id, err)
	}
	if referencing > 0 {
		return fmt.Errorf("%w: participant %d is booked in %d meetings", ErrInUse, id, referencing)
	}

	if err := s.client.Participant.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}

	slog.Info("Deleted participant", "participant_id", id)
	return nil
}

// entities resolves a participant id set; any missing id is an error.
func (s *ParticipantService) entities(ctx context.Context, ids []int) ([]*ent.Participant, error) {
	ps, err := s.client.Participant.Query().
		Where(participant.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	if len(ps) != len(lo.Uniq(ids)) {
		found := lo.Map(ps, func(p *ent.Participant, _ int) int { return p.ID })
		missing, _ := lo.Difference(lo.Uniq(ids), found)
		return nil, fmt.Errorf("%w: participants %v", ErrNotFound, missing)
	}
	return ps, nil
}

func participantResponse(p *ent.Participant) models.ParticipantResponse {
	return models.ParticipantResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department,
	}
}
