package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/codeready-toolchain/meetsched/ent"
	"github.com/codeready-toolchain/meetsched/ent/meeting"
	"github.com/codeready-toolchain/meetsched/ent/predicate"
	"github.com/codeready-toolchain/meetsched/pkg/models"
	"github.com/codeready-toolchain/meetsched/pkg/verification/monitor"
	"github.com/codeready-toolchain/meetsched/pkg/verification/solver"
)

// confirmedSnapshotKey caches the confirmed-meetings snapshot used by the
// best-effort availability finder. The cache is invalidated on every meeting
// mutation; decision-backend checks always read a fresh snapshot.
const confirmedSnapshotKey = "confirmed-snapshot"

// MeetingService orchestrates the verification core: validate → static
// check → persist → notify the monitor → return the result. It owns the
// meeting status machine and keeps the monitor's mirror coherent with the
// store.
type MeetingService struct {
	client       *ent.Client
	rooms        *RoomService
	participants *ParticipantService
	backend      solver.Backend
	monitor      *monitor.Monitor
	snapshots    *gocache.Cache
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(client *ent.Client, rooms *RoomService, participants *ParticipantService, backend solver.Backend, mon *monitor.Monitor) *MeetingService {
	return &MeetingService{
		client:       client,
		rooms:        rooms,
		participants: participants,
		backend:      backend,
		monitor:      mon,
		snapshots:    gocache.New(15*time.Second, time.Minute),
	}
}

// Create schedules a new meeting. Shape errors and UNSAT checks return a
// failure result without touching the store or the monitor; on SAT the
// meeting is persisted as PENDING and the monitor is notified. Monitor
// violations raised at create time surface as warnings, never as a revert.
func (s *MeetingService) Create(ctx context.Context, req models.MeetingRequest) (models.SchedulingResult, error) {
	if msg, ok := validateCreateShape(req); !ok {
		return models.FailureResult([]string{msg}, "Invalid meeting request", 0), nil
	}
	if !req.StartTime.Before(*req.EndTime) {
		return models.FailureResult(
			[]string{"Start time must be before end time"}, "Invalid time range", 0), nil
	}

	slog.Info("Creating meeting", "title", *req.Title, "room_id", *req.RoomID)

	room, err := s.rooms.entity(ctx, *req.RoomID)
	if err != nil {
		return models.SchedulingResult{}, err
	}
	if !room.Available {
		return models.FailureResult(
			[]string{fmt.Sprintf("Room '%s' is not available", room.Name)},
			"Room unavailable", 0), nil
	}

	participants, err := s.participants.entities(ctx, req.ParticipantIDs)
	if err != nil {
		return models.SchedulingResult{}, err
	}

	constraint := solver.SchedulingConstraint{
		RoomID:         room.ID,
		RoomCapacity:   room.Capacity,
		Start:          *req.StartTime,
		End:            *req.EndTime,
		ParticipantIDs: req.ParticipantIDs,
	}
	existing, err := s.confirmedSnapshot(ctx)
	if err != nil {
		return models.SchedulingResult{}, err
	}

	res := s.backend.CheckFeasibility(ctx, constraint, existing)
	if res.Status == solver.StatusError {
		failure := models.FailureResult(res.Violations, "Decision backend failure", res.SolvingTimeMs)
		failure.SolverStatus = string(solver.StatusError)
		return failure, nil
	}
	if !res.Satisfiable {
		slog.Warn("Meeting scheduling is UNSATISFIABLE", "violations", len(res.Violations))
		return models.FailureResult(res.Violations,
			"Scheduling constraints cannot be satisfied", res.SolvingTimeMs), nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return models.SchedulingResult{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Meeting.Create().
		SetTitle(*req.Title).
		SetStartTime(*req.StartTime).
		SetEndTime(*req.EndTime).
		SetRoomID(room.ID).
		SetStatus(meeting.StatusPending).
		AddParticipantIDs(req.ParticipantIDs...)
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}

	persisted, err := builder.Save(ctx)
	if err != nil {
		return models.SchedulingResult{}, fmt.Errorf("failed to create meeting: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.SchedulingResult{}, fmt.Errorf("failed to commit meeting: %w", err)
	}
	s.snapshots.Delete(confirmedSnapshotKey)

	// Keep the monitor's capacity table coherent even after a restart.
	s.monitor.RegisterRoom(room.ID, room.Capacity)
	raised := s.monitor.OnCreate(monitor.MeetingInfo{
		ID:               persisted.ID,
		RoomID:           room.ID,
		Start:            persisted.StartTime,
		End:              persisted.EndTime,
		ParticipantCount: len(participants),
	})
	warnings := lo.Map(raised, func(v monitor.PropertyViolation, _ int) string {
		return v.Property + ": " + v.Description
	})
	s.monitor.CheckPending()

	resp := meetingResponse(persisted, room, participants)
	result := models.SuccessResult(&resp, "Meeting scheduled successfully", res.SolvingTimeMs)
	result.RuntimeWarnings = warnings

	slog.Info("Created meeting",
		"meeting_id", persisted.ID, "solving_time_ms", res.SolvingTimeMs, "warnings", len(warnings))
	return result, nil
}

// Get returns a meeting by id.
func (s *MeetingService) Get(ctx context.Context, id int) (*models.MeetingResponse, error) {
	m, err := s.client.Meeting.Query().
		Where(meeting.IDEQ(id)).
		WithRoom().
		WithParticipants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: meeting %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load meeting %d: %w", id, err)
	}
	resp := loadedResponse(m)
	return &resp, nil
}

// List returns all meetings.
func (s *MeetingService) List(ctx context.Context) ([]models.MeetingResponse, error) {
	return s.query(ctx)
}

// ListByStatus returns meetings in the given lifecycle state.
func (s *MeetingService) ListByStatus(ctx context.Context, status models.MeetingStatus) ([]models.MeetingResponse, error) {
	return s.query(ctx, meeting.StatusEQ(entStatus(status)))
}

// ListByRoom returns meetings booked in the given room.
func (s *MeetingService) ListByRoom(ctx context.Context, roomID int) ([]models.MeetingResponse, error) {
	return s.query(ctx, meeting.RoomID(roomID))
}

// ListInRange returns live meetings fully contained in [start, end].
func (s *MeetingService) ListInRange(ctx context.Context, start, end time.Time) ([]models.MeetingResponse, error) {
	return s.query(ctx,
		meeting.StartTimeGTE(start),
		meeting.EndTimeLTE(end),
		meeting.StatusIn(meeting.StatusPending, meeting.StatusConfirmed),
	)
}

// Update overlays the delta onto the persisted meeting, re-checks
// feasibility with the meeting's own id excluded from the snapshot, and
// persists on SAT. Completed and cancelled meetings are immutable.
func (s *MeetingService) Update(ctx context.Context, id int, req models.MeetingRequest) (models.SchedulingResult, error) {
	m, err := s.client.Meeting.Query().
		Where(meeting.IDEQ(id)).
		WithRoom().
		WithParticipants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.SchedulingResult{}, fmt.Errorf("%w: meeting %d", ErrNotFound, id)
		}
		return models.SchedulingResult{}, fmt.Errorf("failed to load meeting %d: %w", id, err)
	}

	if m.Status == meeting.StatusCompleted || m.Status == meeting.StatusCancelled {
		return models.FailureResult(
			[]string{fmt.Sprintf("Cannot update a %s meeting", m.Status)},
			"Invalid meeting status for update", 0), nil
	}

	// Overlay the delta.
	newStart := m.StartTime
	if req.StartTime != nil {
		newStart = *req.StartTime
	}
	newEnd := m.EndTime
	if req.EndTime != nil {
		newEnd = *req.EndTime
	}
	newRoomID := m.RoomID
	if req.RoomID != nil {
		newRoomID = *req.RoomID
	}
	newParticipantIDs := lo.Map(m.Edges.Participants, func(p *ent.Participant, _ int) int { return p.ID })
	if req.ParticipantIDs != nil {
		newParticipantIDs = req.ParticipantIDs
	}

	room, err := s.rooms.entity(ctx, newRoomID)
	if err != nil {
		return models.SchedulingResult{}, err
	}
	participants, err := s.participants.entities(ctx, newParticipantIDs)
	if err != nil {
		return models.SchedulingResult{}, err
	}

	meetingID := id
	constraint := solver.SchedulingConstraint{
		MeetingID:      &meetingID,
		RoomID:         room.ID,
		RoomCapacity:   room.Capacity,
		Start:          newStart,
		End:            newEnd,
		ParticipantIDs: newParticipantIDs,
	}
	existing, err := s.confirmedSnapshot(ctx)
	if err != nil {
		return models.SchedulingResult{}, err
	}

	res := s.backend.CheckFeasibility(ctx, constraint, existing)
	if res.Status == solver.StatusError {
		failure := models.FailureResult(res.Violations, "Decision backend failure", res.SolvingTimeMs)
		failure.SolverStatus = string(solver.StatusError)
		return failure, nil
	}
	if !res.Satisfiable {
		slog.Warn("Meeting update is UNSATISFIABLE",
			"meeting_id", id, "violations", len(res.Violations))
		return models.FailureResult(res.Violations,
			"Updated scheduling constraints cannot be satisfied", res.SolvingTimeMs), nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return models.SchedulingResult{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	updater := tx.Meeting.UpdateOneID(id).
		SetStartTime(newStart).
		SetEndTime(newEnd).
		SetRoomID(room.ID)
	if req.Title != nil {
		updater.SetTitle(*req.Title)
	}
	if req.Description != nil {
		updater.SetDescription(*req.Description)
	}
	if req.ParticipantIDs != nil {
		updater.ClearParticipants().AddParticipantIDs(req.ParticipantIDs...)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return models.SchedulingResult{}, fmt.Errorf("failed to update meeting %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return models.SchedulingResult{}, fmt.Errorf("failed to commit update: %w", err)
	}
	s.snapshots.Delete(confirmedSnapshotKey)

	// Updates are logged but do not change pending tracking.
	s.monitor.OnUpdate(id)
	s.monitor.CheckPending()

	resp := meetingResponse(updated, room, participants)

	slog.Info("Updated meeting", "meeting_id", id, "solving_time_ms", res.SolvingTimeMs)
	return models.SuccessResult(&resp, "Meeting updated successfully", res.SolvingTimeMs), nil
}

// Transition moves a meeting through its status machine and notifies the
// matching monitor handler.
func (s *MeetingService) Transition(ctx context.Context, id int, to models.MeetingStatus) (*models.MeetingResponse, error) {
	m, err := s.client.Meeting.Query().
		Where(meeting.IDEQ(id)).
		WithRoom().
		WithParticipants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: meeting %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load meeting %d: %w", id, err)
	}

	from := modelStatus(m.Status)
	if !from.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, from, to)
	}

	updated, err := s.client.Meeting.UpdateOneID(id).
		SetStatus(entStatus(to)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update status of meeting %d: %w", id, err)
	}
	s.snapshots.Delete(confirmedSnapshotKey)

	switch to {
	case models.StatusConfirmed:
		s.monitor.OnConfirm(id)
	case models.StatusRejected:
		s.monitor.OnReject(id)
	case models.StatusCancelled:
		s.monitor.OnCancel(id, string(from))
	case models.StatusCompleted:
		s.monitor.OnComplete(id)
	}
	s.monitor.CheckPending()

	slog.Info("Transitioned meeting", "meeting_id", id, "from", from, "to", to)

	resp := meetingResponse(updated, m.Edges.Room, m.Edges.Participants)
	return &resp, nil
}

// Confirm moves a pending meeting to CONFIRMED.
func (s *MeetingService) Confirm(ctx context.Context, id int) (*models.MeetingResponse, error) {
	return s.Transition(ctx, id, models.StatusConfirmed)
}

// Reject moves a pending meeting to REJECTED.
func (s *MeetingService) Reject(ctx context.Context, id int) (*models.MeetingResponse, error) {
	return s.Transition(ctx, id, models.StatusRejected)
}

// Cancel moves a confirmed meeting to CANCELLED.
func (s *MeetingService) Cancel(ctx context.Context, id int) (*models.MeetingResponse, error) {
	return s.Transition(ctx, id, models.StatusCancelled)
}

// Complete moves a confirmed meeting to COMPLETED.
func (s *MeetingService) Complete(ctx context.Context, id int) (*models.MeetingResponse, error) {
	return s.Transition(ctx, id, models.StatusCompleted)
}

// Delete removes a meeting. The monitor observes the delete first; if its
// delete-time handler raises ERROR or CRITICAL the delete is refused and
// nothing is committed. On success the meeting's stale violation history is
// pruned.
func (s *MeetingService) Delete(ctx context.Context, id int) error {
	m, err := s.client.Meeting.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: meeting %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to load meeting %d: %w", id, err)
	}

	raised := s.monitor.OnDelete(id, string(modelStatus(m.Status)))
	blocking := lo.FilterMap(raised, func(v monitor.PropertyViolation, _ int) (string, bool) {
		return v.Description, v.Severity == monitor.SeverityError || v.Severity == monitor.SeverityCritical
	})
	if len(blocking) > 0 {
		return &SchedulingError{
			Message:    "Delete operation violates runtime properties",
			Violations: blocking,
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Meeting.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete meeting %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	s.snapshots.Delete(confirmedSnapshotKey)

	s.monitor.RemoveViolationsForMeeting(id)
	s.monitor.CheckPending()

	slog.Info("Deleted meeting", "meeting_id", id)
	return nil
}

// FindAvailableSlots enumerates free slot starts for a room. Best-effort
// planning helper; reads a short-TTL snapshot.
func (s *MeetingService) FindAvailableSlots(ctx context.Context, req models.AvailableSlotsRequest) (*models.AvailableSlotsResponse, error) {
	if !s.backend.Enabled() {
		return nil, ErrSolverDisabled
	}
	if req.DurationMinutes <= 0 {
		return nil, NewValidationError("durationMinutes", "must be positive")
	}
	if !req.SearchStart.Before(req.SearchEnd) {
		return nil, NewValidationError("searchStart", "must be before searchEnd")
	}
	if _, err := s.rooms.entity(ctx, req.RoomID); err != nil {
		return nil, err
	}

	existing, err := s.cachedSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	slots := s.backend.FindAvailableSlots(
		req.RoomID,
		time.Duration(req.DurationMinutes)*time.Minute,
		req.SearchStart, req.SearchEnd,
		existing,
	)
	if slots == nil {
		slots = []time.Time{}
	}

	return &models.AvailableSlotsResponse{
		RoomID:          req.RoomID,
		DurationMinutes: req.DurationMinutes,
		SearchStart:     req.SearchStart,
		SearchEnd:       req.SearchEnd,
		AvailableSlots:  slots,
		TotalSlots:      len(slots),
	}, nil
}

// VerifyBatch checks a set of proposals against the confirmed snapshot and
// against each other. Purely a planning query; nothing is persisted.
func (s *MeetingService) VerifyBatch(ctx context.Context, req models.BatchVerifyRequest) (models.SchedulingResult, error) {
	if !s.backend.Enabled() {
		return models.SchedulingResult{}, ErrSolverDisabled
	}
	if len(req.Meetings) == 0 {
		return models.SchedulingResult{}, fmt.Errorf("%w: batch contains no meetings", ErrInvalidInput)
	}

	constraints := make([]solver.SchedulingConstraint, 0, len(req.Meetings))
	for _, bm := range req.Meetings {
		room, err := s.rooms.entity(ctx, bm.RoomID)
		if err != nil {
			return models.SchedulingResult{}, err
		}
		constraints = append(constraints, solver.SchedulingConstraint{
			RoomID:         room.ID,
			RoomCapacity:   room.Capacity,
			Start:          bm.StartTime,
			End:            bm.EndTime,
			ParticipantIDs: bm.ParticipantIDs,
		})
	}

	existing, err := s.confirmedSnapshot(ctx)
	if err != nil {
		return models.SchedulingResult{}, err
	}

	res := s.backend.VerifyBatch(ctx, constraints, existing)
	if res.Status == solver.StatusError {
		failure := models.FailureResult(res.Violations, "Decision backend failure", res.SolvingTimeMs)
		failure.SolverStatus = string(solver.StatusError)
		return failure, nil
	}
	if !res.Satisfiable {
		return models.FailureResult(res.Violations,
			"Batch scheduling constraints cannot be satisfied", res.SolvingTimeMs), nil
	}
	return models.SuccessResult(nil,
		fmt.Sprintf("Batch verification successful: %d meetings can be scheduled", len(req.Meetings)),
		res.SolvingTimeMs), nil
}

// Stats merges solver state with monitor statistics.
func (s *MeetingService) Stats() models.VerificationStats {
	return models.VerificationStats{
		SolverEnabled: s.backend.Enabled(),
		Statistics:    s.monitor.Stats(),
	}
}

// Violations returns the monitor's violation log.
func (s *MeetingService) Violations() []monitor.PropertyViolation {
	return s.monitor.Violations()
}

// CheckPending runs the P1 sweep and returns new violations.
func (s *MeetingService) CheckPending() []monitor.PropertyViolation {
	return s.monitor.CheckPending()
}

// SolverEnabled reports the decision backend's live toggle.
func (s *MeetingService) SolverEnabled() bool { return s.backend.Enabled() }

// SetSolverEnabled flips the decision backend's live toggle.
func (s *MeetingService) SetSolverEnabled(enabled bool) { s.backend.SetEnabled(enabled) }

// confirmedSnapshot loads the meetings with status CONFIRMED, the set static
// checks decide against. PENDING meetings are proposed holds and deliberately
// excluded; the monitor's P3 check surfaces races between them.
func (s *MeetingService) confirmedSnapshot(ctx context.Context) ([]solver.ExistingMeeting, error) {
	confirmed, err := s.client.Meeting.Query().
		Where(meeting.StatusEQ(meeting.StatusConfirmed)).
		WithParticipants().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmed snapshot: %w", err)
	}
	return lo.Map(confirmed, func(m *ent.Meeting, _ int) solver.ExistingMeeting {
		return solver.ExistingMeeting{
			MeetingID:      m.ID,
			RoomID:         m.RoomID,
			Start:          m.StartTime,
			End:            m.EndTime,
			ParticipantIDs: lo.Map(m.Edges.Participants, func(p *ent.Participant, _ int) int { return p.ID }),
		}
	}), nil
}

func (s *MeetingService) cachedSnapshot(ctx context.Context) ([]solver.ExistingMeeting, error) {
	if cached, ok := s.snapshots.Get(confirmedSnapshotKey); ok {
		return cached.([]solver.ExistingMeeting), nil
	}
	existing, err := s.confirmedSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.snapshots.SetDefault(confirmedSnapshotKey, existing)
	return existing, nil
}

func (s *MeetingService) query(ctx context.Context, ps ...predicate.Meeting) ([]models.MeetingResponse, error) {
	ms, err := s.client.Meeting.Query().
		Where(ps...).
		WithRoom().
		WithParticipants().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return lo.Map(ms, func(m *ent.Meeting, _ int) models.MeetingResponse {
		return loadedResponse(m)
	}), nil
}

func validateCreateShape(req models.MeetingRequest) (string, bool) {
	switch {
	case req.Title == nil || strings.TrimSpace(*req.Title) == "":
		return "Title is required", false
	case req.StartTime == nil || req.EndTime == nil:
		return "Start and end times are required", false
	case req.RoomID == nil:
		return "Room is required", false
	case len(req.ParticipantIDs) == 0:
		return "At least one participant is required", false
	}
	return "", true
}

func entStatus(s models.MeetingStatus) meeting.Status {
	return meeting.Status(strings.ToLower(string(s)))
}

func modelStatus(s meeting.Status) models.MeetingStatus {
	return models.MeetingStatus(strings.ToUpper(string(s)))
}

// meetingResponse builds the outbound representation from a meeting row plus
// its already-loaded room and participants.
func meetingResponse(m *ent.Meeting, room *ent.Room, participants []*ent.Participant) models.MeetingResponse {
	resp := models.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		RoomID:      m.RoomID,
		Status:      modelStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if room != nil {
		resp.RoomName = room.Name
	}
	resp.ParticipantIDs = lo.Map(participants, func(p *ent.Participant, _ int) int { return p.ID })
	resp.Participants = lo.Map(participants, func(p *ent.Participant, _ int) models.ParticipantResponse {
		return participantResponse(p)
	})
	return resp
}

func loadedResponse(m *ent.Meeting) models.MeetingResponse {
	return meetingResponse(m, m.Edges.Room, m.Edges.Participants)
}
