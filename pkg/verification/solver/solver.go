package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/codeready-toolchain/meetsched/pkg/metrics"
)

// Backend is the capability set of a decision backend. Implementations must
// serialize their own decision calls; the shipped ConstraintSolver holds a
// mutex around each check.
type Backend interface {
	// CheckFeasibility decides whether the proposed meeting is admissible
	// against the existing confirmed snapshot.
	CheckFeasibility(ctx context.Context, proposed SchedulingConstraint, existing []ExistingMeeting) Result

	// VerifyBatch checks every proposal against the snapshot and every
	// ordered pair of proposals against each other. Nothing is persisted.
	VerifyBatch(ctx context.Context, proposals []SchedulingConstraint, existing []ExistingMeeting) Result

	// FindAvailableSlots enumerates free slot starts for a room on the
	// increment grid. Best-effort helper, no optimality guarantee.
	FindAvailableSlots(roomID int, duration time.Duration, searchStart, searchEnd time.Time, existing []ExistingMeeting) []time.Time

	// Enabled reports the live toggle state.
	Enabled() bool

	// SetEnabled flips the live toggle. When disabled, CheckFeasibility
	// returns SAT unconditionally and pre-checks are skipped.
	SetEnabled(enabled bool)
}

// ConstraintSolver is a pure algorithmic Backend. Each conflict hypothesis is
// asserted in its own push/pop session frame and checked, one frame per
// candidate constraint, the same shape an incremental SMT encoding uses.
type ConstraintSolver struct {
	mu            sync.Mutex
	enabled       atomic.Bool
	timeout       time.Duration
	slotIncrement time.Duration
}

var _ Backend = (*ConstraintSolver)(nil)

// NewConstraintSolver builds an enabled solver. A non-positive timeout
// disables the deadline; a non-positive slot increment falls back to the
// 15-minute default grid.
func NewConstraintSolver(timeout, slotIncrement time.Duration) *ConstraintSolver {
	if slotIncrement <= 0 {
		slotIncrement = 15 * time.Minute
	}
	s := &ConstraintSolver{
		timeout:       timeout,
		slotIncrement: slotIncrement,
	}
	s.enabled.Store(true)
	return s
}

// Enabled reports the live toggle state.
func (s *ConstraintSolver) Enabled() bool { return s.enabled.Load() }

// SetEnabled flips the live toggle.
func (s *ConstraintSolver) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
	slog.Info("Constraint solver toggled", "enabled", enabled)
}

// CheckFeasibility decides admissibility of a single proposal.
func (s *ConstraintSolver) CheckFeasibility(ctx context.Context, proposed SchedulingConstraint, existing []ExistingMeeting) Result {
	if !s.Enabled() {
		return Satisfied(0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	violations, err := s.decide(ctx, proposed, existing)
	res := s.finish(start, violations, err)

	switch res.Status {
	case StatusSatisfiable:
		slog.Info("Solver: scheduling is SATISFIABLE", "solving_time_ms", res.SolvingTimeMs)
	case StatusUnsatisfiable:
		slog.Info("Solver: scheduling is UNSATISFIABLE",
			"violations", len(res.Violations), "solving_time_ms", res.SolvingTimeMs)
	case StatusError:
		slog.Error("Solver: backend failure", "error", res.Violations[0], "solving_time_ms", res.SolvingTimeMs)
	}
	return res
}

// VerifyBatch checks each proposal against the snapshot, then every ordered
// pair of proposals against each other. Witnesses reference proposals by
// their 0-based index.
func (s *ConstraintSolver) VerifyBatch(ctx context.Context, proposals []SchedulingConstraint, existing []ExistingMeeting) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var violations []string
	for _, p := range proposals {
		vs, err := s.decide(ctx, p, existing)
		if err != nil {
			return s.finish(start, nil, err)
		}
		violations = append(violations, vs...)
	}

	sess := newSession()
	for i := 0; i < len(proposals); i++ {
		for j := i + 1; j < len(proposals); j++ {
			if err := ctx.Err(); err != nil {
				return s.finish(start, nil, err)
			}
			a, b := proposals[i], proposals[j]

			if a.RoomID == b.RoomID {
				overlap := and(
					lt(a.StartEpoch(), b.EndEpoch()),
					lt(b.StartEpoch(), a.EndEpoch()),
				)
				sess.Push()
				sess.Assert(not(overlap))
				if sess.Check() == unsat {
					violations = append(violations, fmt.Sprintf(
						"Batch conflict: meetings at indices %d and %d overlap in room %d",
						i, j, a.RoomID))
				}
				sess.Pop()
			}

			common := lo.Intersect(a.ParticipantIDs, b.ParticipantIDs)
			if len(common) > 0 {
				overlap := and(
					lt(a.StartEpoch(), b.EndEpoch()),
					lt(b.StartEpoch(), a.EndEpoch()),
				)
				sess.Push()
				sess.Assert(not(overlap))
				if sess.Check() == unsat {
					violations = append(violations, fmt.Sprintf(
						"Batch conflict: participants %v double-booked between meetings at indices %d and %d",
						common, i, j))
				}
				sess.Pop()
			}
		}
	}

	return s.finish(start, violations, nil)
}

// decide runs pre-checks and the per-candidate conflict encoding. It returns
// the collected witnesses, or an error when the deadline expired.
func (s *ConstraintSolver) decide(ctx context.Context, proposed SchedulingConstraint, existing []ExistingMeeting) ([]string, error) {
	if !proposed.ValidTimeRange() {
		return []string{"Invalid time range: start time must be before end time"}, nil
	}
	if !proposed.FitsCapacity() {
		return []string{fmt.Sprintf(
			"Room capacity exceeded: %d requested, capacity %d",
			len(proposed.ParticipantIDs), proposed.RoomCapacity)}, nil
	}

	sess := newSession()
	newStart, newEnd := proposed.StartEpoch(), proposed.EndEpoch()
	newRoom := int64(proposed.RoomID)

	var violations []string
	for _, ex := range existing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Update self-exclusion: a proposal carrying its own meeting id must
		// not conflict with its persisted self.
		if proposed.MeetingID != nil && *proposed.MeetingID == ex.MeetingID {
			continue
		}

		roomConflict := and(
			eq(newRoom, int64(ex.RoomID)),
			lt(newStart, ex.EndEpoch()),
			lt(ex.StartEpoch(), newEnd),
		)
		sess.Push()
		sess.Assert(not(roomConflict))
		if sess.Check() == unsat {
			violations = append(violations, fmt.Sprintf(
				"Room conflict: overlaps with meeting %d in room %d (%s to %s)",
				ex.MeetingID, ex.RoomID, fmtInstant(ex.Start), fmtInstant(ex.End)))
		}
		sess.Pop()

		for _, pid := range proposed.ParticipantIDs {
			if !ex.Involves(pid) {
				continue
			}
			participantConflict := and(
				lt(newStart, ex.EndEpoch()),
				lt(ex.StartEpoch(), newEnd),
			)
			sess.Push()
			sess.Assert(not(participantConflict))
			if sess.Check() == unsat {
				violations = append(violations, fmt.Sprintf(
					"Participant conflict: participant %d already booked in meeting %d (%s to %s)",
					pid, ex.MeetingID, fmtInstant(ex.Start), fmtInstant(ex.End)))
			}
			sess.Pop()
		}
	}
	return violations, nil
}

// finish assembles the Result, records metrics, and maps deadline expiry to
// the "solver timeout" error contract.
func (s *ConstraintSolver) finish(start time.Time, violations []string, err error) Result {
	elapsed := time.Since(start)
	ms := elapsed.Milliseconds()

	var res Result
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		res = Errored("solver timeout", ms)
	case err != nil:
		res = Errored("solver aborted: "+err.Error(), ms)
	case len(violations) == 0:
		res = Satisfied(ms)
	default:
		res = Unsatisfied(violations, ms)
	}

	metrics.SolverChecks.WithLabelValues(string(res.Status)).Inc()
	metrics.SolverDuration.Observe(elapsed.Seconds())
	return res
}

func fmtInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
