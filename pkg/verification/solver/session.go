package solver

// term is a closed boolean formula over integer time arithmetic. Terms are
// built from the comparison constructors below and evaluated during Check.
type term func() bool

func lt(a, b int64) term { return func() bool { return a < b } }

func eq(a, b int64) term { return func() bool { return a == b } }

func and(ts ...term) term {
	return func() bool {
		for _, t := range ts {
			if !t() {
				return false
			}
		}
		return true
	}
}

func not(t term) term { return func() bool { return !t() } }

type checkStatus int

const (
	sat checkStatus = iota
	unsat
)

// session is an incremental decision session over closed formulas. Callers
// add hypotheses with Assert inside Push/Pop frames and query satisfiability
// with Check, mirroring the framing an SMT solver exposes. A session is not
// safe for concurrent use; the backend serializes access.
type session struct {
	frames [][]term
}

func newSession() *session {
	return &session{frames: [][]term{{}}}
}

// Push opens a new assertion frame.
func (s *session) Push() {
	s.frames = append(s.frames, nil)
}

// Pop discards the most recent frame and every assertion made in it.
func (s *session) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Assert adds a hypothesis to the current frame.
func (s *session) Assert(t term) {
	top := len(s.frames) - 1
	s.frames[top] = append(s.frames[top], t)
}

// Check decides satisfiability of the conjunction of all asserted formulas.
func (s *session) Check() checkStatus {
	for _, frame := range s.frames {
		for _, t := range frame {
			if !t() {
				return unsat
			}
		}
	}
	return sat
}
