package solver

// Status is the outcome class of a decision-backend call.
type Status string

const (
	StatusSatisfiable   Status = "SATISFIABLE"
	StatusUnsatisfiable Status = "UNSATISFIABLE"
	StatusError         Status = "ERROR"
)

// Result is the tagged outcome of a decision-backend call. UNSAT carries one
// human-readable witness per violated constraint; ERROR carries the backend
// failure message as its single violation.
type Result struct {
	Satisfiable   bool     `json:"satisfiable"`
	Violations    []string `json:"violations"`
	SolvingTimeMs int64    `json:"solvingTimeMs"`
	Status        Status   `json:"solverStatus"`
}

// Satisfied builds a SAT result.
func Satisfied(solvingTimeMs int64) Result {
	return Result{
		Satisfiable:   true,
		Violations:    []string{},
		SolvingTimeMs: solvingTimeMs,
		Status:        StatusSatisfiable,
	}
}

// Unsatisfied builds an UNSAT result with the collected witnesses.
func Unsatisfied(violations []string, solvingTimeMs int64) Result {
	return Result{
		Satisfiable:   false,
		Violations:    violations,
		SolvingTimeMs: solvingTimeMs,
		Status:        StatusUnsatisfiable,
	}
}

// Errored builds an ERROR result for a backend failure.
func Errored(message string, solvingTimeMs int64) Result {
	return Result{
		Satisfiable:   false,
		Violations:    []string{message},
		SolvingTimeMs: solvingTimeMs,
		Status:        StatusError,
	}
}
