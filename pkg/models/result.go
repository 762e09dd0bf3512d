package models

// SchedulingResult is the verification outcome returned for create, update
// and batch-verify requests. It crosses the API boundary unchanged.
type SchedulingResult struct {
	Success              bool             `json:"success"`
	Meeting              *MeetingResponse `json:"meeting,omitempty"`
	ConstraintViolations []string         `json:"constraintViolations"`
	RuntimeWarnings      []string         `json:"runtimeWarnings"`
	SolverStatus         string           `json:"solverStatus"`
	Explanation          string           `json:"explanation"`
	SolvingTimeMs        int64            `json:"solvingTimeMs"`
}

// SuccessResult builds the SAT-side result.
func SuccessResult(meeting *MeetingResponse, explanation string, solvingTimeMs int64) SchedulingResult {
	return SchedulingResult{
		Success:              true,
		Meeting:              meeting,
		ConstraintViolations: []string{},
		RuntimeWarnings:      []string{},
		SolverStatus:         "SATISFIABLE",
		Explanation:          explanation,
		SolvingTimeMs:        solvingTimeMs,
	}
}

// FailureResult builds the UNSAT-side result carrying the witnesses.
func FailureResult(violations []string, explanation string, solvingTimeMs int64) SchedulingResult {
	return SchedulingResult{
		Success:              false,
		ConstraintViolations: violations,
		RuntimeWarnings:      []string{},
		SolverStatus:         "UNSATISFIABLE",
		Explanation:          explanation,
		SolvingTimeMs:        solvingTimeMs,
	}
}
