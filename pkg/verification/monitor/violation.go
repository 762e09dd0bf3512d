package monitor

import "time"

// Severity classifies a property violation.
type Severity string

const (
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

// Property tags for the monitored temporal properties.
const (
	PropertyCapacityExceeded     = "CAPACITY_EXCEEDED"
	PropertyMeetingOverlap       = "MEETING_OVERLAP"
	PropertyConfirmWithoutCreate = "CONFIRM_WITHOUT_CREATE"
	PropertyDeleteNonexistent    = "DELETE_NONEXISTENT"
	PropertyUnresolvedMeeting    = "UNRESOLVED_MEETING"
)

// PropertyViolation is an immutable report of one detected property
// violation.
type PropertyViolation struct {
	Property    string    `json:"propertyName"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	MeetingID   int       `json:"meetingId"`
	DetectedAt  time.Time `json:"detectedAt"`
	Details     string    `json:"details"`
}

// sameAs reports whether two violations are duplicates under the dedup rule:
// property, meeting id, description and details all match.
func (v PropertyViolation) sameAs(o PropertyViolation) bool {
	return v.Property == o.Property &&
		v.MeetingID == o.MeetingID &&
		v.Description == o.Description &&
		v.Details == o.Details
}
