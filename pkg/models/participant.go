package models

// ParticipantRequest is the inbound payload for participant create and
// update.
type ParticipantRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
}

// ParticipantResponse is the outbound representation of a participant.
type ParticipantResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
}
