package models

// RoomRequest is the inbound payload for room create and update.
type RoomRequest struct {
	Name        *string `json:"name,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// RoomResponse is the outbound representation of a room.
type RoomResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   bool    `json:"available"`
}
