package models

// CreateNoteRequest is the body of the create-note call.
type CreateNoteRequest struct {
	// Category is the fixed kind of the new note.
	Category Category `json:"type" validate:"required,category"`

	// Content is the encoded body produced by the codec.
	Content string `json:"content" validate:"required"`

	// PositionX and PositionY are the initial canvas coordinates.
	// Fractional values are floored before they are stored; the floored
	// value must fit the 32-bit position columns.
	PositionX float64 `json:"position_x"`
	PositionY float64 `json:"position_y"`

	// SessionID becomes the owner of the note. It may be empty.
	SessionID string `json:"sessionId"`
}

// UpdateNoteRequest replaces the content of a note.
type UpdateNoteRequest struct {
	ID      string `json:"id" validate:"required,uuid"`
	Content string `json:"content" validate:"required"`
}

// UpdatePositionRequest moves a note on the canvas. X and Y follow the
// same bounds as the create coordinates.
type UpdatePositionRequest struct {
	ID string  `json:"id" validate:"required,uuid"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// DeleteNoteRequest removes a note together with its likes.
type DeleteNoteRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// LikeRequest toggles the like of SessionID on the note ID.
type LikeRequest struct {
	ID        string `json:"id" validate:"required,uuid"`
	SessionID string `json:"sessionId" validate:"required"`
}

// CheckLikesRequest asks which of NoteIDs are liked by SessionID.
// NoteIDs must be present but may be empty; every entry must be a UUID.
type CheckLikesRequest struct {
	NoteIDs   []string `json:"noteIds" validate:"required,dive,uuid"`
	SessionID string   `json:"sessionId" validate:"required"`
}
