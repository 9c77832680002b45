package models

import "time"

// Note is a single user-submitted item on the board.
//
// JSON names follow the wire format of the note store API.
type Note struct {
	// ID is assigned by the store at creation and never changes.
	ID string `json:"id"`

	// Category is the fixed kind of the note.
	Category Category `json:"type"`

	// Content is the encoded [Body]. It is opaque outside of the codec.
	Content string `json:"content"`

	// PositionX and PositionY are the canvas coordinates of the note's
	// top-left corner. They are integers once persisted.
	PositionX int `json:"position_x"`
	PositionY int `json:"position_y"`

	// CreatedAt is assigned at creation and used for display and ordering.
	CreatedAt time.Time `json:"created_at"`

	// Likes is the server-authoritative like counter.
	Likes int `json:"likes"`

	// SessionID is the session identifier of the creator.
	SessionID string `json:"session_id,omitempty"`
}

// OwnedBy reports whether the note was created by sessionID.
//
// It only gates the edit/delete controls of the presentation layer; the
// note store does not check ownership.
func (n Note) OwnedBy(sessionID string) bool {
	return sessionID != "" && n.SessionID == sessionID
}

// Like records that a session currently likes a note.
// There is at most one Like per (NoteID, SessionID).
type Like struct {
	ID        int64     `json:"id"`
	NoteID    string    `json:"note_id"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeStatus is the authoritative like state of a note for one session,
// as returned by the toggle operation.
type LikeStatus struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}
