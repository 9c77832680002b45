package models

// SuccessResponse acknowledges calls that return no data
// (update-position, delete).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CheckLikesResponse maps every liked note ID to true.
// Notes that are not liked are absent from the map.
type CheckLikesResponse struct {
	LikedNotes map[string]bool `json:"likedNotes"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string `json:"error"`
}
