// Package utils provides general-purpose helpers shared by the server and
// the client: typed context keys, JSON response writing, the HTTP client
// wrapper and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the anonymous session identifier
// of the current client in the context.
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
// An empty sessionID is stored as well; GetSessionIDFromContext reports it
// as missing.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// Returns ok == false when the value is missing, has an unexpected type or
// is the empty string.
//
// Example usage:
//
//	sessionID, ok := utils.GetSessionIDFromContext(ctx)
//	if !ok {
//	    // no session: likes and ownership checks are disabled
//	}
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
