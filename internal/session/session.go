// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session provides the anonymous per-client identity used for
// note ownership and like attribution.
//
// The identifier is created on first use, persisted in the client's local
// store and never rotated. It is not verified by the note store.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/coffee-notes/internal/logger"
)

//go:generate mockgen -source=session.go -destination=../mock/session_store_mock.go -package=mock -mock_names=Store=MockSessionStore

// Key is the name under which the identifier is persisted.
const Key = "coffee-notes-session-id"

// ErrNotFound is returned by a Store when the key is absent.
var ErrNotFound = errors.New("session key not found")

// Store is the client-local key/value persistence of the session.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Provider returns the session identifier of this client.
type Provider struct {
	store Store
	now   func() time.Time
}

// NewProvider returns a provider backed by store. A nil store means no
// persistent client context is available.
func NewProvider(store Store) *Provider {
	return &Provider{store: store, now: time.Now}
}

// GetOrCreate returns the persisted identifier, generating and persisting
// a new one when none exists yet. Without a store it returns "".
func (p *Provider) GetOrCreate(ctx context.Context) (string, error) {
	if p == nil || p.store == nil {
		return "", nil
	}

	id, err := p.store.Get(ctx, Key)
	switch {
	case err == nil && id != "":
		return id, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		return "", fmt.Errorf("error reading session identifier: %w", err)
	}

	id = NewID(p.now())
	if err = p.store.Set(ctx, Key, id); err != nil {
		return "", fmt.Errorf("error saving session identifier: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*Provider.GetOrCreate").
		Str("session_id", id).
		Msg("new session identifier created")

	return id, nil
}

// NewID generates an identifier of the form user_<unix-ms>_<random>,
// where the random part is 13 lowercase hex characters.
func NewID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("user_%d_%s", now.UnixMilli(), random[:13])
}

// IsValid reports whether id has the shape produced by NewID.
func IsValid(id string) bool {
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[0] != "user" || parts[1] == "" || parts[2] == "" {
		return false
	}
	for _, r := range parts[1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
