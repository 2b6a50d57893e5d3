// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

type StoreInterface interface {
	// Create persists a new session for userID and returns its opaque identifier
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	// Lookup returns the user bound to the session, or ErrSessionNotFound
	Lookup(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}
