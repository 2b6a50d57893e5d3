// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ StoreInterface = (*MemoryStore)(nil)

type memorySession struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore keeps sessions in process, sessions do not survive restarts or span replicas
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession

	now func() time.Time
}

func (s *MemoryStore) Create(_ context.Context, userID string, ttl time.Duration) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = memorySession{userID: userID, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) Lookup(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return "", ErrSessionNotFound
	}

	if !s.now().Before(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return "", ErrSessionNotFound
	}

	return sess.userID, nil
}

func (s *MemoryStore) Destroy(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return nil
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}
