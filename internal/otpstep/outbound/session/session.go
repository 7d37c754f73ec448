// Package session stores the transient notes of an authentication attempt.
//
// Each attempt owns an isolated bag of string notes that lives for at most
// the attempt's lifetime. Writes of multiple notes are atomic: a reader never
// observes a partially issued code.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrAttemptNotFound indicates the attempt has no stored notes, either
// because none were written or because the attempt expired.
var ErrAttemptNotFound = errors.New("session: attempt not found")

// Store is the note storage contract for authentication attempts.
type Store interface {
	// SetNotes writes all given notes atomically and refreshes the
	// attempt's lifetime to ttl.
	SetNotes(ctx context.Context, attemptID string, notes map[string]string, ttl time.Duration) error

	// GetNotes returns every note of the attempt, or ErrAttemptNotFound.
	GetNotes(ctx context.Context, attemptID string) (map[string]string, error)

	// Clear removes the attempt and all its notes.
	Clear(ctx context.Context, attemptID string) error
}
