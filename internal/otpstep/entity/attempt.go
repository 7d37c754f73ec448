package entity

import (
	"errors"
	"strconv"
	"time"
)

// Note keys under which the per-attempt transient state is stored in the
// session note store. The names match the authentication session notes of
// the surrounding flow engine.
const (
	NoteChannel          = "channel"
	NoteCode             = "code"
	NoteExpiresAt        = "ttl"
	NoteRemainingRetries = "remainingRetries"
)

// ErrStateIncomplete indicates the attempt session is missing fields that
// must exist once a code has been issued (corrupted or stale attempt).
var ErrStateIncomplete = errors.New("otpstep: attempt state incomplete")

// IssuedCode is the transient passcode record for one attempt.
//
// Code, expiry, and retry budget are always written together; an attempt
// session holding only some of them is corrupted.
type IssuedCode struct {
	Code             string
	ExpiresAtMillis  int64
	RemainingRetries uint
}

// Expired reports whether the code's TTL elapsed before now. A code checked
// at exactly the expiry instant is still valid.
func (c IssuedCode) Expired(now time.Time) bool {
	return c.ExpiresAtMillis < now.UnixMilli()
}

// Encode returns the note representation of the issued code.
func (c IssuedCode) Encode() map[string]string {
	return map[string]string{
		NoteCode:             c.Code,
		NoteExpiresAt:        strconv.FormatInt(c.ExpiresAtMillis, 10),
		NoteRemainingRetries: strconv.FormatUint(uint64(c.RemainingRetries), 10),
	}
}

// DecodeIssuedCode rebuilds an IssuedCode from session notes.
//
// A missing code or expiry note yields ErrStateIncomplete. A missing or
// malformed retry note decodes as zero retries remaining, matching the
// original flow's treatment of an absent retry counter.
func DecodeIssuedCode(notes map[string]string) (IssuedCode, error) {
	code, okCode := notes[NoteCode]
	rawExpiry, okExpiry := notes[NoteExpiresAt]
	if !okCode || !okExpiry || code == "" || rawExpiry == "" {
		return IssuedCode{}, ErrStateIncomplete
	}

	expiresAt, err := strconv.ParseInt(rawExpiry, 10, 64)
	if err != nil {
		return IssuedCode{}, ErrStateIncomplete
	}

	var remaining uint
	if raw, ok := notes[NoteRemainingRetries]; ok {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			remaining = uint(n)
		}
	}

	return IssuedCode{
		Code:             code,
		ExpiresAtMillis:  expiresAt,
		RemainingRetries: remaining,
	}, nil
}
