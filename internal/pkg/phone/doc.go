// Package phone provides best-effort normalization of loosely formatted
// phone numbers into an E.164-like form.
//
// It is a heuristic cleanup for numbers entered by humans, not a validator:
// malformed input still produces a string.
package phone
