// Package config abstracts runtime configuration access.
//
// The OTP step reads its admin-facing settings (channel policy, code shape,
// TTL, retry budget, carrier credentials) through the Config interface so the
// backing source can be hot-reloaded or faked in tests.
package config

import (
	"io"
	"time"
)

// Config defines the getters used to read configuration values.
//
// Implementations handle missing keys and type conversion by returning the
// zero value; applying defaults is the caller's responsibility.
type Config interface {
	io.Closer

	// GetBool retrieves the configuration value associated with the given key as a bool.
	GetBool(key string) bool

	// GetString retrieves the configuration value associated with the given key as a string.
	GetString(key string) string

	// GetInt retrieves the configuration value associated with the given key as an int.
	GetInt(key string) int

	// GetUint retrieves the configuration value associated with the given key as a uint.
	GetUint(key string) uint

	// GetSecond retrieves the configuration value associated with the given key as seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the configuration value associated with the given key as minutes.
	GetMinute(key string) time.Duration

	// GetArray retrieves the configuration value associated with the given key as a
	// slice of strings. The value is stored with format <element1>,<element2>,...
	GetArray(key string) []string

	// GetFloat64 retrieves the configuration value associated with the given key as a float64.
	GetFloat64(key string) float64

	// IsSet reports whether the key is present in the configuration at all,
	// distinguishing "unset" from an explicit zero value.
	IsSet(key string) bool
}
