// Package otpcode generates short one-time passcodes for delivery to users.
//
// Codes are drawn from a cryptographically secure random source; a failing
// entropy source is reported as an error rather than degraded randomness.
package otpcode
