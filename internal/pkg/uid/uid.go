// Package uid provides generators for unique identifiers.
//
// Attempt and correlation identifiers flow through the StringID interface so
// callers never depend on a concrete generator.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
