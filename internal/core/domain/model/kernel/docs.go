// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - Plate: normalized vehicle plate number
//
// All value objects follow the same rules: they are immutable, the zero value
// is invalid, and instances must be created through constructor functions that
// enforce validation. This guarantees that any value object reaching the rest
// of the domain is already valid.
package kernel
