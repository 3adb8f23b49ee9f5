// Package diagnostic provides structured warnings, errors, and informational
// notes about how scalar values convert to host values.
//
// Key capabilities:
//   - Lossy integer widening warnings (magnitudes above 2^53)
//   - Notes for unknown kinds whose type code is dropped on conversion
//   - Load failures reported against the offending entry
package diagnostic
