// Package scalar defines the scalar values a CRDT document stores at a map
// key or list index.
//
// The set of kinds is closed:
//   - bytes, str, int, uint, f64, counter, timestamp, boolean, null
//   - unknown: a kind written by a newer version, carried as raw bytes plus
//     its numeric type code
//
// Kind names come from stringer line comments and double as datatype tags
// (see Datatype). Every switch over Kind in this module lists all members and
// panics in its default branch, so a new kind that is not handled everywhere
// fails loudly instead of being silently mapped.
package scalar
