// Package match provides name normalization and Levenshtein distance for
// suggesting the datatype tag a user most likely meant.
//
// Key functions:
//   - Normalize: case-folds and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the nearest candidate within a distance bound
package match
