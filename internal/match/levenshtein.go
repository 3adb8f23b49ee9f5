package match

import (
	"strings"
)

// Levenshtein computes the edit distance between two strings, counting
// runes: the fewest single-rune insertions, deletions, or substitutions that
// turn a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// Keep the row over the shorter string
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag, row[i] = row[i], next
		}
	}

	return row[len(ra)]
}

// Normalize case-folds s and drops separators, so "Uint", "u_int" and "U-Int"
// compare equal.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '.':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// Closest returns the candidate nearest to input after normalization, if its
// distance is at most maxDistance. Ties go to the earlier candidate.
func Closest(input string, candidates []string, maxDistance int) (string, bool) {
	norm := Normalize(input)
	if norm == "" {
		return "", false
	}

	best, bestDistance := "", maxDistance+1
	for _, c := range candidates {
		if d := Levenshtein(norm, Normalize(c)); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}
