package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"str", "str", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single rune operations
		{"int", "uint", 1}, // insertion
		{"uint", "int", 1}, // deletion
		{"f64", "f65", 1},  // substitution
		{"f64", "f32", 2},
		{"bool", "boolean", 3},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"timestamp", "timestmap", 2},

		// Runes, not bytes
		{"naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Uint":       "uint",
		"u_int":      "uint",
		"U-Int":      "uint",
		"time stamp": "timestamp",
		"f.64":       "f64",
	}

	for input, expected := range tests {
		if got := Normalize(input); got != expected {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"bytes", "str", "int", "uint", "f64", "counter", "timestamp", "boolean", "null"}

	tests := []struct {
		input    string
		expected string
		found    bool
	}{
		{"bool", "boolean", true},
		{"string", "str", true},
		{"Timestamp", "timestamp", true},
		{"u_int", "uint", true},
		{"float", "", false},
		{"object", "", false},
		{"__", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, found := Closest(tt.input, candidates, 3)
			if got != tt.expected || found != tt.found {
				t.Errorf("Closest(%q) = (%q, %v), want (%q, %v)", tt.input, got, found, tt.expected, tt.found)
			}
		})
	}
}
