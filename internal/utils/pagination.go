// Package utils holds tiny helpers for parsing and bounding query
// parameters. Nothing here knows about health logs or HTTP framing.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// An empty or unparsable string yields the provided default.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampInt bounds n to the inclusive range [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
