package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

var usernameFolder = cases.Fold()

// NormalizeName prepares an identity name (actor, director, genre, movie
// title) for storage and comparison: leading/trailing whitespace is trimmed,
// case is preserved. An all-whitespace input normalizes to the empty string,
// the invalid-identity sentinel.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeUsername prepares a username for storage and comparison: trimmed
// and Unicode case-folded, so "Martin" and "martin" identify the same user.
func NormalizeUsername(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return usernameFolder.String(name)
}
