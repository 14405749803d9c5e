// Package codeslug provides the deterministic code/slug generator shared by
// every entity that derives a `code` field from a human-readable `name`
// (catalogue categories, systems, units, usage statuses, manufacturers).
package codeslug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Generate converts s into a deterministic, URL-safe code:
//  1. lowercase
//  2. every run of non-alphanumeric characters becomes a single hyphen
//  3. leading/trailing hyphens are trimmed
//
// Generate is idempotent: Generate(Generate(s)) == Generate(s).
func Generate(s string) string {
	s = strings.ToLower(s)
	s = nonAlphaNum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
