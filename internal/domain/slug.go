package domain

import (
	"regexp"
	"strings"
)

var (
	slugDropRe     = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// DeriveSlug derives a URL-safe organization slug from its display name.
// Pure and deterministic: lowercase, strip everything outside [a-z0-9\s-],
// collapse whitespace runs to single hyphens, collapse repeated hyphens,
// trim leading/trailing hyphens.
func DeriveSlug(name string) string {
	s := strings.ToLower(name)
	s = slugDropRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(strings.TrimSpace(s), "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
