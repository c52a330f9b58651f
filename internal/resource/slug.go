package resource

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugDisallowed    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugWhitespace    = regexp.MustCompile(`\s+`)
	slugHyphenRuns    = regexp.MustCompile(`-{2,}`)
	slugTrimHyphens   = regexp.MustCompile(`^-+|-+$`)
	slugTokenBoundary = "-"
)

// Slugify derives a URL-safe identifier from a human-readable title: the
// title is lower-cased, everything outside [a-z0-9\s-] (Cyrillic included)
// is dropped, whitespace runs become hyphens, the given tokens are stripped,
// hyphen runs collapse, and leading/trailing hyphens are trimmed. An empty
// result means the title carried no usable characters.
func Slugify(title string, stripTokens ...string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	cleaned := slugDisallowed.ReplaceAllString(lowered, "")
	hyphenated := slugWhitespace.ReplaceAllString(cleaned, slugTokenBoundary)
	for _, token := range stripTokens {
		if token == "" {
			continue
		}
		hyphenated = strings.ReplaceAll(hyphenated, strings.ToLower(token), "")
	}
	collapsed := slugHyphenRuns.ReplaceAllString(hyphenated, slugTokenBoundary)
	return slugTrimHyphens.ReplaceAllString(collapsed, "")
}

// UniqueSlug probes base, base-1, base-2, … until taken reports a free slug.
// It returns an empty string when base is empty.
func UniqueSlug(base string, taken func(candidate string) (bool, error)) (string, error) {
	if base == "" {
		return "", nil
	}
	candidate := base
	for suffix := 1; ; suffix++ {
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
		candidate = base + slugTokenBoundary + strconv.Itoa(suffix)
	}
}
