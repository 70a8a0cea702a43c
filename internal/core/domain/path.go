package domain

import (
	"path/filepath"
	"strings"
)

// MaxPathLength is the longest path accepted for destructive
// operations, inherited from the Windows MAX_PATH ceiling.
const MaxPathLength = 260

// ValidatedPath is an absolute filesystem path that passed the safety
// checks required before any create, delete, or recursive-copy call.
// Destructive call sites revalidate their target immediately before
// acting rather than trusting a value validated earlier in the run.
type ValidatedPath string

// NewValidatedPath canonicalizes raw to an absolute path and rejects
// parent-directory traversal markers, home-relative markers, and
// results longer than MaxPathLength. The marker checks are substring
// checks applied to both the raw input and the canonical form, so a
// filename that merely contains ".." or "~" is also rejected.
func NewValidatedPath(raw string) (ValidatedPath, error) {
	if raw == "" {
		return "", NewValidationFailure("path cannot be empty")
	}
	if strings.Contains(raw, "..") {
		return "", NewValidationFailure("path %q contains a parent-directory traversal", raw)
	}
	if strings.Contains(raw, "~") {
		return "", NewValidationFailure("path %q contains a home-relative marker", raw)
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", NewValidationFailure("cannot canonicalize path %q: %v", raw, err)
	}

	// The working directory joined by Abs could reintroduce a marker.
	if strings.Contains(abs, "..") {
		return "", NewValidationFailure("path %q canonicalizes to a parent-directory traversal", raw)
	}
	if strings.Contains(abs, "~") {
		return "", NewValidationFailure("path %q canonicalizes to a home-relative marker", raw)
	}
	if len(abs) > MaxPathLength {
		return "", NewValidationFailure("path %q exceeds %d characters after canonicalization", raw, MaxPathLength)
	}

	return ValidatedPath(abs), nil
}

// String returns the path as a plain string.
func (p ValidatedPath) String() string {
	return string(p)
}

// Join validates the path extended with the given elements.
func (p ValidatedPath) Join(elems ...string) (ValidatedPath, error) {
	return NewValidatedPath(filepath.Join(append([]string{string(p)}, elems...)...))
}
