// Package pathutils normalizes filesystem paths supplied through flags and
// configuration before they reach git operations.
package pathutils

import (
	"path/filepath"
	"strings"
)

// WorkspacePathSanitizer normalizes workspace path values from configuration and flags.
type WorkspacePathSanitizer struct {
	homeExpander *HomeExpander
}

// NewWorkspacePathSanitizer constructs a sanitizer with home directory expansion enabled.
func NewWorkspacePathSanitizer() *WorkspacePathSanitizer {
	return &WorkspacePathSanitizer{homeExpander: NewHomeExpander()}
}

// Sanitize trims surrounding whitespace, expands home shorthand, and cleans the resulting path.
// Empty candidates sanitize to an empty string so callers can apply their own defaults.
func (sanitizer *WorkspacePathSanitizer) Sanitize(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return ""
	}

	expandedPath := trimmedPath
	if sanitizer != nil && sanitizer.homeExpander != nil {
		expandedPath = sanitizer.homeExpander.Expand(trimmedPath)
	}

	return filepath.Clean(expandedPath)
}
