package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	homeShorthandConstant       = "~"
	homeShorthandPrefixConstant = "~/"
)

// HomeExpander resolves home directory shorthand within filesystem paths.
type HomeExpander struct {
	homeDirectoryOnce  sync.Once
	homeDirectoryValue string
}

// NewHomeExpander constructs a HomeExpander instance.
func NewHomeExpander() *HomeExpander {
	return &HomeExpander{}
}

// Expand replaces a leading home shorthand with the current user's home directory.
func (expander *HomeExpander) Expand(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return trimmedPath
	}

	if trimmedPath != homeShorthandConstant && !strings.HasPrefix(trimmedPath, homeShorthandPrefixConstant) {
		return trimmedPath
	}

	homeDirectory := expander.homeDirectory()
	if len(homeDirectory) == 0 {
		return trimmedPath
	}

	if trimmedPath == homeShorthandConstant {
		return homeDirectory
	}

	return filepath.Join(homeDirectory, strings.TrimPrefix(trimmedPath, homeShorthandPrefixConstant))
}

func (expander *HomeExpander) homeDirectory() string {
	expander.homeDirectoryOnce.Do(func() {
		resolvedHomeDirectory, homeDirectoryError := os.UserHomeDir()
		if homeDirectoryError != nil {
			expander.homeDirectoryValue = ""
			return
		}
		expander.homeDirectoryValue = resolvedHomeDirectory
	})
	return expander.homeDirectoryValue
}
