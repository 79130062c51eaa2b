package sources

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

const (
	commentMarkerConstant                    = "#"
	sourceListReaderMissingMessageConstant   = "source list reader not configured"
	sourceListReadErrorTemplateConstant      = "failed to read source list: %w"
	malformedEntryTemplateConstant           = "malformed source entry on line %d: %q (expected \"<url> <name>\")"
	duplicateRemoteNameTemplateConstant      = "duplicate remote name %q on line %d"
	invalidRemoteNameTemplateConstant        = "invalid remote name %q on line %d: %s"
	invalidSourceURLTemplateConstant         = "invalid source url %q on line %d: %v"
	emptySourceListMessageConstant           = "source list contains no repositories"
	reservedRemoteNameMessageConstant        = "name is reserved for the consolidation target"
	remoteNameSeparatorMessageConstant       = "name must not contain path separators"
	remoteNamePunctuationMessageConstant     = "name must not contain commas"
	remoteNameForbiddenPunctuationConstant   = ","
	expectedSourceEntryFieldCountConstant    = 2
	targetRemoteNameConstant                 = "origin"
	remoteNameForbiddenSeparatorRuneConstant = "/"
)

// ErrSourceListReaderNotConfigured indicates no reader was supplied for parsing.
var ErrSourceListReaderNotConfigured = errors.New(sourceListReaderMissingMessageConstant)

// ErrEmptySourceList indicates the parsed list produced no repositories.
var ErrEmptySourceList = errors.New(emptySourceListMessageConstant)

// SourceRepository identifies one repository feeding the consolidation.
type SourceRepository struct {
	RemoteURL  string
	RemoteName string
}

// MalformedEntryError reports a source list line that does not match the expected grammar.
type MalformedEntryError struct {
	LineNumber int
	Line       string
}

// Error describes the malformed entry.
func (entryError MalformedEntryError) Error() string {
	return fmt.Sprintf(malformedEntryTemplateConstant, entryError.LineNumber, entryError.Line)
}

// DuplicateRemoteNameError reports a remote name claimed by more than one source.
type DuplicateRemoteNameError struct {
	RemoteName string
	LineNumber int
}

// Error describes the duplicated name.
func (duplicateError DuplicateRemoteNameError) Error() string {
	return fmt.Sprintf(duplicateRemoteNameTemplateConstant, duplicateError.RemoteName, duplicateError.LineNumber)
}

// InvalidRemoteNameError reports a remote name unusable as a remote or path component.
type InvalidRemoteNameError struct {
	RemoteName string
	LineNumber int
	Reason     string
}

// Error describes why the remote name was rejected.
func (nameError InvalidRemoteNameError) Error() string {
	return fmt.Sprintf(invalidRemoteNameTemplateConstant, nameError.RemoteName, nameError.LineNumber, nameError.Reason)
}

// InvalidSourceURLError reports a source URL git transports cannot address.
type InvalidSourceURLError struct {
	RemoteURL  string
	LineNumber int
	Cause      error
}

// Error describes the rejected URL.
func (urlError InvalidSourceURLError) Error() string {
	return fmt.Sprintf(invalidSourceURLTemplateConstant, urlError.RemoteURL, urlError.LineNumber, urlError.Cause)
}

// Unwrap exposes the transport-level cause.
func (urlError InvalidSourceURLError) Unwrap() error {
	return urlError.Cause
}

// ParseSourceList reads `<url> <name>` entries from listReader.
//
// Blank lines are skipped and everything after a '#' is treated as a comment.
// Entries are returned in input order, which is the processing order for the
// consolidation run.
func ParseSourceList(listReader io.Reader) ([]SourceRepository, error) {
	if listReader == nil {
		return nil, ErrSourceListReaderNotConfigured
	}

	parsedSources := []SourceRepository{}
	claimedRemoteNames := map[string]struct{}{}

	lineScanner := bufio.NewScanner(listReader)
	lineNumber := 0
	for lineScanner.Scan() {
		lineNumber++

		lineContent := lineScanner.Text()
		if commentIndex := strings.Index(lineContent, commentMarkerConstant); commentIndex >= 0 {
			lineContent = lineContent[:commentIndex]
		}

		trimmedLine := strings.TrimSpace(lineContent)
		if len(trimmedLine) == 0 {
			continue
		}

		lineFields := strings.Fields(trimmedLine)
		if len(lineFields) != expectedSourceEntryFieldCountConstant {
			return nil, MalformedEntryError{LineNumber: lineNumber, Line: trimmedLine}
		}

		remoteURL := lineFields[0]
		remoteName := lineFields[1]

		if validationError := validateRemoteName(remoteName, lineNumber); validationError != nil {
			return nil, validationError
		}
		if _, endpointError := transport.NewEndpoint(remoteURL); endpointError != nil {
			return nil, InvalidSourceURLError{RemoteURL: remoteURL, LineNumber: lineNumber, Cause: endpointError}
		}
		if _, alreadyClaimed := claimedRemoteNames[remoteName]; alreadyClaimed {
			return nil, DuplicateRemoteNameError{RemoteName: remoteName, LineNumber: lineNumber}
		}
		claimedRemoteNames[remoteName] = struct{}{}

		parsedSources = append(parsedSources, SourceRepository{RemoteURL: remoteURL, RemoteName: remoteName})
	}

	if scanError := lineScanner.Err(); scanError != nil {
		return nil, fmt.Errorf(sourceListReadErrorTemplateConstant, scanError)
	}
	if len(parsedSources) == 0 {
		return nil, ErrEmptySourceList
	}

	return parsedSources, nil
}

func validateRemoteName(remoteName string, lineNumber int) error {
	if remoteName == targetRemoteNameConstant {
		return InvalidRemoteNameError{RemoteName: remoteName, LineNumber: lineNumber, Reason: reservedRemoteNameMessageConstant}
	}
	if strings.Contains(remoteName, remoteNameForbiddenSeparatorRuneConstant) {
		return InvalidRemoteNameError{RemoteName: remoteName, LineNumber: lineNumber, Reason: remoteNameSeparatorMessageConstant}
	}
	if strings.Contains(remoteName, remoteNameForbiddenPunctuationConstant) {
		return InvalidRemoteNameError{RemoteName: remoteName, LineNumber: lineNumber, Reason: remoteNamePunctuationMessageConstant}
	}
	return nil
}
