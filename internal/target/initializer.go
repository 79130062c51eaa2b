package target

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/temirov/create-mono/internal/gitrepo"
)

const (
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	targetURLRequiredMessageConstant        = "target repository url must be provided"
	targetPathRequiredMessageConstant       = "target repository path must be provided"
	targetAlreadyExistsTemplateConstant     = "target path %q already exists; rerun with --continue to resume"
	targetInspectionErrorTemplateConstant   = "failed to inspect target path %q: %w"
	targetRemovalErrorTemplateConstant      = "failed to remove stale target path %q: %w"
	cloneFailureTemplateConstant            = "failed to clone %q into %q: %v"
	initializeFailureTemplateConstant       = "failed to initialize target repository at %q: %w"
	registerOriginFailureTemplateConstant   = "failed to register origin remote %q: %w"
	invalidTargetURLTemplateConstant        = "target url %q is not a usable git remote: %v"
	originRemoteNameConstant                = "origin"
	defaultInitialBranchNameConstant        = "master"
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrTargetURLRequired indicates the target URL option was empty.
var ErrTargetURLRequired = errors.New(targetURLRequiredMessageConstant)

// ErrTargetPathRequired indicates the target path option was empty.
var ErrTargetPathRequired = errors.New(targetPathRequiredMessageConstant)

// TargetAlreadyExistsError reports a fresh run colliding with an existing target path.
type TargetAlreadyExistsError struct {
	TargetPath string
}

// Error describes the collision.
func (existsError TargetAlreadyExistsError) Error() string {
	return fmt.Sprintf(targetAlreadyExistsTemplateConstant, existsError.TargetPath)
}

// InvalidTargetURLError reports a target URL that is neither a hosted remote
// nor a filesystem path.
type InvalidTargetURLError struct {
	TargetURL string
	Cause     error
}

// Error describes the rejected URL.
func (urlError InvalidTargetURLError) Error() string {
	return fmt.Sprintf(invalidTargetURLTemplateConstant, urlError.TargetURL, urlError.Cause)
}

// Unwrap exposes the underlying parse failure.
func (urlError InvalidTargetURLError) Unwrap() error {
	return urlError.Cause
}

// CloneFailureError reports a resume run unable to clone prior progress.
type CloneFailureError struct {
	RemoteURL  string
	TargetPath string
	Cause      error
}

// Error describes the clone failure.
func (cloneError CloneFailureError) Error() string {
	return fmt.Sprintf(cloneFailureTemplateConstant, cloneError.RemoteURL, cloneError.TargetPath, cloneError.Cause)
}

// Unwrap exposes the underlying git failure.
func (cloneError CloneFailureError) Unwrap() error {
	return cloneError.Cause
}

// TargetRepository is the handle to a prepared local target repository.
type TargetRepository struct {
	Path      string
	OriginURL string
	Endpoint  gitrepo.RemoteEndpoint
}

// RepositoryInitializer is the subset of repository management used to prepare the target.
type RepositoryInitializer interface {
	InitializeRepository(executionContext context.Context, repositoryPath string, initialBranchName string) error
	CloneRepository(executionContext context.Context, remoteURL string, destinationPath string) error
	AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
}

// Dependencies enumerates external collaborators required by the initializer.
type Dependencies struct {
	RepositoryManager RepositoryInitializer
}

// Options configures target preparation.
type Options struct {
	TargetURL  string
	TargetPath string
	Resume     bool
}

// Initializer prepares the local target repository for a consolidation run.
type Initializer struct {
	repositoryManager RepositoryInitializer
}

// NewInitializer constructs an Initializer from the provided dependencies.
func NewInitializer(dependencies Dependencies) (*Initializer, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Initializer{repositoryManager: dependencies.RepositoryManager}, nil
}

// Prepare materializes the target repository at options.TargetPath.
//
// Fresh runs refuse to overwrite an existing path. Resume runs discard any
// local copy and clone the published origin state, making reruns idempotent.
func (initializer *Initializer) Prepare(executionContext context.Context, options Options) (TargetRepository, error) {
	trimmedTargetURL := strings.TrimSpace(options.TargetURL)
	if len(trimmedTargetURL) == 0 {
		return TargetRepository{}, ErrTargetURLRequired
	}
	trimmedTargetPath := strings.TrimSpace(options.TargetPath)
	if len(trimmedTargetPath) == 0 {
		return TargetRepository{}, ErrTargetPathRequired
	}
	targetEndpoint, classifyError := gitrepo.ClassifyRemoteURL(trimmedTargetURL)
	if classifyError != nil {
		return TargetRepository{}, InvalidTargetURLError{TargetURL: trimmedTargetURL, Cause: classifyError}
	}

	var prepareError error
	if options.Resume {
		prepareError = initializer.prepareResume(executionContext, trimmedTargetURL, trimmedTargetPath)
	} else {
		prepareError = initializer.prepareFresh(executionContext, trimmedTargetURL, trimmedTargetPath)
	}
	if prepareError != nil {
		return TargetRepository{}, prepareError
	}
	return TargetRepository{Path: trimmedTargetPath, OriginURL: trimmedTargetURL, Endpoint: targetEndpoint}, nil
}

func (initializer *Initializer) prepareFresh(executionContext context.Context, targetURL string, targetPath string) error {
	_, statError := os.Stat(targetPath)
	if statError == nil {
		return TargetAlreadyExistsError{TargetPath: targetPath}
	}
	if !errors.Is(statError, os.ErrNotExist) {
		return fmt.Errorf(targetInspectionErrorTemplateConstant, targetPath, statError)
	}

	if initializeError := initializer.repositoryManager.InitializeRepository(executionContext, targetPath, defaultInitialBranchNameConstant); initializeError != nil {
		return fmt.Errorf(initializeFailureTemplateConstant, targetPath, initializeError)
	}
	if remoteError := initializer.repositoryManager.AddRemote(executionContext, targetPath, originRemoteNameConstant, targetURL); remoteError != nil {
		return fmt.Errorf(registerOriginFailureTemplateConstant, targetURL, remoteError)
	}
	return nil
}

func (initializer *Initializer) prepareResume(executionContext context.Context, targetURL string, targetPath string) error {
	if removalError := os.RemoveAll(targetPath); removalError != nil {
		return fmt.Errorf(targetRemovalErrorTemplateConstant, targetPath, removalError)
	}

	if cloneError := initializer.repositoryManager.CloneRepository(executionContext, targetURL, targetPath); cloneError != nil {
		return CloneFailureError{RemoteURL: targetURL, TargetPath: targetPath, Cause: cloneError}
	}
	return nil
}
