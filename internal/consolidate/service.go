package consolidate

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/create-mono/internal/sources"
	"github.com/temirov/create-mono/internal/tags"
)

const (
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	historyRewriterMissingMessageConstant   = "history rewriter not configured"
	tagRenamerMissingMessageConstant        = "tag renamer not configured"
	reporterMissingMessageConstant          = "reporter not configured"
	targetPathRequiredMessageConstant       = "target repository path must be provided"
	noSourcesMessageConstant                = "no source repositories to consolidate"
	fetchFailureTemplateConstant            = "failed to fetch from source %q: %v"
	pushFailureTemplateConstant             = "failed to push to remote %q: %v"
	mergeConflictTemplateConstant           = "merge of %s/%s into the target conflicted: %v"
	registerRemoteFailureTemplateConstant   = "failed to register remote %q: %w"
	baselineCheckoutFailureTemplate         = "failed to check out %s baseline for %q: %w"
	branchListFailureTemplateConstant       = "failed to list branches for remote %q: %w"
	ancestryProbeFailureTemplateConstant    = "failed to probe ancestry of %s/%s: %w"
	branchProbeFailureTemplateConstant      = "failed to probe target branch %q: %w"
	branchCheckoutFailureTemplateConstant   = "failed to check out target branch %q: %w"
	branchCleanFailureTemplateConstant      = "failed to clean target branch %q: %w"
	branchRestoreFailureTemplateConstant    = "failed to restore published branch %q: %w"
	orphanCreationFailureTemplateConstant   = "failed to create orphan branch %q: %w"
	scratchBranchFailureTemplateConstant    = "failed to prepare scratch branch for %s/%s: %w"
	historyRewriteFailureTemplateConstant   = "failed to rewrite history for %s/%s: %w"
	scratchCleanupFailureTemplateConstant   = "failed to discard scratch branch %q: %w"
	masterBranchNameConstant                = "master"
	originRemoteNameConstant                = "origin"
	remoteReferencePrefixTemplateConstant   = "refs/remotes/%s/%s"
	rootCommitMessageTemplateConstant       = "Root commit for %s"
	mergeMessageTemplateConstant            = "Merge %s/%s into the monorepo"
	scratchBranchTemplateConstant           = "consolidate-scratch/%s/%s"
	mergeAbortFailureLogMessageConstant     = "failed to abort conflicted merge"
	logFieldRemoteNameConstant              = "remote_name"
	logFieldBranchNameConstant              = "branch_name"
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrHistoryRewriterNotConfigured indicates the history rewriter dependency was missing.
var ErrHistoryRewriterNotConfigured = errors.New(historyRewriterMissingMessageConstant)

// ErrTagRenamerNotConfigured indicates the tag renamer dependency was missing.
var ErrTagRenamerNotConfigured = errors.New(tagRenamerMissingMessageConstant)

// ErrReporterNotConfigured indicates the reporter dependency was missing.
var ErrReporterNotConfigured = errors.New(reporterMissingMessageConstant)

// ErrTargetPathRequired indicates the target path option was empty.
var ErrTargetPathRequired = errors.New(targetPathRequiredMessageConstant)

// ErrNoSourcesConfigured indicates the run has nothing to consolidate.
var ErrNoSourcesConfigured = errors.New(noSourcesMessageConstant)

// FetchFailureError reports a network or auth failure while fetching a source.
type FetchFailureError struct {
	RemoteName string
	Cause      error
}

// Error describes the fetch failure.
func (fetchError FetchFailureError) Error() string {
	return fmt.Sprintf(fetchFailureTemplateConstant, fetchError.RemoteName, fetchError.Cause)
}

// Unwrap exposes the underlying git failure.
func (fetchError FetchFailureError) Unwrap() error {
	return fetchError.Cause
}

// PushFailureError reports a network or auth failure while pushing to a remote.
type PushFailureError struct {
	RemoteName string
	Cause      error
}

// Error describes the push failure.
func (pushError PushFailureError) Error() string {
	return fmt.Sprintf(pushFailureTemplateConstant, pushError.RemoteName, pushError.Cause)
}

// Unwrap exposes the underlying git failure.
func (pushError PushFailureError) Unwrap() error {
	return pushError.Cause
}

// UnexpectedMergeConflictError reports rewritten source history colliding with
// existing target content; resolution requires manual intervention.
type UnexpectedMergeConflictError struct {
	RemoteName string
	BranchName string
	Cause      error
}

// Error describes the conflict.
func (conflictError UnexpectedMergeConflictError) Error() string {
	return fmt.Sprintf(mergeConflictTemplateConstant, conflictError.RemoteName, conflictError.BranchName, conflictError.Cause)
}

// Unwrap exposes the underlying git failure.
func (conflictError UnexpectedMergeConflictError) Unwrap() error {
	return conflictError.Cause
}

// RepositoryOperations is the repository management surface consumed by the service.
type RepositoryOperations interface {
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
	AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
	SetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
	FetchRemote(executionContext context.Context, repositoryPath string, remoteName string, includeTags bool) error
	CheckoutBranch(executionContext context.Context, repositoryPath string, branchName string) error
	CheckoutNewBranch(executionContext context.Context, repositoryPath string, branchName string, startReference string) error
	CheckoutOrphanBranch(executionContext context.Context, repositoryPath string, branchName string) error
	CheckoutDetached(executionContext context.Context, repositoryPath string, reference string) error
	ListRemoteBranches(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error)
	IsAncestor(executionContext context.Context, repositoryPath string, ancestorReference string, descendantReference string) (bool, error)
	BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error)
	RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error)
	DeleteLocalBranch(executionContext context.Context, repositoryPath string, branchName string) error
	DeleteRemoteBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	ResetHard(executionContext context.Context, repositoryPath string, reference string) error
	CleanWorkingTree(executionContext context.Context, repositoryPath string, includeIgnored bool) error
	EmptyIndex(executionContext context.Context, repositoryPath string) error
	CommitAllowEmpty(executionContext context.Context, repositoryPath string, commitMessage string) error
	MergeUnrelatedHistories(executionContext context.Context, repositoryPath string, reference string, mergeMessage string) error
	AbortMerge(executionContext context.Context, repositoryPath string) error
	PushAllBranches(executionContext context.Context, repositoryPath string, remoteName string) error
	PushAllTags(executionContext context.Context, repositoryPath string, remoteName string) error
}

// HistoryRewriter rewrites the checked-out branch history under a path prefix.
type HistoryRewriter interface {
	RewriteUnderPrefix(executionContext context.Context, repositoryPath string, pathPrefix string) error
}

// TagRenamer namespaces release-candidate tags for one source remote.
type TagRenamer interface {
	NamespaceSourceTags(executionContext context.Context, repositoryPath string, remoteName string) ([]tags.RenameOutcome, error)
}

// Dependencies enumerates external collaborators required by the service.
type Dependencies struct {
	Logger            *zap.Logger
	RepositoryManager RepositoryOperations
	HistoryRewriter   HistoryRewriter
	TagRenamer        TagRenamer
	Reporter          Reporter
}

// Options configures a consolidation run.
type Options struct {
	TargetPath             string
	Subdirectory           string
	PruneSourceBranches    bool
	NetworkTimeout         time.Duration
	ExcludedBranchPatterns []string
	Sources                []sources.SourceRepository
}

// PrunedBranch records a stale branch deletion on a source remote.
type PrunedBranch struct {
	RemoteName string
	BranchName string
}

// MergedBranch records one source branch folded into the target.
type MergedBranch struct {
	RemoteName      string
	BranchName      string
	CreatedAsOrphan bool
}

// Result captures the observable outcomes of a consolidation run.
type Result struct {
	PrunedBranches []PrunedBranch
	MergedBranches []MergedBranch
	RenamedTags    []tags.RenameOutcome
}

// Service consolidates source repositories into a monorepo.
type Service struct {
	logger            *zap.Logger
	repositoryManager RepositoryOperations
	historyRewriter   HistoryRewriter
	tagRenamer        TagRenamer
	reporter          Reporter
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.HistoryRewriter == nil {
		return nil, ErrHistoryRewriterNotConfigured
	}
	if dependencies.TagRenamer == nil {
		return nil, ErrTagRenamerNotConfigured
	}
	if dependencies.Reporter == nil {
		return nil, ErrReporterNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		logger:            logger,
		repositoryManager: dependencies.RepositoryManager,
		historyRewriter:   dependencies.HistoryRewriter,
		tagRenamer:        dependencies.TagRenamer,
		reporter:          dependencies.Reporter,
	}, nil
}

// Consolidate folds every configured source into the target repository and
// publishes the result to origin once all sources are processed.
func (service *Service) Consolidate(executionContext context.Context, options Options) (Result, error) {
	trimmedTargetPath := strings.TrimSpace(options.TargetPath)
	if len(trimmedTargetPath) == 0 {
		return Result{}, ErrTargetPathRequired
	}
	if len(options.Sources) == 0 {
		return Result{}, ErrNoSourcesConfigured
	}

	exclusionPolicy := NewBranchExclusionPolicy(options.ExcludedBranchPatterns)

	runResult := Result{}
	for _, sourceRepository := range options.Sources {
		service.reporter.MergingSource(sourceRepository.RemoteName)

		sourceResult, sourceError := service.consolidateSource(executionContext, trimmedTargetPath, options, exclusionPolicy, sourceRepository)
		if sourceError != nil {
			return runResult, sourceError
		}
		runResult.PrunedBranches = append(runResult.PrunedBranches, sourceResult.PrunedBranches...)
		runResult.MergedBranches = append(runResult.MergedBranches, sourceResult.MergedBranches...)
		runResult.RenamedTags = append(runResult.RenamedTags, sourceResult.RenamedTags...)
	}

	if publishError := service.publishTarget(executionContext, trimmedTargetPath, options.NetworkTimeout); publishError != nil {
		return runResult, publishError
	}
	service.reporter.TargetPublished()

	return runResult, nil
}

func (service *Service) consolidateSource(executionContext context.Context, targetPath string, options Options, exclusionPolicy BranchExclusionPolicy, sourceRepository sources.SourceRepository) (Result, error) {
	sourceResult := Result{}

	if registerError := service.ensureSourceRemote(executionContext, targetPath, sourceRepository); registerError != nil {
		return sourceResult, registerError
	}

	fetchContext, cancelFetch := networkContext(executionContext, options.NetworkTimeout)
	fetchError := service.repositoryManager.FetchRemote(fetchContext, targetPath, sourceRepository.RemoteName, true)
	cancelFetch()
	if fetchError != nil {
		return sourceResult, FetchFailureError{RemoteName: sourceRepository.RemoteName, Cause: fetchError}
	}

	baselineReference := remoteReference(sourceRepository.RemoteName, masterBranchNameConstant)
	if checkoutError := service.repositoryManager.CheckoutDetached(executionContext, targetPath, baselineReference); checkoutError != nil {
		return sourceResult, fmt.Errorf(baselineCheckoutFailureTemplate, masterBranchNameConstant, sourceRepository.RemoteName, checkoutError)
	}

	branchNames, listError := service.repositoryManager.ListRemoteBranches(executionContext, targetPath, sourceRepository.RemoteName)
	if listError != nil {
		return sourceResult, fmt.Errorf(branchListFailureTemplateConstant, sourceRepository.RemoteName, listError)
	}

	prunedBranchNames := map[string]struct{}{}
	if options.PruneSourceBranches {
		prunedBranches, pruneError := service.pruneMergedBranches(executionContext, targetPath, options.NetworkTimeout, sourceRepository, branchNames)
		if pruneError != nil {
			return sourceResult, pruneError
		}
		for _, prunedBranch := range prunedBranches {
			prunedBranchNames[prunedBranch.BranchName] = struct{}{}
		}
		sourceResult.PrunedBranches = prunedBranches
	}

	for _, branchName := range branchNames {
		if _, branchPruned := prunedBranchNames[branchName]; branchPruned {
			continue
		}
		if exclusionPolicy.Excludes(branchName) {
			service.logger.Debug("skipping excluded branch",
				zap.String(logFieldRemoteNameConstant, sourceRepository.RemoteName),
				zap.String(logFieldBranchNameConstant, branchName),
			)
			continue
		}

		mergedBranch, mergeError := service.consolidateBranch(executionContext, targetPath, options.Subdirectory, sourceRepository, branchName)
		if mergeError != nil {
			return sourceResult, mergeError
		}
		sourceResult.MergedBranches = append(sourceResult.MergedBranches, mergedBranch)
	}

	renamedTags, renameError := service.tagRenamer.NamespaceSourceTags(executionContext, targetPath, sourceRepository.RemoteName)
	if renameError != nil {
		return sourceResult, renameError
	}
	for _, renamedTag := range renamedTags {
		service.reporter.TagRenamed(renamedTag.OriginalName, renamedTag.RenamedName)
	}
	sourceResult.RenamedTags = renamedTags

	return sourceResult, nil
}

func (service *Service) ensureSourceRemote(executionContext context.Context, targetPath string, sourceRepository sources.SourceRepository) error {
	existingURL, getURLError := service.repositoryManager.GetRemoteURL(executionContext, targetPath, sourceRepository.RemoteName)
	if getURLError != nil {
		if addError := service.repositoryManager.AddRemote(executionContext, targetPath, sourceRepository.RemoteName, sourceRepository.RemoteURL); addError != nil {
			return fmt.Errorf(registerRemoteFailureTemplateConstant, sourceRepository.RemoteName, addError)
		}
		return nil
	}
	if existingURL != sourceRepository.RemoteURL {
		if setError := service.repositoryManager.SetRemoteURL(executionContext, targetPath, sourceRepository.RemoteName, sourceRepository.RemoteURL); setError != nil {
			return fmt.Errorf(registerRemoteFailureTemplateConstant, sourceRepository.RemoteName, setError)
		}
	}
	return nil
}

func (service *Service) pruneMergedBranches(executionContext context.Context, targetPath string, networkTimeout time.Duration, sourceRepository sources.SourceRepository, branchNames []string) ([]PrunedBranch, error) {
	masterReference := remoteReference(sourceRepository.RemoteName, masterBranchNameConstant)

	prunedBranches := []PrunedBranch{}
	for _, branchName := range branchNames {
		if branchName == masterBranchNameConstant {
			continue
		}

		branchReference := remoteReference(sourceRepository.RemoteName, branchName)
		fullyMerged, probeError := service.repositoryManager.IsAncestor(executionContext, targetPath, branchReference, masterReference)
		if probeError != nil {
			return prunedBranches, fmt.Errorf(ancestryProbeFailureTemplateConstant, sourceRepository.RemoteName, branchName, probeError)
		}
		if !fullyMerged {
			continue
		}

		deleteContext, cancelDelete := networkContext(executionContext, networkTimeout)
		deleteError := service.repositoryManager.DeleteRemoteBranch(deleteContext, targetPath, sourceRepository.RemoteName, branchName)
		cancelDelete()
		if deleteError != nil {
			return prunedBranches, PushFailureError{RemoteName: sourceRepository.RemoteName, Cause: deleteError}
		}

		service.reporter.BranchPruned(sourceRepository.RemoteName, branchName)
		prunedBranches = append(prunedBranches, PrunedBranch{RemoteName: sourceRepository.RemoteName, BranchName: branchName})
	}
	return prunedBranches, nil
}

func (service *Service) consolidateBranch(executionContext context.Context, targetPath string, subdirectory string, sourceRepository sources.SourceRepository, branchName string) (MergedBranch, error) {
	branchExists, probeError := service.repositoryManager.BranchExists(executionContext, targetPath, branchName)
	if probeError != nil {
		return MergedBranch{}, fmt.Errorf(branchProbeFailureTemplateConstant, branchName, probeError)
	}

	// A resumed run clones the published target, where every branch beyond
	// the default one exists only as a remote-tracking reference. Restoring
	// the local branch from origin keeps reruns converging on the published
	// history instead of bootstrapping a competing orphan root.
	publishedExists := false
	if !branchExists {
		publishedExists, probeError = service.repositoryManager.RemoteBranchExists(executionContext, targetPath, originRemoteNameConstant, branchName)
		if probeError != nil {
			return MergedBranch{}, fmt.Errorf(branchProbeFailureTemplateConstant, branchName, probeError)
		}
	}

	branchPresent := branchExists || publishedExists
	workingContext := NewWorkingContext(branchName, branchPresent)

	switch {
	case branchExists:
		if prepareError := service.prepareExistingBranch(executionContext, targetPath, branchName); prepareError != nil {
			return MergedBranch{}, prepareError
		}
		if transitionError := workingContext.MarkCleaned(); transitionError != nil {
			return MergedBranch{}, transitionError
		}
	case publishedExists:
		if restoreError := service.restorePublishedBranch(executionContext, targetPath, branchName); restoreError != nil {
			return MergedBranch{}, restoreError
		}
		if transitionError := workingContext.MarkCleaned(); transitionError != nil {
			return MergedBranch{}, transitionError
		}
	default:
		if bootstrapError := service.bootstrapOrphanBranch(executionContext, targetPath, branchName); bootstrapError != nil {
			return MergedBranch{}, bootstrapError
		}
		if transitionError := workingContext.MarkOrphanCreated(); transitionError != nil {
			return MergedBranch{}, transitionError
		}
	}

	scratchBranchName := fmt.Sprintf(scratchBranchTemplateConstant, sourceRepository.RemoteName, branchName)
	if scratchError := service.prepareScratchBranch(executionContext, targetPath, scratchBranchName, sourceRepository.RemoteName, branchName); scratchError != nil {
		return MergedBranch{}, scratchError
	}

	pathPrefix := path.Join(subdirectory, sourceRepository.RemoteName)
	if rewriteError := service.historyRewriter.RewriteUnderPrefix(executionContext, targetPath, pathPrefix); rewriteError != nil {
		return MergedBranch{}, fmt.Errorf(historyRewriteFailureTemplateConstant, sourceRepository.RemoteName, branchName, rewriteError)
	}
	if transitionError := workingContext.MarkHistoryRewritten(); transitionError != nil {
		return MergedBranch{}, transitionError
	}

	if checkoutError := service.repositoryManager.CheckoutBranch(executionContext, targetPath, branchName); checkoutError != nil {
		return MergedBranch{}, fmt.Errorf(branchCheckoutFailureTemplateConstant, branchName, checkoutError)
	}

	mergeMessage := fmt.Sprintf(mergeMessageTemplateConstant, sourceRepository.RemoteName, branchName)
	if mergeError := service.repositoryManager.MergeUnrelatedHistories(executionContext, targetPath, scratchBranchName, mergeMessage); mergeError != nil {
		if abortError := service.repositoryManager.AbortMerge(executionContext, targetPath); abortError != nil {
			service.logger.Warn(mergeAbortFailureLogMessageConstant,
				zap.String(logFieldRemoteNameConstant, sourceRepository.RemoteName),
				zap.String(logFieldBranchNameConstant, branchName),
				zap.Error(abortError),
			)
		}
		return MergedBranch{}, UnexpectedMergeConflictError{RemoteName: sourceRepository.RemoteName, BranchName: branchName, Cause: mergeError}
	}
	if transitionError := workingContext.MarkMerged(); transitionError != nil {
		return MergedBranch{}, transitionError
	}

	if cleanupError := service.repositoryManager.DeleteLocalBranch(executionContext, targetPath, scratchBranchName); cleanupError != nil {
		return MergedBranch{}, fmt.Errorf(scratchCleanupFailureTemplateConstant, scratchBranchName, cleanupError)
	}

	return MergedBranch{RemoteName: sourceRepository.RemoteName, BranchName: branchName, CreatedAsOrphan: !branchPresent}, nil
}

func (service *Service) prepareExistingBranch(executionContext context.Context, targetPath string, branchName string) error {
	if checkoutError := service.repositoryManager.CheckoutBranch(executionContext, targetPath, branchName); checkoutError != nil {
		return fmt.Errorf(branchCheckoutFailureTemplateConstant, branchName, checkoutError)
	}
	if resetError := service.repositoryManager.ResetHard(executionContext, targetPath, ""); resetError != nil {
		return fmt.Errorf(branchCleanFailureTemplateConstant, branchName, resetError)
	}
	if cleanError := service.repositoryManager.CleanWorkingTree(executionContext, targetPath, false); cleanError != nil {
		return fmt.Errorf(branchCleanFailureTemplateConstant, branchName, cleanError)
	}
	return nil
}

func (service *Service) restorePublishedBranch(executionContext context.Context, targetPath string, branchName string) error {
	startReference := remoteReference(originRemoteNameConstant, branchName)
	if checkoutError := service.repositoryManager.CheckoutNewBranch(executionContext, targetPath, branchName, startReference); checkoutError != nil {
		return fmt.Errorf(branchRestoreFailureTemplateConstant, branchName, checkoutError)
	}
	return nil
}

func (service *Service) bootstrapOrphanBranch(executionContext context.Context, targetPath string, branchName string) error {
	if checkoutError := service.repositoryManager.CheckoutOrphanBranch(executionContext, targetPath, branchName); checkoutError != nil {
		return fmt.Errorf(orphanCreationFailureTemplateConstant, branchName, checkoutError)
	}
	if indexError := service.repositoryManager.EmptyIndex(executionContext, targetPath); indexError != nil {
		return fmt.Errorf(orphanCreationFailureTemplateConstant, branchName, indexError)
	}
	if cleanError := service.repositoryManager.CleanWorkingTree(executionContext, targetPath, true); cleanError != nil {
		return fmt.Errorf(orphanCreationFailureTemplateConstant, branchName, cleanError)
	}
	rootCommitMessage := fmt.Sprintf(rootCommitMessageTemplateConstant, branchName)
	if commitError := service.repositoryManager.CommitAllowEmpty(executionContext, targetPath, rootCommitMessage); commitError != nil {
		return fmt.Errorf(orphanCreationFailureTemplateConstant, branchName, commitError)
	}
	return nil
}

func (service *Service) prepareScratchBranch(executionContext context.Context, targetPath string, scratchBranchName string, remoteName string, branchName string) error {
	scratchExists, probeError := service.repositoryManager.BranchExists(executionContext, targetPath, scratchBranchName)
	if probeError != nil {
		return fmt.Errorf(scratchBranchFailureTemplateConstant, remoteName, branchName, probeError)
	}
	if scratchExists {
		if deleteError := service.repositoryManager.DeleteLocalBranch(executionContext, targetPath, scratchBranchName); deleteError != nil {
			return fmt.Errorf(scratchBranchFailureTemplateConstant, remoteName, branchName, deleteError)
		}
	}
	if checkoutError := service.repositoryManager.CheckoutNewBranch(executionContext, targetPath, scratchBranchName, remoteReference(remoteName, branchName)); checkoutError != nil {
		return fmt.Errorf(scratchBranchFailureTemplateConstant, remoteName, branchName, checkoutError)
	}
	return nil
}

func (service *Service) publishTarget(executionContext context.Context, targetPath string, networkTimeout time.Duration) error {
	pushBranchesContext, cancelBranches := networkContext(executionContext, networkTimeout)
	pushBranchesError := service.repositoryManager.PushAllBranches(pushBranchesContext, targetPath, originRemoteNameConstant)
	cancelBranches()
	if pushBranchesError != nil {
		return PushFailureError{RemoteName: originRemoteNameConstant, Cause: pushBranchesError}
	}

	pushTagsContext, cancelTags := networkContext(executionContext, networkTimeout)
	pushTagsError := service.repositoryManager.PushAllTags(pushTagsContext, targetPath, originRemoteNameConstant)
	cancelTags()
	if pushTagsError != nil {
		return PushFailureError{RemoteName: originRemoteNameConstant, Cause: pushTagsError}
	}
	return nil
}

func networkContext(parentContext context.Context, networkTimeout time.Duration) (context.Context, context.CancelFunc) {
	if networkTimeout <= 0 {
		return parentContext, func() {}
	}
	return context.WithTimeout(parentContext, networkTimeout)
}

func remoteReference(remoteName string, branchName string) string {
	return fmt.Sprintf(remoteReferencePrefixTemplateConstant, remoteName, branchName)
}
