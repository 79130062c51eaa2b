package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/create-mono/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant           = "git executor not configured"
	gitInitSubcommandConstant                   = "init"
	gitInitInitialBranchFlagConstant            = "--initial-branch"
	gitCloneSubcommandConstant                  = "clone"
	gitRemoteSubcommandConstant                 = "remote"
	gitRemoteAddActionConstant                  = "add"
	gitRemoteGetURLActionConstant               = "get-url"
	gitRemoteSetURLActionConstant               = "set-url"
	gitFetchSubcommandConstant                  = "fetch"
	gitFetchTagsFlagConstant                    = "--tags"
	gitCheckoutSubcommandConstant               = "checkout"
	gitCheckoutNewBranchFlagConstant            = "-b"
	gitCheckoutOrphanFlagConstant               = "--orphan"
	gitCheckoutDetachFlagConstant               = "--detach"
	gitBranchSubcommandConstant                 = "branch"
	gitBranchForceDeleteFlagConstant            = "-D"
	gitForEachRefSubcommandConstant             = "for-each-ref"
	gitForEachRefFormatFlagConstant             = "--format=%(refname)"
	gitRemoteReferencePrefixConstant            = "refs/remotes/"
	gitTagReferencePrefixConstant               = "refs/tags/"
	gitHeadReferencePrefixConstant              = "refs/heads/"
	gitLsRemoteSubcommandConstant               = "ls-remote"
	gitLsRemoteTagsFlagConstant                 = "--tags"
	gitPeeledTagSuffixConstant                  = "^{}"
	gitMergeBaseSubcommandConstant              = "merge-base"
	gitMergeBaseIsAncestorFlagConstant          = "--is-ancestor"
	gitMergeSubcommandConstant                  = "merge"
	gitMergeAllowUnrelatedFlagConstant          = "--allow-unrelated-histories"
	gitMergeMessageFlagConstant                 = "-m"
	gitMergeAbortFlagConstant                   = "--abort"
	gitResetSubcommandConstant                  = "reset"
	gitResetHardFlagConstant                    = "--hard"
	gitCleanSubcommandConstant                  = "clean"
	gitCleanForceDirectoriesFlagConstant        = "-fd"
	gitCleanForceDirectoriesIgnoredFlag         = "-fdx"
	gitReadTreeSubcommandConstant               = "read-tree"
	gitReadTreeEmptyFlagConstant                = "--empty"
	gitCommitSubcommandConstant                 = "commit"
	gitCommitAllowEmptyFlagConstant             = "--allow-empty"
	gitCommitMessageFlagConstant                = "-m"
	gitTagSubcommandConstant                    = "tag"
	gitTagDeleteFlagConstant                    = "-d"
	gitRevParseSubcommandConstant               = "rev-parse"
	gitRevParseVerifyFlagConstant               = "--verify"
	gitRevParseQuietFlagConstant                = "--quiet"
	gitCommitPeelSuffixConstant                 = "^{commit}"
	gitPushSubcommandConstant                   = "push"
	gitPushAllFlagConstant                      = "--all"
	gitPushTagsFlagConstant                     = "--tags"
	gitPushDeleteFlagConstant                   = "--delete"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
	lineSeparatorConstant                       = "\n"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor exposes the subset of shell execution used by repository operations.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RemoteTagReference pairs a tag name with the commit object it points at.
type RemoteTagReference struct {
	Name   string
	Commit string
}

// RepositoryManager performs git operations against local repositories.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// InitializeRepository creates an empty repository at repositoryPath with the requested initial branch.
func (manager *RepositoryManager) InitializeRepository(executionContext context.Context, repositoryPath string, initialBranchName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitInitSubcommandConstant, gitInitInitialBranchFlagConstant, initialBranchName, repositoryPath},
	})
	return executionError
}

// CloneRepository clones remoteURL into destinationPath.
func (manager *RepositoryManager) CloneRepository(executionContext context.Context, remoteURL string, destinationPath string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitCloneSubcommandConstant, remoteURL, destinationPath},
	})
	return executionError
}

// AddRemote registers remoteURL under remoteName.
func (manager *RepositoryManager) AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteAddActionConstant, remoteName, remoteURL},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// GetRemoteURL returns the URL configured for remoteName, or an error when the remote is absent.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	executionResult, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteGetURLActionConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// SetRemoteURL updates the URL configured for remoteName.
func (manager *RepositoryManager) SetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteSetURLActionConstant, remoteName, remoteURL},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// FetchRemote downloads branches from remoteName. Tags ride along when includeTags is set.
func (manager *RepositoryManager) FetchRemote(executionContext context.Context, repositoryPath string, remoteName string, includeTags bool) error {
	fetchArguments := []string{gitFetchSubcommandConstant, remoteName}
	if includeTags {
		fetchArguments = append(fetchArguments, gitFetchTagsFlagConstant)
	}
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        fetchArguments,
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CheckoutBranch switches the working tree to an existing local branch.
func (manager *RepositoryManager) CheckoutBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CheckoutNewBranch creates branchName at startReference and switches to it.
func (manager *RepositoryManager) CheckoutNewBranch(executionContext context.Context, repositoryPath string, branchName string, startReference string) error {
	checkoutArguments := []string{gitCheckoutSubcommandConstant, gitCheckoutNewBranchFlagConstant, branchName}
	if len(startReference) > 0 {
		checkoutArguments = append(checkoutArguments, startReference)
	}
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        checkoutArguments,
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CheckoutOrphanBranch switches to a new branch with no history.
func (manager *RepositoryManager) CheckoutOrphanBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, gitCheckoutOrphanFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CheckoutDetached places the working tree at reference without moving any branch.
func (manager *RepositoryManager) CheckoutDetached(executionContext context.Context, repositoryPath string, reference string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, gitCheckoutDetachFlagConstant, reference},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// DeleteLocalBranch removes branchName regardless of its merge status.
func (manager *RepositoryManager) DeleteLocalBranch(executionContext context.Context, repositoryPath string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, gitBranchForceDeleteFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// ListRemoteBranches returns the branch names tracked under refs/remotes/<remoteName>/.
func (manager *RepositoryManager) ListRemoteBranches(executionContext context.Context, repositoryPath string, remoteName string) ([]string, error) {
	remoteReferenceNamespace := gitRemoteReferencePrefixConstant + remoteName
	executionResult, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitForEachRefSubcommandConstant, gitForEachRefFormatFlagConstant, remoteReferenceNamespace},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	branchNames := []string{}
	referencePrefix := remoteReferenceNamespace + "/"
	for _, referenceLine := range strings.Split(executionResult.StandardOutput, lineSeparatorConstant) {
		trimmedReference := strings.TrimSpace(referenceLine)
		if len(trimmedReference) == 0 {
			continue
		}
		branchNames = append(branchNames, strings.TrimPrefix(trimmedReference, referencePrefix))
	}
	return branchNames, nil
}

// ListRemoteTags queries remoteName for its tags, skipping peeled annotated tag entries.
func (manager *RepositoryManager) ListRemoteTags(executionContext context.Context, repositoryPath string, remoteName string) ([]RemoteTagReference, error) {
	executionResult, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLsRemoteSubcommandConstant, gitLsRemoteTagsFlagConstant, remoteName},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	tagReferences := []RemoteTagReference{}
	for _, tagLine := range strings.Split(executionResult.StandardOutput, lineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(tagLine)
		if len(trimmedLine) == 0 {
			continue
		}
		lineFields := strings.Fields(trimmedLine)
		if len(lineFields) != 2 {
			continue
		}
		referenceName := lineFields[1]
		if strings.HasSuffix(referenceName, gitPeeledTagSuffixConstant) {
			continue
		}
		if !strings.HasPrefix(referenceName, gitTagReferencePrefixConstant) {
			continue
		}
		tagReferences = append(tagReferences, RemoteTagReference{
			Name:   strings.TrimPrefix(referenceName, gitTagReferencePrefixConstant),
			Commit: lineFields[0],
		})
	}
	return tagReferences, nil
}

// IsAncestor reports whether ancestorReference is reachable from descendantReference.
func (manager *RepositoryManager) IsAncestor(executionContext context.Context, repositoryPath string, ancestorReference string, descendantReference string) (bool, error) {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitMergeBaseSubcommandConstant, gitMergeBaseIsAncestorFlagConstant, ancestorReference, descendantReference},
		WorkingDirectory: repositoryPath,
	})
	if executionError == nil {
		return true, nil
	}
	if commandExitedWithStatusOne(executionError) {
		return false, nil
	}
	return false, executionError
}

// MergeUnrelatedHistories merges reference into the current branch, allowing disjoint ancestries.
func (manager *RepositoryManager) MergeUnrelatedHistories(executionContext context.Context, repositoryPath string, reference string, mergeMessage string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitMergeSubcommandConstant, gitMergeAllowUnrelatedFlagConstant, gitMergeMessageFlagConstant, mergeMessage, reference},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// AbortMerge cancels an in-progress merge and restores the pre-merge state.
func (manager *RepositoryManager) AbortMerge(executionContext context.Context, repositoryPath string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitMergeSubcommandConstant, gitMergeAbortFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// ResetHard discards staged and working tree changes, optionally moving to reference.
func (manager *RepositoryManager) ResetHard(executionContext context.Context, repositoryPath string, reference string) error {
	resetArguments := []string{gitResetSubcommandConstant, gitResetHardFlagConstant}
	if len(reference) > 0 {
		resetArguments = append(resetArguments, reference)
	}
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        resetArguments,
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CleanWorkingTree removes untracked files and directories. Ignored files are removed when includeIgnored is set.
func (manager *RepositoryManager) CleanWorkingTree(executionContext context.Context, repositoryPath string, includeIgnored bool) error {
	cleanFlag := gitCleanForceDirectoriesFlagConstant
	if includeIgnored {
		cleanFlag = gitCleanForceDirectoriesIgnoredFlag
	}
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCleanSubcommandConstant, cleanFlag},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// EmptyIndex clears the staging area without touching the working tree.
func (manager *RepositoryManager) EmptyIndex(executionContext context.Context, repositoryPath string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitReadTreeSubcommandConstant, gitReadTreeEmptyFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CommitAllowEmpty records a commit even when the index matches the parent tree.
func (manager *RepositoryManager) CommitAllowEmpty(executionContext context.Context, repositoryPath string, commitMessage string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitCommitAllowEmptyFlagConstant, gitCommitMessageFlagConstant, commitMessage},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateTag points tagName at targetReference.
func (manager *RepositoryManager) CreateTag(executionContext context.Context, repositoryPath string, tagName string, targetReference string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitTagSubcommandConstant, tagName, targetReference},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// DeleteTag removes the local tag tagName.
func (manager *RepositoryManager) DeleteTag(executionContext context.Context, repositoryPath string, tagName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitTagSubcommandConstant, gitTagDeleteFlagConstant, tagName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// TagExists reports whether tagName is present locally.
func (manager *RepositoryManager) TagExists(executionContext context.Context, repositoryPath string, tagName string) (bool, error) {
	return manager.referenceExists(executionContext, repositoryPath, gitTagReferencePrefixConstant+tagName)
}

// BranchExists reports whether a local branch named branchName is present.
func (manager *RepositoryManager) BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error) {
	return manager.referenceExists(executionContext, repositoryPath, gitHeadReferencePrefixConstant+branchName)
}

// RemoteBranchExists reports whether the remote-tracking branch remoteName/branchName is present.
func (manager *RepositoryManager) RemoteBranchExists(executionContext context.Context, repositoryPath string, remoteName string, branchName string) (bool, error) {
	return manager.referenceExists(executionContext, repositoryPath, gitRemoteReferencePrefixConstant+remoteName+"/"+branchName)
}

// ResolveCommit returns the commit hash a reference peels to.
func (manager *RepositoryManager) ResolveCommit(executionContext context.Context, repositoryPath string, reference string) (string, error) {
	executionResult, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, reference + gitCommitPeelSuffixConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// PushAllBranches publishes every local branch to remoteName.
func (manager *RepositoryManager) PushAllBranches(executionContext context.Context, repositoryPath string, remoteName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, remoteName, gitPushAllFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// PushAllTags publishes every local tag to remoteName.
func (manager *RepositoryManager) PushAllTags(executionContext context.Context, repositoryPath string, remoteName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, remoteName, gitPushTagsFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// DeleteRemoteBranch removes branchName on remoteName.
func (manager *RepositoryManager) DeleteRemoteBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, remoteName, gitPushDeleteFlagConstant, branchName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

func (manager *RepositoryManager) referenceExists(executionContext context.Context, repositoryPath string, fullReference string) (bool, error) {
	_, executionError := manager.executeGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitRevParseVerifyFlagConstant, gitRevParseQuietFlagConstant, fullReference},
		WorkingDirectory: repositoryPath,
	})
	if executionError == nil {
		return true, nil
	}
	if commandExitedWithStatusOne(executionError) {
		return false, nil
	}
	return false, executionError
}

func (manager *RepositoryManager) executeGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	if details.EnvironmentVariables == nil {
		details.EnvironmentVariables = map[string]string{}
	}
	details.EnvironmentVariables[gitTerminalPromptEnvironmentNameConstant] = gitTerminalPromptEnvironmentDisableConstant
	return manager.executor.ExecuteGit(executionContext, details)
}

func commandExitedWithStatusOne(executionError error) bool {
	var commandFailure execshell.CommandFailedError
	if !errors.As(executionError, &commandFailure) {
		return false
	}
	return commandFailure.Result.ExitCode == 1
}
