package gitrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/create-mono/internal/execshell"
	"github.com/temirov/create-mono/internal/gitrepo"
)

const (
	repositoryPathConstant       = "/tmp/monorepo"
	sourceRemoteNameConstant     = "alpha"
	lsRemoteTagsOutputConstant   = "1111111111111111111111111111111111111111\trefs/tags/v1.0.0\n" + "2222222222222222222222222222222222222222\trefs/tags/RC;.;42\n" + "3333333333333333333333333333333333333333\trefs/tags/RC;.;42^{}\n" + "4444444444444444444444444444444444444444\trefs/heads/master\n"
	forEachRefOutputConstant     = "refs/remotes/alpha/master\nrefs/remotes/alpha/feature/login\n\n"
	terminalPromptVariableName   = "GIT_TERMINAL_PROMPT"
	terminalPromptDisabledValue  = "0"
	ancestorReferenceConstant    = "refs/remotes/alpha/feature/login"
	descendantReferenceConstant  = "refs/remotes/alpha/master"
	probedTagNameConstant        = "RC;alpha;42"
	genericFailureOutputConstant = "fatal: not a git repository"
)

type scriptedGitExecutor struct {
	recordedDetails []execshell.CommandDetails
	results         []execshell.ExecutionResult
	errorsToReturn  []error
}

func (executor *scriptedGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	invocationIndex := len(executor.recordedDetails)
	executor.recordedDetails = append(executor.recordedDetails, details)

	var scriptedResult execshell.ExecutionResult
	if invocationIndex < len(executor.results) {
		scriptedResult = executor.results[invocationIndex]
	}
	var scriptedError error
	if invocationIndex < len(executor.errorsToReturn) {
		scriptedError = executor.errorsToReturn[invocationIndex]
	}
	return scriptedResult, scriptedError
}

func exitStatusError(exitCode int) error {
	return execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: execshell.CommandGit},
		Result:  execshell.ExecutionResult{StandardError: genericFailureOutputConstant, ExitCode: exitCode},
	}
}

func TestNewRepositoryManagerRequiresExecutor(t *testing.T) {
	_, creationError := gitrepo.NewRepositoryManager(nil)
	require.ErrorIs(t, creationError, gitrepo.ErrGitExecutorNotConfigured)
}

func TestRepositoryManagerBuildsExpectedArguments(t *testing.T) {
	testCases := []struct {
		name                     string
		invoke                   func(manager *gitrepo.RepositoryManager, executionContext context.Context) error
		expectedArguments        []string
		expectedWorkingDirectory string
	}{
		{
			name: "initialize_repository",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.InitializeRepository(executionContext, repositoryPathConstant, "master")
			},
			expectedArguments: []string{"init", "--initial-branch", "master", repositoryPathConstant},
		},
		{
			name: "fetch_with_tags",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.FetchRemote(executionContext, repositoryPathConstant, sourceRemoteNameConstant, true)
			},
			expectedArguments:        []string{"fetch", sourceRemoteNameConstant, "--tags"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "fetch_without_tags",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.FetchRemote(executionContext, repositoryPathConstant, sourceRemoteNameConstant, false)
			},
			expectedArguments:        []string{"fetch", sourceRemoteNameConstant},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "orphan_checkout",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.CheckoutOrphanBranch(executionContext, repositoryPathConstant, "develop")
			},
			expectedArguments:        []string{"checkout", "--orphan", "develop"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "detached_checkout",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.CheckoutDetached(executionContext, repositoryPathConstant, descendantReferenceConstant)
			},
			expectedArguments:        []string{"checkout", "--detach", descendantReferenceConstant},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "merge_unrelated_histories",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.MergeUnrelatedHistories(executionContext, repositoryPathConstant, descendantReferenceConstant, "Merge alpha master")
			},
			expectedArguments:        []string{"merge", "--allow-unrelated-histories", "-m", "Merge alpha master", descendantReferenceConstant},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "merge_abort",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.AbortMerge(executionContext, repositoryPathConstant)
			},
			expectedArguments:        []string{"merge", "--abort"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "delete_remote_branch",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.DeleteRemoteBranch(executionContext, repositoryPathConstant, sourceRemoteNameConstant, "feature/login")
			},
			expectedArguments:        []string{"push", sourceRemoteNameConstant, "--delete", "feature/login"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "push_all_branches",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.PushAllBranches(executionContext, repositoryPathConstant, "origin")
			},
			expectedArguments:        []string{"push", "origin", "--all"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "push_all_tags",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.PushAllTags(executionContext, repositoryPathConstant, "origin")
			},
			expectedArguments:        []string{"push", "origin", "--tags"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "empty_index",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.EmptyIndex(executionContext, repositoryPathConstant)
			},
			expectedArguments:        []string{"read-tree", "--empty"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "commit_allow_empty",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.CommitAllowEmpty(executionContext, repositoryPathConstant, "Root commit for develop")
			},
			expectedArguments:        []string{"commit", "--allow-empty", "-m", "Root commit for develop"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "tag_creation",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.CreateTag(executionContext, repositoryPathConstant, probedTagNameConstant, "RC;.;42")
			},
			expectedArguments:        []string{"tag", probedTagNameConstant, "RC;.;42"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
		{
			name: "tag_deletion",
			invoke: func(manager *gitrepo.RepositoryManager, executionContext context.Context) error {
				return manager.DeleteTag(executionContext, repositoryPathConstant, "RC;.;42")
			},
			expectedArguments:        []string{"tag", "-d", "RC;.;42"},
			expectedWorkingDirectory: repositoryPathConstant,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			scriptedExecutor := &scriptedGitExecutor{}
			repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
			require.NoError(testInstance, creationError)

			invocationError := testCase.invoke(repositoryManager, context.Background())
			require.NoError(testInstance, invocationError)
			require.Len(testInstance, scriptedExecutor.recordedDetails, 1)

			recordedDetails := scriptedExecutor.recordedDetails[0]
			require.Equal(testInstance, testCase.expectedArguments, recordedDetails.Arguments)
			require.Equal(testInstance, testCase.expectedWorkingDirectory, recordedDetails.WorkingDirectory)
			require.Equal(testInstance, terminalPromptDisabledValue, recordedDetails.EnvironmentVariables[terminalPromptVariableName])
		})
	}
}

func TestRepositoryManagerListRemoteBranches(t *testing.T) {
	scriptedExecutor := &scriptedGitExecutor{
		results: []execshell.ExecutionResult{{StandardOutput: forEachRefOutputConstant}},
	}
	repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
	require.NoError(t, creationError)

	branchNames, listError := repositoryManager.ListRemoteBranches(context.Background(), repositoryPathConstant, sourceRemoteNameConstant)
	require.NoError(t, listError)
	require.Equal(t, []string{"master", "feature/login"}, branchNames)
	require.Equal(t, []string{"for-each-ref", "--format=%(refname)", "refs/remotes/alpha"}, scriptedExecutor.recordedDetails[0].Arguments)
}

func TestRepositoryManagerListRemoteTagsSkipsPeeledEntries(t *testing.T) {
	scriptedExecutor := &scriptedGitExecutor{
		results: []execshell.ExecutionResult{{StandardOutput: lsRemoteTagsOutputConstant}},
	}
	repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
	require.NoError(t, creationError)

	tagReferences, listError := repositoryManager.ListRemoteTags(context.Background(), repositoryPathConstant, sourceRemoteNameConstant)
	require.NoError(t, listError)
	require.Equal(t, []gitrepo.RemoteTagReference{
		{Name: "v1.0.0", Commit: "1111111111111111111111111111111111111111"},
		{Name: "RC;.;42", Commit: "2222222222222222222222222222222222222222"},
	}, tagReferences)
}

func TestRepositoryManagerIsAncestor(t *testing.T) {
	testCases := []struct {
		name             string
		scriptedError    error
		expectedAncestry bool
		expectError      bool
	}{
		{name: "ancestor_confirmed", scriptedError: nil, expectedAncestry: true},
		{name: "ancestor_rejected", scriptedError: exitStatusError(1), expectedAncestry: false},
		{name: "probe_failure", scriptedError: exitStatusError(128), expectError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			scriptedExecutor := &scriptedGitExecutor{errorsToReturn: []error{testCase.scriptedError}}
			repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
			require.NoError(testInstance, creationError)

			isAncestor, probeError := repositoryManager.IsAncestor(context.Background(), repositoryPathConstant, ancestorReferenceConstant, descendantReferenceConstant)
			if testCase.expectError {
				require.Error(testInstance, probeError)
				return
			}
			require.NoError(testInstance, probeError)
			require.Equal(testInstance, testCase.expectedAncestry, isAncestor)
		})
	}
}

func TestRepositoryManagerTagExists(t *testing.T) {
	testCases := []struct {
		name          string
		scriptedError error
		expectedExist bool
	}{
		{name: "tag_present", scriptedError: nil, expectedExist: true},
		{name: "tag_absent", scriptedError: exitStatusError(1), expectedExist: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			scriptedExecutor := &scriptedGitExecutor{errorsToReturn: []error{testCase.scriptedError}}
			repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
			require.NoError(testInstance, creationError)

			tagExists, probeError := repositoryManager.TagExists(context.Background(), repositoryPathConstant, probedTagNameConstant)
			require.NoError(testInstance, probeError)
			require.Equal(testInstance, testCase.expectedExist, tagExists)
			require.Equal(testInstance, []string{"rev-parse", "--verify", "--quiet", "refs/tags/" + probedTagNameConstant}, scriptedExecutor.recordedDetails[0].Arguments)
		})
	}
}

func TestRepositoryManagerRemoteBranchExists(t *testing.T) {
	testCases := []struct {
		name          string
		scriptedError error
		expectedExist bool
	}{
		{name: "tracking_reference_present", scriptedError: nil, expectedExist: true},
		{name: "tracking_reference_absent", scriptedError: exitStatusError(1), expectedExist: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			scriptedExecutor := &scriptedGitExecutor{errorsToReturn: []error{testCase.scriptedError}}
			repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
			require.NoError(testInstance, creationError)

			branchExists, probeError := repositoryManager.RemoteBranchExists(context.Background(), repositoryPathConstant, "origin", "feature/login")
			require.NoError(testInstance, probeError)
			require.Equal(testInstance, testCase.expectedExist, branchExists)
			require.Equal(testInstance, []string{"rev-parse", "--verify", "--quiet", "refs/remotes/origin/feature/login"}, scriptedExecutor.recordedDetails[0].Arguments)
		})
	}
}

func TestRepositoryManagerResolveCommitTrimsOutput(t *testing.T) {
	scriptedExecutor := &scriptedGitExecutor{
		results: []execshell.ExecutionResult{{StandardOutput: "5555555555555555555555555555555555555555\n"}},
	}
	repositoryManager, creationError := gitrepo.NewRepositoryManager(scriptedExecutor)
	require.NoError(t, creationError)

	commitHash, resolveError := repositoryManager.ResolveCommit(context.Background(), repositoryPathConstant, "refs/tags/v1.0.0")
	require.NoError(t, resolveError)
	require.Equal(t, "5555555555555555555555555555555555555555", commitHash)
	require.Equal(t, []string{"rev-parse", "refs/tags/v1.0.0^{commit}"}, scriptedExecutor.recordedDetails[0].Arguments)
}
