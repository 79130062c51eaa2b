package consolidate_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/create-mono/internal/consolidate"
	"github.com/temirov/create-mono/internal/sources"
	"github.com/temirov/create-mono/internal/tags"
)

const (
	serviceTargetPathConstant  = "/tmp/monorepo"
	alphaRemoteNameConstant    = "alpha"
	alphaRemoteURLConstant     = "git@github.com:acme/alpha.git"
	scriptedFailureMessage     = "remote unavailable"
	missingRemoteFailureDetail = "no such remote"
)

type fakeRepositoryOperations struct {
	operationLog          []string
	remoteURLs            map[string]string
	remoteBranches        map[string][]string
	fullyMergedBranches   map[string]bool
	localBranches         map[string]bool
	deletedRemoteBranches []string
	fetchError            error
	mergeError            error
	pushBranchesError     error
}

func newFakeRepositoryOperations() *fakeRepositoryOperations {
	return &fakeRepositoryOperations{
		remoteURLs:          map[string]string{},
		remoteBranches:      map[string][]string{},
		fullyMergedBranches: map[string]bool{},
		localBranches:       map[string]bool{},
	}
}

func (fake *fakeRepositoryOperations) log(format string, formatArguments ...any) {
	fake.operationLog = append(fake.operationLog, fmt.Sprintf(format, formatArguments...))
}

func (fake *fakeRepositoryOperations) GetRemoteURL(_ context.Context, _ string, remoteName string) (string, error) {
	fake.log("remote-get-url %s", remoteName)
	remoteURL, remotePresent := fake.remoteURLs[remoteName]
	if !remotePresent {
		return "", errors.New(missingRemoteFailureDetail)
	}
	return remoteURL, nil
}

func (fake *fakeRepositoryOperations) AddRemote(_ context.Context, _ string, remoteName string, remoteURL string) error {
	fake.log("remote-add %s %s", remoteName, remoteURL)
	fake.remoteURLs[remoteName] = remoteURL
	return nil
}

func (fake *fakeRepositoryOperations) SetRemoteURL(_ context.Context, _ string, remoteName string, remoteURL string) error {
	fake.log("remote-set-url %s %s", remoteName, remoteURL)
	fake.remoteURLs[remoteName] = remoteURL
	return nil
}

func (fake *fakeRepositoryOperations) FetchRemote(_ context.Context, _ string, remoteName string, includeTags bool) error {
	fake.log("fetch %s tags=%t", remoteName, includeTags)
	return fake.fetchError
}

func (fake *fakeRepositoryOperations) CheckoutBranch(_ context.Context, _ string, branchName string) error {
	fake.log("checkout %s", branchName)
	return nil
}

func (fake *fakeRepositoryOperations) CheckoutNewBranch(_ context.Context, _ string, branchName string, startReference string) error {
	fake.log("checkout-new %s %s", branchName, startReference)
	fake.localBranches[branchName] = true
	return nil
}

func (fake *fakeRepositoryOperations) CheckoutOrphanBranch(_ context.Context, _ string, branchName string) error {
	fake.log("checkout-orphan %s", branchName)
	fake.localBranches[branchName] = true
	return nil
}

func (fake *fakeRepositoryOperations) CheckoutDetached(_ context.Context, _ string, reference string) error {
	fake.log("checkout-detach %s", reference)
	return nil
}

func (fake *fakeRepositoryOperations) ListRemoteBranches(_ context.Context, _ string, remoteName string) ([]string, error) {
	fake.log("list-branches %s", remoteName)
	return fake.remoteBranches[remoteName], nil
}

func (fake *fakeRepositoryOperations) IsAncestor(_ context.Context, _ string, ancestorReference string, descendantReference string) (bool, error) {
	fake.log("is-ancestor %s %s", ancestorReference, descendantReference)
	branchKey := strings.TrimPrefix(ancestorReference, "refs/remotes/")
	return fake.fullyMergedBranches[branchKey], nil
}

func (fake *fakeRepositoryOperations) BranchExists(_ context.Context, _ string, branchName string) (bool, error) {
	fake.log("branch-exists %s", branchName)
	return fake.localBranches[branchName], nil
}

func (fake *fakeRepositoryOperations) RemoteBranchExists(_ context.Context, _ string, remoteName string, branchName string) (bool, error) {
	fake.log("remote-branch-exists %s %s", remoteName, branchName)
	for _, trackedBranch := range fake.remoteBranches[remoteName] {
		if trackedBranch == branchName {
			return true, nil
		}
	}
	return false, nil
}

func (fake *fakeRepositoryOperations) DeleteLocalBranch(_ context.Context, _ string, branchName string) error {
	fake.log("branch-delete %s", branchName)
	delete(fake.localBranches, branchName)
	return nil
}

func (fake *fakeRepositoryOperations) DeleteRemoteBranch(_ context.Context, _ string, remoteName string, branchName string) error {
	fake.log("push-delete %s %s", remoteName, branchName)
	fake.deletedRemoteBranches = append(fake.deletedRemoteBranches, remoteName+"/"+branchName)
	return nil
}

func (fake *fakeRepositoryOperations) ResetHard(_ context.Context, _ string, reference string) error {
	fake.log("reset-hard %s", reference)
	return nil
}

func (fake *fakeRepositoryOperations) CleanWorkingTree(_ context.Context, _ string, includeIgnored bool) error {
	fake.log("clean ignored=%t", includeIgnored)
	return nil
}

func (fake *fakeRepositoryOperations) EmptyIndex(_ context.Context, _ string) error {
	fake.log("read-tree-empty")
	return nil
}

func (fake *fakeRepositoryOperations) CommitAllowEmpty(_ context.Context, _ string, commitMessage string) error {
	fake.log("commit %s", commitMessage)
	return nil
}

func (fake *fakeRepositoryOperations) MergeUnrelatedHistories(_ context.Context, _ string, reference string, _ string) error {
	fake.log("merge %s", reference)
	return fake.mergeError
}

func (fake *fakeRepositoryOperations) AbortMerge(_ context.Context, _ string) error {
	fake.log("merge-abort")
	return nil
}

func (fake *fakeRepositoryOperations) PushAllBranches(_ context.Context, _ string, remoteName string) error {
	fake.log("push-branches %s", remoteName)
	return fake.pushBranchesError
}

func (fake *fakeRepositoryOperations) PushAllTags(_ context.Context, _ string, remoteName string) error {
	fake.log("push-tags %s", remoteName)
	return nil
}

type fakeHistoryRewriter struct {
	rewrittenPrefixes []string
	rewriteError      error
}

func (fake *fakeHistoryRewriter) RewriteUnderPrefix(_ context.Context, _ string, pathPrefix string) error {
	fake.rewrittenPrefixes = append(fake.rewrittenPrefixes, pathPrefix)
	return fake.rewriteError
}

type fakeTagRenamer struct {
	outcomesByRemote map[string][]tags.RenameOutcome
	renameError      error
}

func (fake *fakeTagRenamer) NamespaceSourceTags(_ context.Context, _ string, remoteName string) ([]tags.RenameOutcome, error) {
	if fake.renameError != nil {
		return nil, fake.renameError
	}
	return fake.outcomesByRemote[remoteName], nil
}

type recordingReporter struct {
	events []string
}

func (reporter *recordingReporter) MergingSource(sourceName string) {
	reporter.events = append(reporter.events, "merging:"+sourceName)
}

func (reporter *recordingReporter) TagRenamed(originalName string, renamedName string) {
	reporter.events = append(reporter.events, "tag:"+originalName+"-->"+renamedName)
}

func (reporter *recordingReporter) BranchPruned(remoteName string, branchName string) {
	reporter.events = append(reporter.events, "pruned:"+remoteName+"/"+branchName)
}

func (reporter *recordingReporter) TargetPublished() {
	reporter.events = append(reporter.events, "published")
}

func newTestService(t *testing.T, repository *fakeRepositoryOperations, rewriter *fakeHistoryRewriter, renamer *fakeTagRenamer, reporter *recordingReporter) *consolidate.Service {
	t.Helper()
	service, creationError := consolidate.NewService(consolidate.Dependencies{
		RepositoryManager: repository,
		HistoryRewriter:   rewriter,
		TagRenamer:        renamer,
		Reporter:          reporter,
	})
	require.NoError(t, creationError)
	return service
}

func singleSourceOptions(pruneSourceBranches bool, subdirectory string) consolidate.Options {
	return consolidate.Options{
		TargetPath:             serviceTargetPathConstant,
		Subdirectory:           subdirectory,
		PruneSourceBranches:    pruneSourceBranches,
		ExcludedBranchPatterns: []string{"bazel-mig-"},
		Sources: []sources.SourceRepository{
			{RemoteURL: alphaRemoteURLConstant, RemoteName: alphaRemoteNameConstant},
		},
	}
}

func TestNewServiceValidatesDependencies(t *testing.T) {
	validDependencies := func() consolidate.Dependencies {
		return consolidate.Dependencies{
			RepositoryManager: newFakeRepositoryOperations(),
			HistoryRewriter:   &fakeHistoryRewriter{},
			TagRenamer:        &fakeTagRenamer{},
			Reporter:          &recordingReporter{},
		}
	}

	testCases := []struct {
		name          string
		mutate        func(dependencies *consolidate.Dependencies)
		expectedError error
	}{
		{
			name:          "missing_repository_manager",
			mutate:        func(dependencies *consolidate.Dependencies) { dependencies.RepositoryManager = nil },
			expectedError: consolidate.ErrRepositoryManagerNotConfigured,
		},
		{
			name:          "missing_history_rewriter",
			mutate:        func(dependencies *consolidate.Dependencies) { dependencies.HistoryRewriter = nil },
			expectedError: consolidate.ErrHistoryRewriterNotConfigured,
		},
		{
			name:          "missing_tag_renamer",
			mutate:        func(dependencies *consolidate.Dependencies) { dependencies.TagRenamer = nil },
			expectedError: consolidate.ErrTagRenamerNotConfigured,
		},
		{
			name:          "missing_reporter",
			mutate:        func(dependencies *consolidate.Dependencies) { dependencies.Reporter = nil },
			expectedError: consolidate.ErrReporterNotConfigured,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			dependencies := validDependencies()
			testCase.mutate(&dependencies)
			_, creationError := consolidate.NewService(dependencies)
			require.ErrorIs(testInstance, creationError, testCase.expectedError)
		})
	}
}

func TestServiceConsolidateValidatesOptions(t *testing.T) {
	service := newTestService(t, newFakeRepositoryOperations(), &fakeHistoryRewriter{}, &fakeTagRenamer{}, &recordingReporter{})

	_, missingPathError := service.Consolidate(context.Background(), consolidate.Options{
		Sources: []sources.SourceRepository{{RemoteURL: alphaRemoteURLConstant, RemoteName: alphaRemoteNameConstant}},
	})
	require.ErrorIs(t, missingPathError, consolidate.ErrTargetPathRequired)

	_, missingSourcesError := service.Consolidate(context.Background(), consolidate.Options{TargetPath: serviceTargetPathConstant})
	require.ErrorIs(t, missingSourcesError, consolidate.ErrNoSourcesConfigured)
}

func TestServiceConsolidatesSingleSource(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"master", "feature/login", "stale", "bazel-mig-temp"}
	fakeRepository.fullyMergedBranches["alpha/stale"] = true

	fakeRewriter := &fakeHistoryRewriter{}
	fakeRenamer := &fakeTagRenamer{outcomesByRemote: map[string][]tags.RenameOutcome{
		alphaRemoteNameConstant: {{OriginalName: "1.0-RC;.;5", RenamedName: "1.0-RC;alpha;5"}},
	}}
	reporter := &recordingReporter{}

	service := newTestService(t, fakeRepository, fakeRewriter, fakeRenamer, reporter)
	runResult, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, "code"))
	require.NoError(t, consolidationError)

	require.Equal(t, []consolidate.PrunedBranch{{RemoteName: alphaRemoteNameConstant, BranchName: "stale"}}, runResult.PrunedBranches)
	require.Equal(t, []consolidate.MergedBranch{
		{RemoteName: alphaRemoteNameConstant, BranchName: "master", CreatedAsOrphan: true},
		{RemoteName: alphaRemoteNameConstant, BranchName: "feature/login", CreatedAsOrphan: true},
	}, runResult.MergedBranches)
	require.Equal(t, []tags.RenameOutcome{{OriginalName: "1.0-RC;.;5", RenamedName: "1.0-RC;alpha;5"}}, runResult.RenamedTags)

	require.Equal(t, []string{"code/alpha", "code/alpha"}, fakeRewriter.rewrittenPrefixes)
	require.Equal(t, []string{"alpha/stale"}, fakeRepository.deletedRemoteBranches)
	require.Equal(t, []string{
		"merging:alpha",
		"pruned:alpha/stale",
		"tag:1.0-RC;.;5-->1.0-RC;alpha;5",
		"published",
	}, reporter.events)

	expectedOperationLog := []string{
		"remote-get-url alpha",
		"remote-add alpha " + alphaRemoteURLConstant,
		"fetch alpha tags=true",
		"checkout-detach refs/remotes/alpha/master",
		"list-branches alpha",
		"is-ancestor refs/remotes/alpha/feature/login refs/remotes/alpha/master",
		"is-ancestor refs/remotes/alpha/stale refs/remotes/alpha/master",
		"push-delete alpha stale",
		"is-ancestor refs/remotes/alpha/bazel-mig-temp refs/remotes/alpha/master",
		"branch-exists master",
		"remote-branch-exists origin master",
		"checkout-orphan master",
		"read-tree-empty",
		"clean ignored=true",
		"commit Root commit for master",
		"branch-exists consolidate-scratch/alpha/master",
		"checkout-new consolidate-scratch/alpha/master refs/remotes/alpha/master",
		"checkout master",
		"merge consolidate-scratch/alpha/master",
		"branch-delete consolidate-scratch/alpha/master",
		"branch-exists feature/login",
		"remote-branch-exists origin feature/login",
		"checkout-orphan feature/login",
		"read-tree-empty",
		"clean ignored=true",
		"commit Root commit for feature/login",
		"branch-exists consolidate-scratch/alpha/feature/login",
		"checkout-new consolidate-scratch/alpha/feature/login refs/remotes/alpha/feature/login",
		"checkout feature/login",
		"merge consolidate-scratch/alpha/feature/login",
		"branch-delete consolidate-scratch/alpha/feature/login",
		"push-branches origin",
		"push-tags origin",
	}
	require.Equal(t, expectedOperationLog, fakeRepository.operationLog)
}

func TestServiceCleansExistingTargetBranch(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"master"}
	fakeRepository.localBranches["master"] = true

	fakeRewriter := &fakeHistoryRewriter{}
	service := newTestService(t, fakeRepository, fakeRewriter, &fakeTagRenamer{}, &recordingReporter{})

	runResult, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, ""))
	require.NoError(t, consolidationError)
	require.Equal(t, []consolidate.MergedBranch{
		{RemoteName: alphaRemoteNameConstant, BranchName: "master", CreatedAsOrphan: false},
	}, runResult.MergedBranches)
	require.Equal(t, []string{"alpha"}, fakeRewriter.rewrittenPrefixes)

	require.Contains(t, fakeRepository.operationLog, "checkout master")
	require.Contains(t, fakeRepository.operationLog, "reset-hard ")
	require.Contains(t, fakeRepository.operationLog, "clean ignored=false")
	require.NotContains(t, fakeRepository.operationLog, "checkout-orphan master")
}

func TestServiceRestoresBranchPublishedByEarlierRun(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"feature/login"}
	fakeRepository.remoteBranches["origin"] = []string{"feature/login"}

	fakeRewriter := &fakeHistoryRewriter{}
	service := newTestService(t, fakeRepository, fakeRewriter, &fakeTagRenamer{}, &recordingReporter{})

	runResult, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, ""))
	require.NoError(t, consolidationError)
	require.Equal(t, []consolidate.MergedBranch{
		{RemoteName: alphaRemoteNameConstant, BranchName: "feature/login", CreatedAsOrphan: false},
	}, runResult.MergedBranches)

	require.Contains(t, fakeRepository.operationLog, "remote-branch-exists origin feature/login")
	require.Contains(t, fakeRepository.operationLog, "checkout-new feature/login refs/remotes/origin/feature/login")
	require.NotContains(t, fakeRepository.operationLog, "checkout-orphan feature/login")
	require.NotContains(t, fakeRepository.operationLog, "commit Root commit for feature/login")
}

func TestServiceSurfacesFetchFailure(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.fetchError = errors.New(scriptedFailureMessage)

	service := newTestService(t, fakeRepository, &fakeHistoryRewriter{}, &fakeTagRenamer{}, &recordingReporter{})

	_, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, ""))
	fetchFailure := consolidate.FetchFailureError{}
	require.ErrorAs(t, consolidationError, &fetchFailure)
	require.Equal(t, alphaRemoteNameConstant, fetchFailure.RemoteName)
	require.Contains(t, fetchFailure.Error(), scriptedFailureMessage)
}

func TestServiceSurfacesMergeConflict(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"master"}
	fakeRepository.mergeError = errors.New("CONFLICT (add/add)")

	service := newTestService(t, fakeRepository, &fakeHistoryRewriter{}, &fakeTagRenamer{}, &recordingReporter{})

	_, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, ""))
	conflictError := consolidate.UnexpectedMergeConflictError{}
	require.ErrorAs(t, consolidationError, &conflictError)
	require.Equal(t, alphaRemoteNameConstant, conflictError.RemoteName)
	require.Equal(t, "master", conflictError.BranchName)
	require.Contains(t, fakeRepository.operationLog, "merge-abort")
}

func TestServicePruningDisabledMergesStaleBranches(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"master", "stale"}
	fakeRepository.fullyMergedBranches["alpha/stale"] = true

	service := newTestService(t, fakeRepository, &fakeHistoryRewriter{}, &fakeTagRenamer{}, &recordingReporter{})

	runResult, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(false, ""))
	require.NoError(t, consolidationError)
	require.Empty(t, runResult.PrunedBranches)
	require.Empty(t, fakeRepository.deletedRemoteBranches)
	require.Equal(t, []consolidate.MergedBranch{
		{RemoteName: alphaRemoteNameConstant, BranchName: "master", CreatedAsOrphan: true},
		{RemoteName: alphaRemoteNameConstant, BranchName: "stale", CreatedAsOrphan: true},
	}, runResult.MergedBranches)
}

func TestServiceSurfacesPushFailure(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"master"}
	fakeRepository.pushBranchesError = errors.New(scriptedFailureMessage)

	reporter := &recordingReporter{}
	service := newTestService(t, fakeRepository, &fakeHistoryRewriter{}, &fakeTagRenamer{}, reporter)

	_, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, ""))
	pushFailure := consolidate.PushFailureError{}
	require.ErrorAs(t, consolidationError, &pushFailure)
	require.Equal(t, "origin", pushFailure.RemoteName)
	require.NotContains(t, reporter.events, "published")
}

func TestServiceReusesRegisteredRemote(t *testing.T) {
	fakeRepository := newFakeRepositoryOperations()
	fakeRepository.remoteURLs[alphaRemoteNameConstant] = alphaRemoteURLConstant
	fakeRepository.remoteBranches[alphaRemoteNameConstant] = []string{"master"}

	service := newTestService(t, fakeRepository, &fakeHistoryRewriter{}, &fakeTagRenamer{}, &recordingReporter{})

	_, consolidationError := service.Consolidate(context.Background(), singleSourceOptions(true, ""))
	require.NoError(t, consolidationError)
	require.NotContains(t, fakeRepository.operationLog, "remote-add alpha "+alphaRemoteURLConstant)
	require.NotContains(t, fakeRepository.operationLog, "remote-set-url alpha "+alphaRemoteURLConstant)
}
