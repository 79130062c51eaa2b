package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/create-mono/internal/execshell"
	"github.com/temirov/create-mono/internal/gitrepo"
)

const (
	gitExecutorMissingMessageConstant        = "git executor not configured"
	pathPrefixRequiredMessageConstant        = "path prefix must be provided"
	invalidPathPrefixTemplateConstant        = "path prefix %q contains characters the rewrite script cannot escape"
	rewriteFailureTemplateConstant           = "failed to rewrite history under %q: %w"
	gitFilterBranchSubcommandConstant        = "filter-branch"
	gitFilterBranchForceFlagConstant         = "-f"
	gitFilterBranchIndexFilterFlagConstant   = "--index-filter"
	gitHeadReferenceConstant                 = "HEAD"
	filterBranchSquelchEnvironmentName       = "FILTER_BRANCH_SQUELCH_WARNING"
	filterBranchSquelchEnvironmentValue      = "1"
	pathPrefixTrailingSeparatorConstant      = "/"
	scriptSeparatorCharacterConstant         = ","
	scriptQuoteCharacterConstant             = `"`
	scriptReplacementCharacterConstant       = "&"
	scriptEscapeCharacterConstant            = `\`
	indexFilterScriptTemplateConstant        = `git ls-files -s | sed "s,\t\"*,&%s," | GIT_INDEX_FILE=$GIT_INDEX_FILE.new git update-index --index-info && mv "$GIT_INDEX_FILE.new" "$GIT_INDEX_FILE"`
	terminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	terminalPromptEnvironmentDisableConstant = "0"
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrPathPrefixRequired indicates an empty rewrite prefix.
var ErrPathPrefixRequired = errors.New(pathPrefixRequiredMessageConstant)

// InvalidPathPrefixError reports a prefix that cannot be embedded in the rewrite script.
type InvalidPathPrefixError struct {
	PathPrefix string
}

// Error describes the rejected prefix.
func (prefixError InvalidPathPrefixError) Error() string {
	return fmt.Sprintf(invalidPathPrefixTemplateConstant, prefixError.PathPrefix)
}

// Dependencies enumerates external collaborators required by the rewriter.
type Dependencies struct {
	GitExecutor gitrepo.GitExecutor
}

// Rewriter moves the currently checked-out branch's history under a path prefix.
type Rewriter struct {
	executor gitrepo.GitExecutor
}

// NewRewriter constructs a Rewriter from the provided dependencies.
func NewRewriter(dependencies Dependencies) (*Rewriter, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &Rewriter{executor: dependencies.GitExecutor}, nil
}

// RewriteUnderPrefix rewrites every commit reachable from HEAD so all tree
// paths gain pathPrefix. Parent linkage, authorship, timestamps, and messages
// survive the rewrite; only tree content and derived commit identities change.
func (rewriter *Rewriter) RewriteUnderPrefix(executionContext context.Context, repositoryPath string, pathPrefix string) error {
	normalizedPrefix := strings.TrimSpace(pathPrefix)
	if len(normalizedPrefix) == 0 {
		return ErrPathPrefixRequired
	}
	if !strings.HasSuffix(normalizedPrefix, pathPrefixTrailingSeparatorConstant) {
		normalizedPrefix += pathPrefixTrailingSeparatorConstant
	}
	// The prefix lands in the replacement side of the sed expression, where
	// "&" re-inserts the match and "\" starts an escape, silently corrupting
	// every rewritten path instead of failing.
	if strings.ContainsAny(normalizedPrefix, scriptSeparatorCharacterConstant+scriptQuoteCharacterConstant+scriptReplacementCharacterConstant+scriptEscapeCharacterConstant) {
		return InvalidPathPrefixError{PathPrefix: normalizedPrefix}
	}

	indexFilterScript := fmt.Sprintf(indexFilterScriptTemplateConstant, normalizedPrefix)
	_, executionError := rewriter.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitFilterBranchSubcommandConstant, gitFilterBranchForceFlagConstant, gitFilterBranchIndexFilterFlagConstant, indexFilterScript, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			filterBranchSquelchEnvironmentName:    filterBranchSquelchEnvironmentValue,
			terminalPromptEnvironmentNameConstant: terminalPromptEnvironmentDisableConstant,
		},
	})
	if executionError != nil {
		return fmt.Errorf(rewriteFailureTemplateConstant, normalizedPrefix, executionError)
	}
	return nil
}
