package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	flagPrefixConstant                      = "-"
)

const (
	gitCloneSubcommandNameConstant        = "clone"
	gitInitSubcommandNameConstant         = "init"
	gitFetchSubcommandNameConstant        = "fetch"
	gitCheckoutSubcommandNameConstant     = "checkout"
	gitOrphanFlagConstant                 = "--orphan"
	gitBranchSubcommandNameConstant       = "branch"
	gitDeleteFlagConstant                 = "--delete"
	gitForceDeleteFlagConstant            = "-D"
	gitMergeSubcommandNameConstant        = "merge"
	gitTagSubcommandNameConstant          = "tag"
	gitTagDeleteFlagConstant              = "-d"
	gitPushSubcommandNameConstant         = "push"
	gitFilterBranchSubcommandNameConstant = "filter-branch"
	gitFetchAllRemotesLabelConstant       = "all remotes"
)

const (
	gitCloneStartTemplateConstant                 = "Cloning %s"
	gitCloneSuccessTemplateConstant               = "Cloned %s"
	gitCloneFailureTemplateConstant               = "Failed to clone %s (exit code %d%s)"
	gitCloneExecutionFailureTemplateConstant      = "Unable to clone %s: %s"
	gitInitStartTemplateConstant                  = "Initializing repository at %s"
	gitInitSuccessTemplateConstant                = "Initialized repository at %s"
	gitInitFailureTemplateConstant                = "Failed to initialize repository at %s (exit code %d%s)"
	gitInitExecutionFailureTemplateConstant       = "Unable to initialize repository at %s: %s"
	gitFetchStartTemplateConstant                 = "Fetching from %s in %s"
	gitFetchSuccessTemplateConstant               = "Fetched from %s in %s"
	gitFetchFailureTemplateConstant               = "Failed to fetch from %s in %s (exit code %d%s)"
	gitFetchExecutionFailureTemplateConstant      = "Unable to fetch from %s in %s: %s"
	gitCheckoutStartTemplateConstant              = "Switching %s to %s"
	gitCheckoutSuccessTemplateConstant            = "%s now on %s"
	gitCheckoutFailureTemplateConstant            = "Failed to switch %s to %s (exit code %d%s)"
	gitCheckoutExecutionFailureTemplateConstant   = "Unable to switch %s to %s: %s"
	gitOrphanCheckoutStartTemplateConstant        = "Creating orphan branch %s in %s"
	gitOrphanCheckoutSuccessTemplateConstant      = "Created orphan branch %s in %s"
	gitBranchDeletionStartTemplateConstant        = "Removing local branch %s in %s"
	gitBranchDeletionSuccessTemplateConstant      = "Removed local branch %s in %s"
	gitBranchDeletionFailureTemplateConstant      = "Failed to remove local branch %s in %s (exit code %d%s)"
	gitBranchDeletionExecutionFailureConstant     = "Unable to remove local branch %s in %s: %s"
	gitBranchCreationStartTemplateConstant        = "Creating branch %s in %s"
	gitBranchCreationSuccessTemplateConstant      = "Created branch %s in %s"
	gitBranchCreationFailureTemplateConstant      = "Failed to create branch %s in %s (exit code %d%s)"
	gitBranchCreationExecutionFailureConstant     = "Unable to create branch %s in %s: %s"
	gitMergeStartTemplateConstant                 = "Merging %s in %s"
	gitMergeSuccessTemplateConstant               = "Merged %s in %s"
	gitMergeFailureTemplateConstant               = "Failed to merge %s in %s (exit code %d%s)"
	gitMergeExecutionFailureTemplateConstant      = "Unable to merge %s in %s: %s"
	gitTagCreationStartTemplateConstant           = "Creating tag %s in %s"
	gitTagCreationSuccessTemplateConstant         = "Created tag %s in %s"
	gitTagCreationFailureTemplateConstant         = "Failed to create tag %s in %s (exit code %d%s)"
	gitTagCreationExecutionFailureConstant        = "Unable to create tag %s in %s: %s"
	gitTagDeletionStartTemplateConstant           = "Removing tag %s in %s"
	gitTagDeletionSuccessTemplateConstant         = "Removed tag %s in %s"
	gitTagDeletionFailureTemplateConstant         = "Failed to remove tag %s in %s (exit code %d%s)"
	gitTagDeletionExecutionFailureConstant        = "Unable to remove tag %s in %s: %s"
	gitPushStartTemplateConstant                  = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant                = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant                = "Failed to push %s to %s from %s (exit code %d%s)"
	gitPushExecutionFailureTemplateConstant       = "Unable to push %s to %s from %s: %s"
	gitPushDeletionStartTemplateConstant          = "Deleting remote branch %s from %s in %s"
	gitPushDeletionSuccessTemplateConstant        = "Deleted remote branch %s from %s in %s"
	gitPushDeletionFailureTemplateConstant        = "Failed to delete remote branch %s from %s in %s (exit code %d%s)"
	gitPushDeletionExecutionFailureConstant       = "Unable to delete remote branch %s from %s in %s: %s"
	gitFilterBranchStartTemplateConstant          = "Rewriting history of %s in %s"
	gitFilterBranchSuccessTemplateConstant        = "Rewrote history of %s in %s"
	gitFilterBranchFailureTemplateConstant        = "Failed to rewrite history of %s in %s (exit code %d%s)"
	gitFilterBranchExecutionFailureConstant       = "Unable to rewrite history of %s in %s: %s"
	gitFilterBranchFallbackReferenceLabelConstant = "HEAD"
	gitPushFallbackRemoteLabelConstant            = "unknown"
	gitPushFallbackReferenceSpecificationConstant = "all refs"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitCloneSubcommandNameConstant:
		return formatter.describeGitCloneMessage(command, result, failure, stage)
	case gitInitSubcommandNameConstant:
		return formatter.describeGitInitMessage(command, result, failure, stage)
	case gitFetchSubcommandNameConstant:
		return formatter.describeGitFetchMessage(command, result, failure, stage)
	case gitCheckoutSubcommandNameConstant:
		return formatter.describeGitCheckoutMessage(command, result, failure, stage)
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, failure, stage)
	case gitMergeSubcommandNameConstant:
		return formatter.describeGitMergeMessage(command, result, failure, stage)
	case gitTagSubcommandNameConstant:
		return formatter.describeGitTagMessage(command, result, failure, stage)
	case gitPushSubcommandNameConstant:
		return formatter.describeGitPushMessage(command, result, failure, stage)
	case gitFilterBranchSubcommandNameConstant:
		return formatter.describeGitFilterBranchMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitCloneMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	cloneSource := formatter.ensureValue(formatter.firstNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCloneStartTemplateConstant, cloneSource)
	case messageStageSuccess:
		return fmt.Sprintf(gitCloneSuccessTemplateConstant, cloneSource)
	case messageStageFailure:
		return fmt.Sprintf(gitCloneFailureTemplateConstant, cloneSource, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitCloneExecutionFailureTemplateConstant, cloneSource, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitInitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	initTarget := formatter.firstNonFlagArgument(command.Details.Arguments[1:])
	if len(initTarget) == 0 {
		initTarget = formatter.describeWorkingDirectory(command)
	}
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitInitStartTemplateConstant, initTarget)
	case messageStageSuccess:
		return fmt.Sprintf(gitInitSuccessTemplateConstant, initTarget)
	case messageStageFailure:
		return fmt.Sprintf(gitInitFailureTemplateConstant, initTarget, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitInitExecutionFailureTemplateConstant, initTarget, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitFetchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.firstNonFlagArgument(command.Details.Arguments[1:])
	if len(remoteName) == 0 {
		remoteName = gitFetchAllRemotesLabelConstant
	}
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFetchStartTemplateConstant, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFetchSuccessTemplateConstant, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFetchFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitFetchExecutionFailureTemplateConstant, remoteName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitCheckoutMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitOrphanFlagConstant) {
		branchName := formatter.ensureValue(formatter.lastNonFlagArgument(arguments[1:]))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitOrphanCheckoutStartTemplateConstant, branchName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitOrphanCheckoutSuccessTemplateConstant, branchName, workingDirectory)
		}
	}

	destination := formatter.ensureValue(formatter.lastNonFlagArgument(arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, destination)
	case messageStageSuccess:
		return fmt.Sprintf(gitCheckoutSuccessTemplateConstant, workingDirectory, destination)
	case messageStageFailure:
		return fmt.Sprintf(gitCheckoutFailureTemplateConstant, workingDirectory, destination, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitCheckoutExecutionFailureTemplateConstant, workingDirectory, destination, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	branchName := formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:]))
	isDeletion := containsArgument(arguments, gitDeleteFlagConstant) || containsArgument(arguments, gitForceDeleteFlagConstant)

	if isDeletion {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitBranchDeletionStartTemplateConstant, branchName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitBranchDeletionSuccessTemplateConstant, branchName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitBranchDeletionFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitBranchDeletionExecutionFailureConstant, branchName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitBranchCreationStartTemplateConstant, branchName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitBranchCreationSuccessTemplateConstant, branchName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitBranchCreationFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitBranchCreationExecutionFailureConstant, branchName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMergeMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	mergeSource := formatter.ensureValue(formatter.lastNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitMergeStartTemplateConstant, mergeSource, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitMergeSuccessTemplateConstant, mergeSource, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitMergeFailureTemplateConstant, mergeSource, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitMergeExecutionFailureTemplateConstant, mergeSource, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitTagMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	tagName := formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:]))
	isDeletion := containsArgument(arguments, gitTagDeleteFlagConstant)

	if isDeletion {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitTagDeletionStartTemplateConstant, tagName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitTagDeletionSuccessTemplateConstant, tagName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitTagDeletionFailureTemplateConstant, tagName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitTagDeletionExecutionFailureConstant, tagName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitTagCreationStartTemplateConstant, tagName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitTagCreationSuccessTemplateConstant, tagName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitTagCreationFailureTemplateConstant, tagName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitTagCreationExecutionFailureConstant, tagName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitPushMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.firstNonFlagArgument(arguments[1:])
	if len(remoteName) == 0 {
		remoteName = gitPushFallbackRemoteLabelConstant
	}
	deletionTarget := formatter.flagValue(arguments, gitDeleteFlagConstant)

	if len(deletionTarget) > 0 {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitPushDeletionStartTemplateConstant, deletionTarget, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitPushDeletionSuccessTemplateConstant, deletionTarget, remoteName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitPushDeletionFailureTemplateConstant, deletionTarget, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(gitPushDeletionExecutionFailureConstant, deletionTarget, remoteName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	referenceSpecification := formatter.secondNonFlagArgument(arguments[1:])
	if len(referenceSpecification) == 0 {
		referenceSpecification = gitPushFallbackReferenceSpecificationConstant
	}
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitPushStartTemplateConstant, referenceSpecification, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitPushSuccessTemplateConstant, referenceSpecification, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitPushFailureTemplateConstant, referenceSpecification, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitPushExecutionFailureTemplateConstant, referenceSpecification, remoteName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitFilterBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	rewrittenReference := formatter.lastNonFlagArgument(command.Details.Arguments[1:])
	if len(rewrittenReference) == 0 {
		rewrittenReference = gitFilterBranchFallbackReferenceLabelConstant
	}
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFilterBranchStartTemplateConstant, rewrittenReference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFilterBranchSuccessTemplateConstant, rewrittenReference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFilterBranchFailureTemplateConstant, rewrittenReference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitFilterBranchExecutionFailureConstant, rewrittenReference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) secondNonFlagArgument(arguments []string) string {
	seenFirst := false
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		if !seenFirst {
			seenFirst = true
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) lastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index >= 0; index-- {
		trimmed := strings.TrimSpace(arguments[index])
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) flagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
