package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	gitCommandNameConstant                    = "git"
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandFailedTemplateConstant             = "%s exited with code %d%s"
	commandExecutionFailedTemplateConstant    = "%s execution failed: %v"
	standardErrorDetailTemplateConstant       = ": %s"
	commandLabelSeparatorConstant             = " "
	logFieldCommandConstant                   = "command"
	logFieldArgumentsConstant                 = "arguments"
	logFieldWorkingDirectoryConstant          = "working_directory"
	logFieldExitCodeConstant                  = "exit_code"
	logFieldStandardErrorConstant             = "standard_error"
	commandStartedLogMessageConstant          = "external command started"
	commandCompletedLogMessageConstant        = "external command completed"
	commandFailedLogMessageConstant           = "external command failed"
)

// CommandName identifies a supported executable.
type CommandName string

// CommandGit names the git executable.
const CommandGit CommandName = CommandName(gitCommandNameConstant)

// CommandDetails describes a single invocation of an external command.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand couples a command name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner abstracts process execution for testability.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ErrLoggerNotConfigured indicates the executor was built without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates the executor was built without a runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including trimmed standard error output.
func (failure CommandFailedError) Error() string {
	standardErrorDetail := ""
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorDetail = fmt.Sprintf(standardErrorDetailTemplateConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedTemplateConstant, formatCommandLabel(failure.Command), failure.Result.ExitCode, standardErrorDetail)
}

// CommandExecutionError reports a command that could not be executed at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, formatCommandLabel(failure.Command), failure.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

func formatCommandLabel(command ShellCommand) string {
	labelParts := []string{string(command.Name)}
	labelParts = append(labelParts, command.Details.Arguments...)
	return strings.Join(labelParts, commandLabelSeparatorConstant)
}

// ShellExecutor runs external commands with logging and observer notifications.
type ShellExecutor struct {
	logger               *zap.Logger
	commandRunner        CommandRunner
	messageFormatter     CommandMessageFormatter
	humanReadableLogging bool
	eventObserver        CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor and validates its dependencies.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner, humanReadableLogging bool) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	return &ShellExecutor{
		logger:               logger,
		commandRunner:        commandRunner,
		messageFormatter:     CommandMessageFormatter{},
		humanReadableLogging: humanReadableLogging,
		eventObserver:        discardingCommandEventObserver{},
	}, nil
}

// SetCommandEventObserver replaces the lifecycle observer. Nil restores the no-op observer.
func (executor *ShellExecutor) SetCommandEventObserver(observer CommandEventObserver) {
	if observer == nil {
		executor.eventObserver = discardingCommandEventObserver{}
		return
	}
	executor.eventObserver = observer
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	command := ShellCommand{Name: CommandGit, Details: details}
	return executor.execute(executionContext, command)
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logCommandStarted(command)
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executionFailure := CommandExecutionError{Command: command, Cause: runError}
		executor.logExecutionFailure(command, runError)
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, executionFailure
	}

	executor.logCommandCompleted(command, executionResult)
	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	return executionResult, nil
}

func (executor *ShellExecutor) logCommandStarted(command ShellCommand) {
	if executor.humanReadableLogging {
		executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command))
		return
	}
	executor.logger.Debug(
		commandStartedLogMessageConstant,
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory),
	)
}

func (executor *ShellExecutor) logCommandCompleted(command ShellCommand, result ExecutionResult) {
	if result.ExitCode == 0 {
		if executor.humanReadableLogging {
			executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command))
			return
		}
		executor.logger.Debug(
			commandCompletedLogMessageConstant,
			zap.String(logFieldCommandConstant, string(command.Name)),
			zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
			zap.Int(logFieldExitCodeConstant, result.ExitCode),
		)
		return
	}

	if executor.humanReadableLogging {
		executor.logger.Warn(executor.messageFormatter.BuildFailureMessage(command, result))
		return
	}
	executor.logger.Warn(
		commandFailedLogMessageConstant,
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.Int(logFieldExitCodeConstant, result.ExitCode),
		zap.String(logFieldStandardErrorConstant, strings.TrimSpace(result.StandardError)),
	)
}

func (executor *ShellExecutor) logExecutionFailure(command ShellCommand, failure error) {
	if executor.humanReadableLogging {
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, failure))
		return
	}
	executor.logger.Error(
		commandFailedLogMessageConstant,
		zap.String(logFieldCommandConstant, string(command.Name)),
		zap.Strings(logFieldArgumentsConstant, command.Details.Arguments),
		zap.Error(failure),
	)
}
