package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const environmentAssignmentTemplateConstant = "%s=%s"

// OSCommandRunner executes git invocations through os/exec.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run starts the command, captures both output streams, and maps non-zero
// exits into an ExecutionResult instead of an error so callers can probe
// exit codes.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executable := exec.CommandContext(executionContext, string(command.Name), command.Details.Arguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		executable.Dir = command.Details.WorkingDirectory
	}
	if len(command.Details.EnvironmentVariables) > 0 {
		executable.Env = buildProcessEnvironment(command.Details.EnvironmentVariables)
	}

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	executable.Stdout = &standardOutputBuffer
	executable.Stderr = &standardErrorBuffer
	if len(command.Details.StandardInput) > 0 {
		executable.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	runError := executable.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if !errors.As(runError, &exitError) {
			return ExecutionResult{}, runError
		}
		return ExecutionResult{
			StandardOutput: standardOutputBuffer.String(),
			StandardError:  standardErrorBuffer.String(),
			ExitCode:       exitError.ExitCode(),
		}, nil
	}

	return ExecutionResult{
		StandardOutput: standardOutputBuffer.String(),
		StandardError:  standardErrorBuffer.String(),
	}, nil
}

// buildProcessEnvironment layers command-specific variables over the parent
// process environment so settings like GIT_TERMINAL_PROMPT reach git without
// losing PATH or HOME.
func buildProcessEnvironment(environmentVariables map[string]string) []string {
	mergedEnvironment := append([]string{}, os.Environ()...)
	for environmentKey, environmentValue := range environmentVariables {
		mergedEnvironment = append(mergedEnvironment, fmt.Sprintf(environmentAssignmentTemplateConstant, environmentKey, environmentValue))
	}
	return mergedEnvironment
}
