package execshell

// CommandEventObserver receives lifecycle notifications for each git
// invocation the executor issues. Observers let alternate surfaces, such as
// the console progress logger, render invocations without coupling the
// executor to a presentation layer.
type CommandEventObserver interface {
	// CommandStarted fires immediately before the process is spawned.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires once the process has exited, successfully or not.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the process could not be started at all.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// discardingCommandEventObserver is the default observer; it drops every event.
type discardingCommandEventObserver struct{}

func (discardingCommandEventObserver) CommandStarted(ShellCommand) {}

func (discardingCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (discardingCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
