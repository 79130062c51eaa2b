// Package execshell provides a typed wrapper around external command
// execution. It exposes a ShellExecutor that runs git with structured
// logging, lifecycle observer notifications, and typed failure values.
package execshell
