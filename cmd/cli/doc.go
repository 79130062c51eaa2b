// Package cli constructs the create-mono command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging primitives.
// It exposes helpers to build reusable application instances and to execute
// the consolidation command as a reusable library.
package cli
