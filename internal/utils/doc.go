// Package utils provides shared helpers for configuration loading, logger
// construction, command context propagation, and buffered output flushing.
package utils
