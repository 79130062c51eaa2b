// Package sources parses and validates the list of repositories feeding a
// monorepo consolidation run.
package sources
