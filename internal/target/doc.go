// Package target prepares the local monorepo repository that consolidation
// runs mutate, either by creating it fresh or by re-cloning prior progress.
package target
