// Package consolidate orchestrates merging multiple source repositories into
// a single monorepo while preserving per-file history, merging same-named
// branches, pruning stale source branches, and namespacing release tags.
package consolidate
