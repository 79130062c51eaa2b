// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for structured repository plumbing (remotes,
// branches, tags, merges, and pushes) along with remote URL parsing utilities
// consumed by the consolidation services.
package gitrepo
