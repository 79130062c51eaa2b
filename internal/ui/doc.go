// Package ui renders command lifecycle events for human-readable console runs.
package ui
