// Package history rewrites a branch's full commit history so every tree path
// moves under a source-specific prefix while commit metadata stays intact.
package history
