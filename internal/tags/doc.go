// Package tags namespaces release-candidate tags with the owning source's
// remote name so consolidated tag sets stay collision free.
package tags
