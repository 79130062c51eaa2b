package consolidate

import "strings"

// BranchExclusionPolicy decides which source branches never reach the target.
type BranchExclusionPolicy struct {
	excludedSubstrings []string
}

// NewBranchExclusionPolicy builds a policy from configured substring patterns.
// Blank patterns are dropped so they cannot exclude every branch.
func NewBranchExclusionPolicy(excludedSubstrings []string) BranchExclusionPolicy {
	retainedSubstrings := make([]string, 0, len(excludedSubstrings))
	for _, candidateSubstring := range excludedSubstrings {
		trimmedSubstring := strings.TrimSpace(candidateSubstring)
		if len(trimmedSubstring) == 0 {
			continue
		}
		retainedSubstrings = append(retainedSubstrings, trimmedSubstring)
	}
	return BranchExclusionPolicy{excludedSubstrings: retainedSubstrings}
}

// Excludes reports whether branchName matches any configured pattern.
func (policy BranchExclusionPolicy) Excludes(branchName string) bool {
	for _, excludedSubstring := range policy.excludedSubstrings {
		if strings.Contains(branchName, excludedSubstring) {
			return true
		}
	}
	return false
}
