package consolidate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/create-mono/internal/consolidate"
)

func TestBranchExclusionPolicy(t *testing.T) {
	testCases := []struct {
		name             string
		excludedPatterns []string
		branchName       string
		expectedExcluded bool
	}{
		{
			name:             "default_pattern_matches_substring",
			excludedPatterns: []string{"bazel-mig-"},
			branchName:       "bazel-mig-temp",
			expectedExcluded: true,
		},
		{
			name:             "pattern_matches_mid_name",
			excludedPatterns: []string{"bazel-mig-"},
			branchName:       "feature/bazel-mig-cleanup",
			expectedExcluded: true,
		},
		{
			name:             "unrelated_branch_passes",
			excludedPatterns: []string{"bazel-mig-"},
			branchName:       "feature/login",
			expectedExcluded: false,
		},
		{
			name:             "blank_patterns_are_dropped",
			excludedPatterns: []string{"   ", ""},
			branchName:       "feature/login",
			expectedExcluded: false,
		},
		{
			name:             "multiple_patterns",
			excludedPatterns: []string{"bazel-mig-", "wip-"},
			branchName:       "wip-spike",
			expectedExcluded: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			exclusionPolicy := consolidate.NewBranchExclusionPolicy(testCase.excludedPatterns)
			require.Equal(testInstance, testCase.expectedExcluded, exclusionPolicy.Excludes(testCase.branchName))
		})
	}
}
