package consolidate_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/create-mono/internal/consolidate"
)

func TestDefaultConfiguration(t *testing.T) {
	defaultConfiguration := consolidate.DefaultConfiguration()
	require.Equal(t, 300*time.Second, defaultConfiguration.NetworkTimeout)
	require.True(t, defaultConfiguration.PruneSourceBranches)
	require.Equal(t, []string{"bazel-mig-"}, defaultConfiguration.ExcludedBranchPatterns)
}

func TestConfigurationSanitize(t *testing.T) {
	testCases := []struct {
		name                   string
		configuration          consolidate.Configuration
		expectedSubdirectory   string
		expectedTempRoot       string
		expectedTimeout        time.Duration
		expectedBranchPatterns []string
	}{
		{
			name:                   "empty_configuration_gains_defaults",
			configuration:          consolidate.Configuration{},
			expectedTempRoot:       os.TempDir(),
			expectedTimeout:        300 * time.Second,
			expectedBranchPatterns: []string{"bazel-mig-"},
		},
		{
			name: "configured_values_survive",
			configuration: consolidate.Configuration{
				Subdirectory:           " code/ ",
				TempRoot:               "/tmp//scratch/",
				NetworkTimeout:         45 * time.Second,
				PruneSourceBranches:    true,
				ExcludedBranchPatterns: []string{"wip-"},
			},
			expectedSubdirectory:   "code",
			expectedTempRoot:       "/tmp/scratch",
			expectedTimeout:        45 * time.Second,
			expectedBranchPatterns: []string{"wip-"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			sanitizedConfiguration := testCase.configuration.Sanitize()
			require.Equal(testInstance, testCase.expectedSubdirectory, sanitizedConfiguration.Subdirectory)
			require.Equal(testInstance, testCase.expectedTempRoot, sanitizedConfiguration.TempRoot)
			require.Equal(testInstance, testCase.expectedTimeout, sanitizedConfiguration.NetworkTimeout)
			require.Equal(testInstance, testCase.expectedBranchPatterns, sanitizedConfiguration.ExcludedBranchPatterns)
		})
	}
}
