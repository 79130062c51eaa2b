package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/create-mono/internal/utils"
)

const (
	contextConfigurationPathConstant = "/tmp/create-mono/config.yaml"
	contextLogLevelConstant          = "debug"
)

func TestCommandContextAccessorRoundTrips(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(accessor utils.CommandContextAccessor, parentContext context.Context) context.Context
		inspect func(testInstance *testing.T, accessor utils.CommandContextAccessor, executionContext context.Context)
	}{
		{
			name: "configuration_file_path",
			mutate: func(accessor utils.CommandContextAccessor, parentContext context.Context) context.Context {
				return accessor.WithConfigurationFilePath(parentContext, contextConfigurationPathConstant)
			},
			inspect: func(testInstance *testing.T, accessor utils.CommandContextAccessor, executionContext context.Context) {
				storedPath, pathAvailable := accessor.ConfigurationFilePath(executionContext)
				require.True(testInstance, pathAvailable)
				require.Equal(testInstance, contextConfigurationPathConstant, storedPath)
			},
		},
		{
			name: "log_level",
			mutate: func(accessor utils.CommandContextAccessor, parentContext context.Context) context.Context {
				return accessor.WithLogLevel(parentContext, contextLogLevelConstant)
			},
			inspect: func(testInstance *testing.T, accessor utils.CommandContextAccessor, executionContext context.Context) {
				storedLevel, levelAvailable := accessor.LogLevel(executionContext)
				require.True(testInstance, levelAvailable)
				require.Equal(testInstance, contextLogLevelConstant, storedLevel)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(testInstance *testing.T) {
			accessor := utils.NewCommandContextAccessor()
			executionContext := testCase.mutate(accessor, context.Background())
			testCase.inspect(testInstance, accessor, executionContext)
		})
	}
}

func TestCommandContextAccessorHandlesMissingValues(t *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, pathAvailable := accessor.ConfigurationFilePath(context.Background())
	require.False(t, pathAvailable)

	_, levelAvailable := accessor.LogLevel(nil)
	require.False(t, levelAvailable)
}
