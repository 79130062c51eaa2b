package consolidate

import (
	"os"
	"strings"
	"time"

	pathutils "github.com/temirov/create-mono/internal/utils/path"
)

const (
	defaultNetworkTimeoutConstant        = 300 * time.Second
	defaultExcludedBranchPatternConstant = "bazel-mig-"

	subdirectoryConfigKeyConstant           = "subdirectory"
	tempRootConfigKeyConstant               = "temp_root"
	networkTimeoutConfigKeyConstant         = "network_timeout"
	pruneSourceBranchesConfigKeyConstant    = "prune_source_branches"
	excludedBranchPatternsConfigKeyConstant = "excluded_branch_patterns"
	configurationKeySeparatorConstant       = "."
)

// Configuration captures tunable settings for consolidation runs.
type Configuration struct {
	Subdirectory           string        `mapstructure:"subdirectory"`
	TempRoot               string        `mapstructure:"temp_root"`
	NetworkTimeout         time.Duration `mapstructure:"network_timeout"`
	PruneSourceBranches    bool          `mapstructure:"prune_source_branches"`
	ExcludedBranchPatterns []string      `mapstructure:"excluded_branch_patterns"`
}

// DefaultConfiguration returns the settings applied before file and flag overrides.
func DefaultConfiguration() Configuration {
	return Configuration{
		NetworkTimeout:         defaultNetworkTimeoutConstant,
		PruneSourceBranches:    true,
		ExcludedBranchPatterns: []string{defaultExcludedBranchPatternConstant},
	}
}

// DefaultConfigurationValues exposes the default settings keyed under configurationKeyPrefix
// for registration with the configuration loader.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaultConfiguration := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + subdirectoryConfigKeyConstant:           defaultConfiguration.Subdirectory,
		configurationKeyPrefix + configurationKeySeparatorConstant + tempRootConfigKeyConstant:               defaultConfiguration.TempRoot,
		configurationKeyPrefix + configurationKeySeparatorConstant + networkTimeoutConfigKeyConstant:         defaultConfiguration.NetworkTimeout,
		configurationKeyPrefix + configurationKeySeparatorConstant + pruneSourceBranchesConfigKeyConstant:    defaultConfiguration.PruneSourceBranches,
		configurationKeyPrefix + configurationKeySeparatorConstant + excludedBranchPatternsConfigKeyConstant: defaultConfiguration.ExcludedBranchPatterns,
	}
}

// Sanitize normalizes configured values and fills unset fields with defaults.
func (configuration Configuration) Sanitize() Configuration {
	sanitizer := pathutils.NewWorkspacePathSanitizer()

	sanitizedConfiguration := configuration
	sanitizedConfiguration.Subdirectory = strings.Trim(strings.TrimSpace(configuration.Subdirectory), "/")
	sanitizedConfiguration.TempRoot = sanitizer.Sanitize(configuration.TempRoot)
	if len(sanitizedConfiguration.TempRoot) == 0 {
		sanitizedConfiguration.TempRoot = os.TempDir()
	}
	if sanitizedConfiguration.NetworkTimeout <= 0 {
		sanitizedConfiguration.NetworkTimeout = defaultNetworkTimeoutConstant
	}
	if len(sanitizedConfiguration.ExcludedBranchPatterns) == 0 {
		sanitizedConfiguration.ExcludedBranchPatterns = []string{defaultExcludedBranchPatternConstant}
	}
	return sanitizedConfiguration
}
