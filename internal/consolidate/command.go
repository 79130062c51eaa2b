package consolidate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/create-mono/internal/execshell"
	"github.com/temirov/create-mono/internal/gitrepo"
	"github.com/temirov/create-mono/internal/history"
	"github.com/temirov/create-mono/internal/sources"
	"github.com/temirov/create-mono/internal/tags"
	"github.com/temirov/create-mono/internal/target"
	"github.com/temirov/create-mono/internal/ui"
	"github.com/temirov/create-mono/internal/utils"
)

const (
	commandUseConstant                     = "create-mono <target-url> <target-name>"
	commandShortDescriptionConstant        = "Consolidate multiple repositories into a single monorepo"
	commandLongDescriptionConstant         = "create-mono reads a `<url> <name>` source list from standard input, rewrites every source's full history under its own subdirectory, merges same-named branches across sources, namespaces release-candidate tags, and publishes the consolidated branches and tags to the target remote."
	commandArgumentCountConstant           = 2
	subdirectoryFlagNameConstant           = "subdir"
	subdirectoryFlagUsageConstant          = "Directory prefixed to every source's path namespace"
	continueFlagNameConstant               = "continue"
	continueFlagUsageConstant              = "Resume a prior run by re-cloning the target instead of initializing it"
	pruneFlagNameConstant                  = "prune-source-branches"
	pruneFlagUsageConstant                 = "Delete source branches fully merged into the source master"
	targetURLRequiredMessageConstant       = "target repository url must be provided"
	targetNameRequiredMessageConstant      = "target repository name must be provided"
	sourceListParseErrorTemplateConstant   = "failed to parse source list: %w"
	repositoryManagerCreationErrorTemplate = "unable to construct repository manager: %w"
	historyRewriterCreationErrorTemplate   = "unable to construct history rewriter: %w"
	tagRenamerCreationErrorTemplate        = "unable to construct tag renamer: %w"
	targetInitializerCreationErrorTemplate = "unable to construct target initializer: %w"
	consolidationFailedTemplateConstant    = "consolidation failed: %w"
	consolidationCompletedMessageConstant  = "Consolidation completed"
	targetPreparedMessageConstant          = "Target repository prepared"
	logFieldMergedBranchCountConstant      = "merged_branches"
	logFieldPrunedBranchCountConstant      = "pruned_branches"
	logFieldRenamedTagCountConstant        = "renamed_tags"
	logFieldTargetPathConstant             = "target_path"
	logFieldTargetProtocolConstant         = "target_protocol"
	logFieldTargetHostConstant             = "target_host"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

type commandOptions struct {
	targetURL           string
	targetName          string
	subdirectory        string
	resume              bool
	pruneSourceBranches bool
	debugLoggingEnabled bool
}

// CommandBuilder assembles the create-mono Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     gitrepo.GitExecutor
	SourceListReader             io.Reader
	ProgressWriter               io.Writer
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() Configuration
}

// Build constructs the create-mono command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(commandArgumentCountConstant),
		RunE:          builder.runConsolidation,
	}

	command.Flags().String(subdirectoryFlagNameConstant, "", subdirectoryFlagUsageConstant)
	command.Flags().Bool(continueFlagNameConstant, false, continueFlagUsageConstant)
	command.Flags().Bool(pruneFlagNameConstant, true, pruneFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runConsolidation(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	options, optionsError := builder.parseOptions(command, arguments, configuration)
	if optionsError != nil {
		return optionsError
	}

	parsedSources, parseError := sources.ParseSourceList(builder.resolveSourceListReader())
	if parseError != nil {
		return fmt.Errorf(sourceListParseErrorTemplateConstant, parseError)
	}

	logger := builder.resolveLogger(options.debugLoggingEnabled)

	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return fmt.Errorf(repositoryManagerCreationErrorTemplate, managerError)
	}

	targetInitializer, initializerError := target.NewInitializer(target.Dependencies{RepositoryManager: repositoryManager})
	if initializerError != nil {
		return fmt.Errorf(targetInitializerCreationErrorTemplate, initializerError)
	}

	preparedTarget, prepareError := targetInitializer.Prepare(command.Context(), target.Options{
		TargetURL:  options.targetURL,
		TargetPath: filepath.Join(configuration.TempRoot, options.targetName),
		Resume:     options.resume,
	})
	if prepareError != nil {
		return prepareError
	}

	logger.Info(targetPreparedMessageConstant,
		zap.String(logFieldTargetPathConstant, preparedTarget.Path),
		zap.String(logFieldTargetProtocolConstant, string(preparedTarget.Endpoint.Protocol)),
		zap.String(logFieldTargetHostConstant, preparedTarget.Endpoint.Host),
	)

	historyRewriter, rewriterError := history.NewRewriter(history.Dependencies{GitExecutor: executor})
	if rewriterError != nil {
		return fmt.Errorf(historyRewriterCreationErrorTemplate, rewriterError)
	}

	tagRenamer, renamerError := tags.NewRenamer(tags.Dependencies{RepositoryManager: repositoryManager})
	if renamerError != nil {
		return fmt.Errorf(tagRenamerCreationErrorTemplate, renamerError)
	}

	consolidationService, serviceError := NewService(Dependencies{
		Logger:            logger,
		RepositoryManager: repositoryManager,
		HistoryRewriter:   historyRewriter,
		TagRenamer:        tagRenamer,
		Reporter:          NewWriterReporter(builder.resolveProgressWriter()),
	})
	if serviceError != nil {
		return serviceError
	}

	runResult, consolidationError := consolidationService.Consolidate(command.Context(), Options{
		TargetPath:             preparedTarget.Path,
		Subdirectory:           options.subdirectory,
		PruneSourceBranches:    options.pruneSourceBranches,
		NetworkTimeout:         configuration.NetworkTimeout,
		ExcludedBranchPatterns: configuration.ExcludedBranchPatterns,
		Sources:                parsedSources,
	})
	if consolidationError != nil {
		return fmt.Errorf(consolidationFailedTemplateConstant, consolidationError)
	}

	logger.Info(consolidationCompletedMessageConstant,
		zap.String(logFieldTargetPathConstant, preparedTarget.Path),
		zap.Int(logFieldMergedBranchCountConstant, len(runResult.MergedBranches)),
		zap.Int(logFieldPrunedBranchCountConstant, len(runResult.PrunedBranches)),
		zap.Int(logFieldRenamedTagCountConstant, len(runResult.RenamedTags)),
	)
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string, configuration Configuration) (commandOptions, error) {
	targetURL := strings.TrimSpace(arguments[0])
	if len(targetURL) == 0 {
		return commandOptions{}, errors.New(targetURLRequiredMessageConstant)
	}
	targetName := strings.TrimSpace(arguments[1])
	if len(targetName) == 0 {
		return commandOptions{}, errors.New(targetNameRequiredMessageConstant)
	}

	subdirectory := configuration.Subdirectory
	if command.Flags().Changed(subdirectoryFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(subdirectoryFlagNameConstant)
		subdirectory = strings.Trim(strings.TrimSpace(flagValue), "/")
	}

	resume, _ := command.Flags().GetBool(continueFlagNameConstant)

	pruneSourceBranches := configuration.PruneSourceBranches
	if command.Flags().Changed(pruneFlagNameConstant) {
		pruneSourceBranches, _ = command.Flags().GetBool(pruneFlagNameConstant)
	}

	debugEnabled := false
	contextAccessor := utils.NewCommandContextAccessor()
	if logLevel, available := contextAccessor.LogLevel(command.Context()); available {
		if strings.EqualFold(logLevel, string(utils.LogLevelDebug)) {
			debugEnabled = true
		}
	}

	return commandOptions{
		targetURL:           targetURL,
		targetName:          targetName,
		subdirectory:        subdirectory,
		resume:              resume,
		pruneSourceBranches: pruneSourceBranches,
		debugLoggingEnabled: debugEnabled,
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration().Sanitize()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger(enableDebug bool) *zap.Logger {
	var logger *zap.Logger
	if builder.LoggerProvider != nil {
		logger = builder.LoggerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if enableDebug {
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.DebugLevel))
	}
	return logger
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, humanReadableLogging)
	if creationError != nil {
		return nil, creationError
	}
	if humanReadableLogging {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}
	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveSourceListReader() io.Reader {
	if builder.SourceListReader != nil {
		return builder.SourceListReader
	}
	return os.Stdin
}

func (builder *CommandBuilder) resolveProgressWriter() io.Writer {
	if builder.ProgressWriter != nil {
		return builder.ProgressWriter
	}
	return os.Stdout
}
