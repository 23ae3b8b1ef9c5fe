// Package cli defines the command-line interface for arcadectl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KevinLozano-bot/arcadectl/internal/logging"
)

const (
	// defaultCatalogPath is the default path to the catalog definition file.
	defaultCatalogPath = "catalog.yaml"
	// defaultOutputFormat is the default report output format.
	defaultOutputFormat = "yaml"
)

// Options stores global CLI options shared between commands.
type Options struct {
	CatalogPath string
	Output      string
	LogLevel    logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		CatalogPath: defaultCatalogPath,
		Output:      defaultOutputFormat,
		LogLevel:    logging.LevelInfo,
	}

	envCfg := baseEnv{}
	if err := parseEnv(&envCfg); err != nil {
		return err
	}
	if envPresent("ARCADECTL_CATALOG") {
		rootOpts.CatalogPath = envCfg.CatalogPath
	}
	if envPresent("ARCADECTL_OUTPUT") {
		rootOpts.Output = envCfg.Output
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcadectl",
		Short: "arcadectl is a declarative arcade machine catalog tool",
		Long:  "arcadectl builds an in-memory catalog of configurable arcade machines from a catalog.yaml definition and answers structured searches over it.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			raw := cmd.Flag("log-level").Value.String()
			if !cmd.Flags().Changed("log-level") && envPresent("ARCADECTL_LOG_LEVEL") {
				raw = os.Getenv("ARCADECTL_LOG_LEVEL")
			}
			level := logging.ParseLevel(raw)
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.CatalogPath, "config", "c", opts.CatalogPath, "Path to catalog.yaml definition file")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Report output format (yaml, json)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCreateCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newShowCommand(opts),
		newTypesCommand(opts),
		newValidateCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
