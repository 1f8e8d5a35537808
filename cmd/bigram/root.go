package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bigram/internal/analyze"
	"bigram/internal/config"
	"bigram/internal/logging"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var (
		configFlag   string
		formatFlag   string
		orderedFlag  bool
		logLevelFlag string
		quietFlag    bool
	)

	rootCmd := &cobra.Command{
		Use:   "bigram [flags] FILE",
		Short: "Generate a histogram of adjacent word pairs in a text file",
		Long: `bigram reads a UTF-8 text file line by line, extracts lowercase ASCII
word tokens, and counts every pair of adjacent tokens. The token stream is
continuous, so a pair may span a line break.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one file path, got %d arguments", analyze.ErrInvalidArguments, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if err := applyFlags(cfg, formatFlag, orderedFlag, logLevelFlag); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			path := args[0]
			out := cmd.OutOrStdout()
			if !quietFlag {
				fmt.Fprintf(out, "Generating bigram histogram for %s\n", path)
			}

			report, err := analyze.Run(cmd.Context(), path, analyze.Options{TrackOrder: cfg.Output.TrackOrder}, logger)
			if err != nil {
				return err
			}
			return renderReport(out, report, cfg.Output.Format)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: table, plain, or ordered")
	rootCmd.Flags().BoolVar(&orderedFlag, "ordered", false, "Dump bigrams in first-seen order (shorthand for --format ordered)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, or error")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress the banner line")

	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

// applyFlags layers command-line overrides onto the loaded config and
// re-validates the result.
func applyFlags(cfg *config.Config, format string, ordered bool, logLevel string) error {
	if value := strings.ToLower(strings.TrimSpace(format)); value != "" {
		cfg.Output.Format = value
	}
	if ordered {
		cfg.Output.Format = config.FormatOrdered
	}
	if cfg.Output.Format == config.FormatOrdered {
		cfg.Output.TrackOrder = true
	}
	if value := strings.ToLower(strings.TrimSpace(logLevel)); value != "" {
		cfg.Logging.Level = value
	}
	return cfg.Validate()
}
