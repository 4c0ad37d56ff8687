package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agenthands/concord/internal/config"
	"github.com/agenthands/concord/internal/core"
	"github.com/agenthands/concord/internal/core/analysis"
	"github.com/agenthands/concord/internal/extract"
	"github.com/agenthands/concord/internal/logging"
)

var (
	configPath string
	logLevel   string
	summary    bool

	comparator *core.Comparator
	analyzer   *analysis.Analyzer
)

var rootCmd = &cobra.Command{
	Use:   "concord",
	Short: "Find conflicting and unique statements across documents",
	Long: `concord compares text documents sentence by sentence.

Sentences that are nearly identical count as matches, similar ones are reported
as conflicts with a word-level diff, and the rest are unique to their document.
Reports are printed as JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		_ = godotenv.Load()

		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		if err := cfg.ApplyEnv(); err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		// Keep stdout for the report
		if err := logging.Configure(logging.Log, os.Stderr, cfg.Log.Level, "text"); err != nil {
			return err
		}

		comparator = core.NewComparator(cfg.Comparator.Options())
		analyzer = analysis.NewAnalyzer(comparator, logging.Log)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&summary, "summary", "s", false, "print counts instead of the full report")
}

func loadDocuments(paths []string) ([]string, error) {
	docs, skipped, err := extract.LoadFiles(extract.PlainText{}, paths)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		return nil, fmt.Errorf("unsupported file type: %v", skipped)
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}
	return texts, nil
}
