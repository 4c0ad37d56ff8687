package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/concord/internal/extract"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Compare every pair of documents",
	Long: `Compare every pair among two or more documents, in the order given.

Files that are not text are skipped and listed in the result.

Examples:
  concord analyze handbook.md policy.txt faq.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, skipped, err := extract.LoadFiles(extract.PlainText{}, args)
		if err != nil {
			return err
		}

		result, err := analyzer.Analyze(cmd.Context(), docs)
		if err != nil {
			return err
		}
		result.Skipped = append(result.Skipped, skipped...)

		if summary {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "analysis %s: %d files, %d conflicts\n", result.ID, result.Files, result.Conflicts)
			for _, p := range result.Pairs {
				fmt.Fprintf(w, "%s vs %s: %d matches, %d conflicts\n",
					p.DocA, p.DocB, p.Report.MatchCount, len(p.Report.Conflicts))
			}
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), result)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
