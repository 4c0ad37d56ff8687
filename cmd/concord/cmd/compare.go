package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agenthands/concord/internal/core/model"
)

var compareCmd = &cobra.Command{
	Use:   "compare <file-a> <file-b>",
	Short: "Compare two documents",
	Long: `Compare two text or Markdown documents.

Each sentence of the first file is paired with the most similar unclaimed
sentence of the second.

Examples:
  concord compare policy-2024.txt policy-2025.txt
  concord compare -s handbook.md handbook-draft.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		texts, err := loadDocuments(args)
		if err != nil {
			return err
		}

		report := comparator.Compare(texts[0], texts[1])
		if summary {
			printReportSummary(cmd.OutOrStdout(), report)
			return nil
		}
		return writeJSON(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func printReportSummary(w io.Writer, r model.ComparisonReport) {
	fmt.Fprintf(w, "matches: %d\nconflicts: %d\nunique to A: %d\nunique to B: %d\n",
		r.MatchCount, len(r.Conflicts), len(r.UniqueToA), len(r.UniqueToB))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
