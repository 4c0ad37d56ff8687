package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agenthands/concord/internal/core"
	"github.com/agenthands/concord/internal/core/analysis"
	"github.com/agenthands/concord/internal/extract"
)

// RegisterTools adds the comparison tools to the MCP server.
func RegisterTools(s *server.MCPServer, comparator *core.Comparator, analyzer *analysis.Analyzer, ex extract.Extractor) {
	s.AddTool(compareTextsTool(), compareTextsHandler(comparator))
	s.AddTool(analyzeFilesTool(), analyzeFilesHandler(analyzer, ex))
}

// --- compare_texts ---

func compareTextsTool() mcp.Tool {
	return mcp.NewTool("compare_texts",
		mcp.WithDescription("Compare two plain-text documents sentence by sentence. Returns a JSON report of conflicting sentence pairs (with word diffs), sentences unique to each side, and the number of matching sentences."),
		mcp.WithString("text_a",
			mcp.Description("Text of the first document (A)"),
			mcp.Required(),
		),
		mcp.WithString("text_b",
			mcp.Description("Text of the second document (B)"),
			mcp.Required(),
		),
	)
}

func compareTextsHandler(comparator *core.Comparator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		textA := req.GetString("text_a", "")
		textB := req.GetString("text_b", "")

		return jsonResult(comparator.Compare(textA, textB))
	}
}

// --- analyze_files ---

func analyzeFilesTool() mcp.Tool {
	return mcp.NewTool("analyze_files",
		mcp.WithDescription("Compare every pair of the given text or Markdown files. Returns a JSON analysis with one report per pair."),
		mcp.WithString("paths",
			mcp.Description("File paths separated by newlines or commas, at least two"),
			mcp.Required(),
		),
	)
}

func analyzeFilesHandler(analyzer *analysis.Analyzer, ex extract.Extractor) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		paths := splitPaths(req.GetString("paths", ""))

		docs, skipped, err := extract.LoadFiles(ex, paths)
		if err != nil {
			return toolError(err)
		}

		result, err := analyzer.Analyze(ctx, docs)
		if err != nil {
			if len(skipped) > 0 {
				err = fmt.Errorf("%w (unsupported: %s)", err, strings.Join(skipped, ", "))
			}
			return toolError(err)
		}
		result.Skipped = append(result.Skipped, skipped...)

		return jsonResult(result)
	}
}

func splitPaths(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == ',' })
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			paths = append(paths, f)
		}
	}
	return paths
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
