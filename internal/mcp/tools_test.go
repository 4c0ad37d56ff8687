package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/concord/internal/core"
	"github.com/agenthands/concord/internal/core/analysis"
	"github.com/agenthands/concord/internal/core/model"
	"github.com/agenthands/concord/internal/extract"
)

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func newAnalyzer() *analysis.Analyzer {
	log, _ := test.NewNullLogger()
	return analysis.NewAnalyzer(core.NewComparator(core.DefaultOptions()), log)
}

func TestCompareTexts(t *testing.T) {
	handler := compareTextsHandler(core.NewComparator(core.DefaultOptions()))

	result := callTool(t, handler, map[string]any{
		"text_a": "Employees get 20 vacation days per year.",
		"text_b": "The cafeteria is open until 9pm.",
	})
	assert.False(t, result.IsError)

	var report model.ComparisonReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Len(t, report.UniqueToA, 1)
	assert.Len(t, report.UniqueToB, 1)
	assert.Zero(t, report.MatchCount)
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	pdf := filepath.Join(dir, "c.pdf")
	require.NoError(t, os.WriteFile(a, []byte("Remote work is allowed on Fridays."), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("Remote work is not allowed."), 0o644))
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), 0o644))

	handler := analyzeFilesHandler(newAnalyzer(), extract.PlainText{})
	result := callTool(t, handler, map[string]any{"paths": a + ",\n" + b + ", " + pdf})
	require.False(t, result.IsError, resultText(t, result))

	var got model.Analysis
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, 2, got.Files)
	assert.Equal(t, 1, got.Conflicts)
	assert.Equal(t, []string{"c.pdf"}, got.Skipped)
}

func TestAnalyzeFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("Remote work is allowed on Fridays."), 0o644))

	handler := analyzeFilesHandler(newAnalyzer(), extract.PlainText{})

	result := callTool(t, handler, map[string]any{"paths": a})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "at least two documents")

	result = callTool(t, handler, map[string]any{"paths": a + "\n" + filepath.Join(dir, "missing.txt")})
	assert.True(t, result.IsError)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.txt", "b.md", "c d.txt"}, splitPaths(" a.txt,b.md\n\n c d.txt ,"))
	assert.Empty(t, splitPaths(""))
}
