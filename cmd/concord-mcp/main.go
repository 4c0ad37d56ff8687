package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/agenthands/concord/internal/config"
	"github.com/agenthands/concord/internal/core"
	"github.com/agenthands/concord/internal/core/analysis"
	"github.com/agenthands/concord/internal/extract"
	"github.com/agenthands/concord/internal/logging"
	mcpadapter "github.com/agenthands/concord/internal/mcp"
)

func main() {
	configFlag := flag.String("config", "config/config.toml", "path to the TOML config file")
	flag.Parse()

	log := logging.Log

	cfg, err := config.LoadOrDefault(*configFlag)
	if err != nil {
		log.Fatalf("concord-mcp: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("concord-mcp: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("concord-mcp: %v", err)
	}
	// stdout carries the protocol
	if err := logging.Configure(log, os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("concord-mcp: %v", err)
	}

	comparator := core.NewComparator(cfg.Comparator.Options())
	analyzer := analysis.NewAnalyzer(comparator, log)

	mcpServer := server.NewMCPServer(
		"concord-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)
	mcpadapter.RegisterTools(mcpServer, comparator, analyzer, extract.PlainText{})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("concord-mcp: %v", err)
	}
}
