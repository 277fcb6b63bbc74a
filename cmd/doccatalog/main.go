package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"doccatalog/internal/cli"
	"doccatalog/internal/config"
	"doccatalog/internal/logger"
	"doccatalog/internal/repository/memory"
)

// @title Document Catalog API
// @version 1.0
// @description In-memory catalog of Word, PDF, Excel, TXT and HTML document records.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.New(cfg.Log, cfg.ServiceName)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	// One registry for the whole process, shared by every front-end
	registry := memory.New()

	if err := cli.NewRootCommand(cfg, zl, registry).Execute(); err != nil {
		_ = zl.Sync()
		os.Exit(1)
	}
}
