// Command onomato builds the onomatopoeia word list: it extracts tagged
// entries from JMdict, categorizes them, attaches Tatoeba example sentences,
// merges short translations and writes the app JSON and SQLite export.
//
// Flags:
//
//	-config  path to YAML config (default: ENV + defaults only)
//	-stage   comma-separated stages to run (default: all)
//	-fetch   download the dictionary source first if it is missing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/japaniel/onomato/pkg/config"
	"github.com/japaniel/onomato/pkg/pipeline"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	stageFlag := flag.String("stage", "", "comma-separated stages to run: "+strings.Join(pipeline.AllStages, ",")+" (default: all)")
	fetchFlag := flag.Bool("fetch", false, "download the dictionary source if missing")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := pipeline.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	var stages []string
	if *stageFlag != "" {
		for _, s := range strings.Split(*stageFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stages = append(stages, s)
			}
		}
	}

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := pipeline.New(*cfg, logger)
	if *fetchFlag {
		if err := p.Fetch(ctx); err != nil {
			logger.Error("fetch dictionary", slog.String("path", cfg.Dictionary.Path), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	if err := p.Run(ctx, stages); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
