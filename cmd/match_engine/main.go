package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voluntariado/match-engine/api"
	"github.com/voluntariado/match-engine/config"
	"github.com/voluntariado/match-engine/internal/metrics"
	"github.com/voluntariado/match-engine/internal/ranking"
	"github.com/voluntariado/match-engine/store"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Match Engine - Compatibility scoring and search ranking for volunteer opportunities\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nConfiguration:\n")
		fmt.Printf("  Settings are read from built-in defaults, then the YAML file named by\n")
		fmt.Printf("  MATCH_CONFIG (if set), then MATCH_* environment variables.\n\n")
		fmt.Printf("Examples:\n")
		fmt.Printf("  %s                                  # Start server on default :8080\n", os.Args[0])
		fmt.Printf("  MATCH_ADDR=:9000 %s                 # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  MATCH_CONFIG=match.yml %s           # Load settings from match.yml\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Match Engine v1.0.0\n")
		fmt.Printf("Filter-driven search and profile-driven recommendations for volunteer opportunities\n")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Using opportunity store: %s", cfg.DataPath)
	opportunityStore, err := store.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Fatalf("Failed to open opportunity store: %v", err)
	}
	defer func() {
		if err := opportunityStore.Close(); err != nil {
			log.Printf("Failed to close opportunity store: %v", err)
		}
	}()

	if cfg.SeedPath != "" {
		postings, err := store.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			log.Fatalf("Failed to load seed file %s: %v", cfg.SeedPath, err)
		}
		if err := store.Seed(context.Background(), opportunityStore, postings); err != nil {
			log.Fatalf("Failed to seed opportunity store: %v", err)
		}
		log.Printf("Seeded %d postings from %s", len(postings), cfg.SeedPath)
	}

	registry := prometheus.NewRegistry()
	engineMetrics := metrics.New(registry)

	rankingService, err := ranking.NewService(opportunityStore, cfg, engineMetrics)
	if err != nil {
		log.Fatalf("Failed to create ranking service: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, rankingService, rankingService, registry)

	// Start the server
	log.Printf("Starting server on %s...", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
