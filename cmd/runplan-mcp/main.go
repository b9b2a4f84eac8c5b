package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/runplan/internal/config"
	"github.com/meltforce/runplan/internal/library"
	runmcp "github.com/meltforce/runplan/internal/mcp"
	"github.com/meltforce/runplan/internal/planner"
	"github.com/meltforce/runplan/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to config file (local mode)")
	serverURL := flag.String("server", "", "runplan server URL for remote mode (e.g. https://runplan.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("RUNPLAN_AUTH_API_KEY"), "API key for remote mode")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("runplan-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var src runmcp.PlanSource
	if *serverURL != "" {
		src = runmcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	} else {
		local, closeFn, err := localSource(*configPath, log)
		if err != nil {
			log.Error("local mode setup failed", "error", err)
			os.Exit(1)
		}
		defer closeFn()
		src = local
	}

	s := runmcp.New(src, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

// localSource builds an in-process plan source. Without a config file, or
// with the database disabled, plans are generated but not stored.
func localSource(configPath string, log *slog.Logger) (*runmcp.Local, func(), error) {
	lib, err := library.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading workout library: %w", err)
	}

	var (
		opts    []planner.Option
		store   planner.PlanStore
		reader  runmcp.PlanReader
		closeFn = func() {}
	)

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, planner.WithDefaultRaceDistance(cfg.Planner.DefaultRaceDistance))

		if cfg.Database.Enabled {
			db, err := storage.New(context.Background(), cfg.Database.DSN())
			if err != nil {
				return nil, nil, fmt.Errorf("connecting database: %w", err)
			}
			store, reader, closeFn = db, db, db.Close
			log.Info("local mode", "database", cfg.Database.Host)
		}
	}

	svc := planner.NewService(planner.NewGenerator(lib, opts...), store, log)
	return runmcp.NewLocal(svc, reader), closeFn, nil
}
