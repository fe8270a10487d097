package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/appgrid/internal/catalog"
	"github.com/mmcdole/appgrid/internal/config"
	"github.com/mmcdole/appgrid/internal/feed"
	"github.com/mmcdole/appgrid/internal/log"
	"github.com/mmcdole/appgrid/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		configPath  string
		query       string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&query, "query", "", "search text (headless mode only)")
	flag.Parse()

	if showVersion {
		fmt.Printf("appgrid %s\n", Version)
		return
	}

	if err := run(configPath, query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, query string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, logFile, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting appgrid", "version", Version)

	client := feed.NewClient(cfg.Feed.Timeout, logger)
	store := catalog.New(client, cfg.Feed.URL,
		catalog.WithLogger(logger),
		catalog.WithRevealDelay(cfg.Reveal.Delay),
	)
	defer store.Dispose()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, cancel := context.WithTimeout(context.Background(), headlessWait(client))
		defer cancel()
		return runHeadless(ctx, store, query, os.Stdout)
	}

	return runTUI(store, cfg.UI.GridColumns, logger)
}

// runTUI runs the interactive grid until the user quits
func runTUI(store *catalog.Store, columns int, logger *slog.Logger) error {
	updates := make(chan catalog.Snapshot, 4)
	unsubscribe := store.Subscribe(tui.NewChannelObserver(updates))
	defer unsubscribe()

	if err := store.Initialize(context.Background()); err != nil {
		return fmt.Errorf("failed to start catalog: %w", err)
	}

	model := tui.NewModel(store.Snapshot(), updates, columns)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
