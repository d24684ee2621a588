package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bookreview/internal/api"
	"bookreview/internal/config"
	"bookreview/internal/logging"
	"bookreview/internal/telemetry"
	"bookreview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func parseFlags() int64 {
	var bookID int64
	flag.Int64Var(&bookID, "book", 0, "id of the book whose reviews to list (required)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reviewlist -book <id>\n\n")
		fmt.Fprintf(os.Stderr, "Lists the reviews of one book, fetched once at startup.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if bookID <= 0 {
		fmt.Fprintln(os.Stderr, "error: -book is required")
		flag.Usage()
		os.Exit(1)
	}
	return bookID
}

func main() {
	bookID := parseFlags()
	if err := run(bookID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(bookID int64) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.InitLogger(cfg.LogFile, cfg.LogLevel, "reviewlist")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer shutdown.ShutdownLogged(ctx, logger)

	view := ui.NewReviewListView(api.NewClient(cfg.APIBase), bookID, logger)
	if _, err := tea.NewProgram(view.AsTeaModel()).Run(); err != nil {
		return err
	}
	return nil
}
