package main

import (
	"context"
	"fmt"
	"os"

	"bookreview/internal/api"
	"bookreview/internal/config"
	"bookreview/internal/logging"
	"bookreview/internal/telemetry"
	"bookreview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.InitLogger(cfg.LogFile, cfg.LogLevel, "bookreview")
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

	logger.Info("starting", "api_base", cfg.APIBase)
	client := api.NewClient(cfg.APIBase)
	model := ui.NewAppModel(client, logger).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
