// Package main is the entry point for stockdesk, an interactive
// terminal dashboard for what-if stock valuations. It loads the static
// catalog and reference prices, wires the dashboard controller, and
// hands the terminal to bubbletea.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aristath/stockdesk/internal/catalog"
	"github.com/aristath/stockdesk/internal/config"
	"github.com/aristath/stockdesk/internal/dashboard"
	"github.com/aristath/stockdesk/internal/ui"
	"github.com/aristath/stockdesk/pkg/logger"
)

func main() {
	cfg := config.Load()

	catalogPath := flag.String("catalog", cfg.CatalogPath, "YAML catalog override (empty = built-in catalog)")
	maxWidth := flag.Int("max-width", cfg.MaxWidth, "Max columns (0 = no limit)")
	maxHeight := flag.Int("max-height", cfg.MaxHeight, "Max rows (0 = no limit)")
	flag.Parse()

	log := logger.New(logger.Config{
		Level: cfg.LogLevel,
		Path:  cfg.LogFile,
	})
	logger.SetGlobalLogger(log)

	cat := catalog.DefaultCatalog()
	prices := catalog.DefaultPrices()
	trend := catalog.DefaultTrend()
	if *catalogPath != "" {
		var err error
		cat, prices, trend, err = catalog.LoadFile(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// A catalog/price mismatch is a configuration defect: refuse to start.
	if err := catalog.Validate(cat, prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid catalog: %v\n", err)
		os.Exit(1)
	}

	ctrl := dashboard.New(prices)
	m := ui.NewModel(ctrl, cat, prices, trend, log, *maxWidth, *maxHeight)

	log.Info().Int("instruments", len(cat.Instruments())).Msg("starting dashboard")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
