package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fittrack/internal/config"
	"fittrack/internal/report"
	"fittrack/internal/sensor"
	"fittrack/internal/service"
	"fittrack/internal/store"
	"fittrack/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating default config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating default config: %w", err)
		}
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config after creation: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}
	db, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ingestSvc := service.NewIngestService(db)
	querySvc := service.NewQueryService(db)

	switch {
	case len(os.Args) > 1 && os.Args[1] == "demo":
		return runDemo(ingestSvc)
	case len(os.Args) > 1 && os.Args[1] == "import":
		if len(os.Args) < 3 {
			return errors.New("usage: fittrack import <packets.ndjson>")
		}
		return runImport(ingestSvc, os.Args[2])
	case len(os.Args) > 1:
		return fmt.Errorf("unknown command %q (expected demo, import or no argument)", os.Args[1])
	}

	// Launch TUI
	app := tui.NewApp(querySvc, cfg.Display.HistoryPage)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// runDemo feeds the three canonical sensor packets through the pipeline and
// prints a report line for each.
func runDemo(ingestSvc *service.IngestService) error {
	packets := []sensor.Packet{
		{Tag: sensor.TagSwimming, Values: []float64{720, 1, 80, 25, 40}},
		{Tag: sensor.TagRunning, Values: []float64{15000, 1, 75}},
		{Tag: sensor.TagWalking, Values: []float64{9000, 1, 75, 180}},
	}

	result := ingestSvc.ProcessBatch(packets, nil)
	for _, s := range result.Summaries {
		fmt.Println(report.Line(s))
	}
	for _, err := range result.Errors {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d packets failed", len(result.Errors), result.Processed)
	}
	return nil
}

// runImport ingests sensor packets from an NDJSON file.
func runImport(ingestSvc *service.IngestService, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening packet file: %w", err)
	}
	defer f.Close()

	packets, err := sensor.ReadPackets(f)
	if err != nil {
		return fmt.Errorf("reading packet file: %w", err)
	}
	if len(packets) == 0 {
		fmt.Println("No packets found in", path)
		return nil
	}

	result := ingestSvc.ProcessBatch(packets, nil)
	for _, s := range result.Summaries {
		fmt.Println(report.Line(s))
	}
	for _, err := range result.Errors {
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	fmt.Printf("\nStored %d of %d workouts.\n", result.Stored, result.Processed)
	return nil
}
