package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"confreview-parser/internal/app"
	"confreview-parser/internal/browser"
	"confreview-parser/internal/config"
	"confreview-parser/internal/extract"
	"confreview-parser/internal/observability"
	"confreview-parser/internal/report"
)

const (
	exitFatal        = 1
	exitAuth         = 2
	exitNavTimeout   = 3
	exitListNotFound = 4
)

func main() {
	confName := flag.String("conf", "iclr_2025", "Conference profile name")
	headless := flag.Bool("headless", true, "Run the browser without visible UI")
	skipReviews := flag.Bool("skip-reviews", false, "Skip rating extraction (select if no reviews are in yet)")
	configPath := flag.String("config", "", "Config file path (yaml)")
	profilesPath := flag.String("profiles", "", "Conference profiles file path (yaml)")
	format := flag.String("format", "", "Output format: table or csv (overrides config)")
	outputPath := flag.String("o", "", "CSV output path (overrides config)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(exitFatal)
		}
		cfg = loaded
	}
	// The config file's headless setting holds unless the flag was
	// passed explicitly.
	runHeadless := cfg.Browser.Headless
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "headless" {
			runHeadless = *headless
		}
	})
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *verbose {
		cfg.Observability.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(exitFatal)
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)
	defer func() { _ = logger.Close() }()

	metrics := observability.NewMetrics()

	profilesFile := cfg.ProfilesFile
	if *profilesPath != "" {
		profilesFile = *profilesPath
	}
	profiles, err := config.LoadProfiles(profilesFile)
	if err != nil {
		logger.Error("Failed to load profiles", "error", err.Error())
		os.Exit(exitFatal)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		logger.Error("Missing credentials", "error", err.Error())
		os.Exit(exitFatal)
	}

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	orchestrator := app.NewOrchestrator(cfg, profiles, logger, metrics)
	rs, err := orchestrator.Run(ctx, *confName, creds, app.RunOptions{
		Headless:    runHeadless,
		SkipReviews: *skipReviews,
	})

	if cfg.Observability.MetricsPath != "" {
		if werr := metrics.WriteTo(cfg.Observability.MetricsPath); werr != nil {
			logger.Warn("Failed to write metrics", "error", werr.Error())
		}
	}

	if err != nil {
		os.Exit(exitCode(err))
	}

	var sink report.Sink
	if cfg.Output.Format == "csv" {
		sink = report.NewCSVWriter(cfg.Output.Path)
	} else {
		sink = report.NewTableWriter(os.Stdout)
	}
	if err := sink.Write(rs); err != nil {
		logger.Error("Failed to write output", "error", err.Error())
		os.Exit(exitFatal)
	}
}

func exitCode(err error) int {
	var authErr *browser.AuthError
	if errors.As(err, &authErr) {
		return exitAuth
	}
	var navErr *browser.NavTimeoutError
	if errors.As(err, &navErr) {
		return exitNavTimeout
	}
	var listErr *extract.ListNotFoundError
	if errors.As(err, &listErr) {
		return exitListNotFound
	}
	return exitFatal
}
