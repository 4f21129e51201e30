package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/sitegen/internal/config"
	"github.com/gerunddev/sitegen/internal/logger"
	"github.com/gerunddev/sitegen/internal/site"
	"github.com/gerunddev/sitegen/internal/styles"
)

// Build generates the whole site described by the configuration
func Build(args []string) {
	opts, err := parseBuildArgs(args)
	if err != nil {
		fail("Invalid arguments", err)
	}

	fmt.Println(styles.TitleStyle.Render("sitegen build"))
	fmt.Println()

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		fail("Error loading config", err)
	}
	if opts.BasePath != "" {
		cfg.BasePath = opts.BasePath
		if err := cfg.Validate(); err != nil {
			fail("Invalid base path", err)
		}
	}

	level, _ := cfg.Level()
	if opts.Verbose {
		level = log.DebugLevel
	}

	// Set up structured logging
	var l *logger.Logger
	if cfg.LogFile != "" {
		f, cleanup, err := logger.NewFileLogger(cfg.LogFile, level)
		if err != nil {
			fail("Error opening log file", err)
		}
		defer cleanup()
		l = f
	} else {
		l = logger.NewWithLevel(os.Stderr, level)
	}
	l.ConfigLoaded(cfgPath, cfg.ContentDir, cfg.OutputDir, cfg.BasePath)

	fmt.Printf("%s → %s\n", styles.PathStyle.Render(cfg.ContentDir), styles.PathStyle.Render(cfg.OutputDir))
	fmt.Println()

	g := site.NewGenerator(cfg)
	g.SetLogger(l)

	result, err := g.Build()
	if err != nil {
		fail("Build failed", err)
	}

	for _, e := range result.Errors {
		fmt.Println(styles.WarningStyle.Render("⚠ " + e.Error()))
	}

	summary := fmt.Sprintf("✓ %d pages, %d static files in %s",
		result.PagesGenerated, result.StaticFiles, result.Duration().Round(time.Millisecond))
	if len(result.Errors) > 0 {
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("%s (%d failed)", summary, len(result.Errors))))
		os.Exit(1)
	}
	fmt.Println(styles.SuccessStyle.Render(summary))
}
