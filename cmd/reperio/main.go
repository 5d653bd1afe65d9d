package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/app"
	"github.com/ternarybob/reperio/internal/common"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	outputPath   = flag.String("output", "", "Answers output path (overrides config)")
	outputPathO  = flag.String("o", "", "Answers output path (shorthand, overrides config)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	// Register custom flag for multiple config files
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Reperio version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Merge output flags (shorthand takes precedence)
	finalOutput := *outputPath
	if *outputPathO != "" {
		finalOutput = *outputPathO
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("reperio.toml"); err == nil {
			configFiles = append(configFiles, "reperio.toml")
		}
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> files -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner
	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	common.ApplyFlagOverrides(config, finalOutput)

	logger := common.InitLogger(config)

	common.PrintBanner(common.GetVersion())

	logger.Info().
		Strs("config_files", configFiles).
		Str("finance_dir", config.Corpora.FinanceDir).
		Str("insurance_dir", config.Corpora.InsuranceDir).
		Str("faq_path", config.Corpora.FAQPath).
		Str("questions", config.Questions.Path).
		Str("output", config.Output.Path).
		Int("workers", config.Loader.Workers).
		Bool("cache", config.Cache.Enabled).
		Msg("Application configuration loaded")

	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}
	defer application.Close()

	// Cancel the run on Ctrl+C; in-flight extractions observe the context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info().Msg("Interrupt signal received, cancelling run")
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Retrieval run failed")
		os.Exit(1)
	}
}
