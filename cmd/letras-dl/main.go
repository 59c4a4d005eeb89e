package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/letras-scraper/internal/config"
	"github.com/handiism/letras-scraper/internal/model"
	"github.com/handiism/letras-scraper/internal/scrape"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Command line flags
	var (
		urlFlag        = flag.String("url", "", "letras.com artist URL, e.g. https://www.letras.com/tom-jobim/")
		outputFlag     = flag.String("output", "", "Output file name without .json (defaults to the artist name)")
		dirFlag        = flag.String("dir", "", "Output directory (overrides config)")
		configFlag     = flag.String("config", "", "Path to config file")
		modeFlag       = flag.String("mode", "", "Fetch mode: sequential or concurrent (overrides config)")
		workersFlag    = flag.Int("workers", 0, "Maximum concurrent fetches in concurrent mode (overrides config)")
		breaklinesFlag = flag.Bool("breaklines", false, "Keep line breaks in lyrics (overrides config, -breaklines=false turns it off)")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *urlFlag == "" && flag.NArg() == 0 {
		fmt.Println("Letras Scraper - Export an artist's lyrics from letras.com")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  letras-dl -url <artist URL> [options]")
		fmt.Println("  letras-dl <artist URL> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: letras-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger, err := newLogger(*verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		settings, err = config.Load(*configFlag)
		if err != nil {
			logger.Fatal("Error loading config", zap.String("path", *configFlag), zap.Error(err))
		}
	}

	// Apply flags
	if *dirFlag != "" {
		settings.OutputDir = *dirFlag
	}
	if *modeFlag != "" {
		mode, err := model.ParseMode(*modeFlag)
		if err != nil {
			logger.Fatal("Invalid mode", zap.Error(err))
		}
		settings.Concurrent = mode == model.ModeConcurrent
	}
	if *workersFlag > 0 {
		settings.MaxConcurrentFetches = *workersFlag
	}
	if isFlagSet(flag.CommandLine, "breaklines") {
		settings.PreserveLineBreaks = *breaklinesFlag
	}

	artistURL := *urlFlag
	if artistURL == "" {
		artistURL = flag.Arg(0)
	}

	outputName := *outputFlag
	if outputName == "" {
		outputName = scrape.OutputName(artistURL)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Interrupted, cancelling...")
		cancel()
	}()

	manager := scrape.NewManager(settings, func(event scrape.ProgressEvent) {
		logEvent(logger, event)
	})

	logger.Info("Exporting songs",
		zap.String("artist_url", artistURL),
		zap.String("output", outputName),
		zap.Stringer("mode", settings.Mode()),
		zap.Int("workers", settings.Workers()),
	)

	count, err := manager.Export(ctx, artistURL, outputName, settings.Mode())
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Export cancelled")
			logger.Sync()
			os.Exit(130)
		}
		logger.Error("Export failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	fmt.Println(count)
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// newLogger builds a console logger writing to stderr, at debug level
// when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose

	return cfg.Build()
}

// logEvent maps a progress event onto the matching log level.
func logEvent(logger *zap.Logger, event scrape.ProgressEvent) {
	switch event.Level {
	case scrape.LevelVerbose:
		logger.Debug(event.Message)
	case scrape.LevelWarning:
		logger.Warn(event.Message)
	case scrape.LevelError:
		logger.Error(event.Message)
	default:
		logger.Info(event.Message)
	}
}
