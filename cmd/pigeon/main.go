// Package main is the entry point for the pigeon chat client.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carrier-pigeon/pigeon/internal/app"
	"github.com/carrier-pigeon/pigeon/internal/config"
	"github.com/carrier-pigeon/pigeon/internal/feed"
	"github.com/carrier-pigeon/pigeon/internal/message"
	"github.com/carrier-pigeon/pigeon/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	user       string
	seed       int64
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := app.ParseLogLevel(opts.logLevel)
	if cfg.Log.Level != "" && opts.logLevel == "" {
		level = app.ParseLogLevel(cfg.Log.Level)
	}
	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = app.DefaultLogPath
	}
	logger, logFile, err := app.OpenLogFile(logPath, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()

	keymaps, bad := config.BuildKeymaps(cfg)
	for _, be := range bad {
		logger.Warn("rejected binding: %v", be)
	}

	term, err := ui.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGINT/SIGTERM end the run the same way quitting does.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	go term.Run()

	traffic := feed.New(opts.seed)
	go traffic.Run(ctx)

	watcher := config.NewWatcher(opts.configPath, logger)
	go func() {
		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("config watcher: %v", err)
		}
	}()

	application := app.New(term,
		app.WithLogger(logger),
		app.WithKeymaps(keymaps),
		app.WithMessages(traffic.Messages()),
		app.WithReloads(watcher.Updates()),
		app.WithUser(message.User(opts.user)),
	)

	logger.Info("pigeon %s starting", version)
	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// The terminal owns the screen; report after it is restored.
		term.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "pigeon.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "pigeon.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.user, "user", "you", "Name to send composed messages as")
	flag.StringVar(&opts.user, "u", "you", "Name to send composed messages as (shorthand)")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "Seed for the fake message feed")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pigeon - terminal chat client\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pigeon [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: j/k move, gg/G jump, dd delete, i compose, : command, q quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Pigeon %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	return opts
}
