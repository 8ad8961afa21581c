// Package main is the entry point for vimotion.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/dshills/vimotion/internal/app"
	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/renderer"
	"github.com/dshills/vimotion/internal/renderer/backend"
	"github.com/dshills/vimotion/internal/renderer/markup"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the command line.
type options struct {
	configPath string
	keys       string
	script     string
	logLevel   string
	logFile    string
	color      string
	headless   bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("vimotion", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.keys, "keys", "", "Keys to feed without a terminal, e.g. \"wwx<Esc>\"")
	fs.StringVar(&opts.script, "script", "", "Lua script to run without a terminal")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.color, "color", "auto", "Headless color output (auto, always, never)")
	fs.BoolVar(&opts.headless, "headless", false, "Print the page instead of opening the terminal")
	fs.BoolVar(&opts.version, "version", false, "Show version information")
	fs.BoolVar(&opts.version, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "vimotion - modal motion editor\n\n")
		fmt.Fprintf(stderr, "Usage: vimotion [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vimotion                     Edit the configured document\n")
		fmt.Fprintf(stderr, "  vimotion -keys 'wwex'        Print the page after the keys\n")
		fmt.Fprintf(stderr, "  vimotion -script moves.lua   Run a script and print the page\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.color {
	case "auto", "always", "never":
	default:
		return opts, fmt.Errorf("invalid color mode %q (must be auto, always, or never)", opts.color)
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "vimotion %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	interactive := !opts.headless && opts.keys == "" && opts.script == "" && isTerminal()

	// The screen owns stderr in interactive sessions.
	var logOut io.Writer = stderr
	if interactive {
		logOut = nil
	}
	logger, closer, err := app.OpenLogger(cfg.Log, logOut)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	appOpts := app.Options{Config: cfg, Logger: logger}
	if interactive {
		appOpts.ConfigPath = opts.configPath
	}
	application, err := app.New(appOpts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if interactive {
		err = runInteractive(application)
	} else {
		err = runHeadless(application, opts, stdout)
	}
	if err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive(application *app.Application) error {
	terminal, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := application.SetBackend(terminal); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go reloadOnSignal(ctx, application, hup)

	return application.Run(ctx)
}

// reloadOnSignal reloads the config file for every signal on sig until ctx
// is done.
func reloadOnSignal(ctx context.Context, application *app.Application, sig <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			if err := application.ReloadConfig(); err != nil {
				application.Logger().Warn("%v", err)
			}
		}
	}
}

// runHeadless runs the script and keys, then prints the page and a
// "row col mode" line.
func runHeadless(application *app.Application, opts options, stdout io.Writer) error {
	if opts.script != "" {
		if err := application.RunScript(opts.script, stdout); err != nil {
			return err
		}
	}
	if opts.keys != "" {
		if _, err := application.Feed(opts.keys); err != nil {
			return err
		}
	}

	var mopts []markup.Option
	switch opts.color {
	case "never":
		mopts = append(mopts, markup.WithProfile(termenv.Ascii))
	case "always":
		mopts = append(mopts, markup.WithProfile(termenv.TrueColor))
	}

	theme := application.Config().Theme
	mr := markup.New(stdout, renderer.Theme{
		CursorForeground: theme.CursorForeground,
		CursorBackground: theme.CursorBackground,
		StatusForeground: theme.StatusForeground,
		StatusBackground: theme.StatusBackground,
	}, mopts...)

	page := application.Page()
	out := mr.Render(page)
	if page.CommandText() != "" {
		out += "\n"
	}
	_, err := fmt.Fprintf(stdout, "%s%d %d %s\n", out, page.Row, page.Col, page.Mode)
	return err
}
