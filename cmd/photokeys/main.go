// Package main is the entry point for the photokeys client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tidwall/sjson"

	"github.com/dshills/photokeys/internal/app"
	"github.com/dshills/photokeys/internal/catalog"
	"github.com/dshills/photokeys/internal/config"
	"github.com/dshills/photokeys/internal/script"
	"github.com/dshills/photokeys/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

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
	if opts.albumsPath != "" {
		cfg.AlbumsPath = opts.albumsPath
	}
	if opts.rulesPath != "" {
		cfg.RulesPath = opts.rulesPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if cfg.AlbumsPath == "" {
		fmt.Fprintf(os.Stderr, "Error: no album export given (use -albums or the settings file)\n")
		return 1
	}

	log := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.LogLevel),
		Output: os.Stderr,
	})
	if !opts.dump {
		// Interactive mode owns the terminal; log lines would corrupt it.
		log.Disable()
	}

	var rules *script.Rules
	if cfg.RulesPath != "" {
		rules, err = script.Load(cfg.RulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	application, err := app.New(app.Options{
		Source: catalog.NewJSONSource(cfg.AlbumsPath),
		Rules:  rules,
		Logger: log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := application.Refresh(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.dump {
		out, err := dumpTable(application)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(out)
		return 0
	}

	view, err := ui.New(application, cfg.UI, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		view.Interrupt()
	}()

	if err := view.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// dumpTable renders the computed keybinding table as a JSON document.
func dumpTable(application *app.App) (string, error) {
	table := application.Table()

	out := "{}"
	var err error
	for _, id := range table.IDs() {
		binding, _ := table.Binding(id)
		out, err = sjson.Set(out, "bindings."+escapePath(string(id)), binding)
		if err != nil {
			return "", fmt.Errorf("building dump: %w", err)
		}
	}
	for _, album := range application.Unbound() {
		out, err = sjson.Set(out, "unbound.-1", string(album.ID))
		if err != nil {
			return "", fmt.Errorf("building dump: %w", err)
		}
	}
	return out, nil
}

// escapePath quotes sjson path metacharacters in an album ID.
func escapePath(s string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(s)
}

type flags struct {
	configPath string
	albumsPath string
	rulesPath  string
	logLevel   string
	dump       bool
}

func parseFlags() flags {
	var opts flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to settings file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to settings file (shorthand)")
	flag.StringVar(&opts.albumsPath, "albums", "", "Path to album export JSON")
	flag.StringVar(&opts.albumsPath, "a", "", "Path to album export JSON (shorthand)")
	flag.StringVar(&opts.rulesPath, "rules", "", "Path to Lua rules script")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.dump, "dump", false, "Print the computed keybinding table as JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "PhotoKeys - keyboard shortcuts for photo albums\n\n")
		fmt.Fprintf(os.Stderr, "Usage: photokeys [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  photokeys -a albums.json            Browse with computed bindings\n")
		fmt.Fprintf(os.Stderr, "  photokeys -a albums.json -dump      Print the binding table as JSON\n")
		fmt.Fprintf(os.Stderr, "  photokeys -rules pins.lua           Apply pinned bindings from Lua\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("PhotoKeys %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/photokeys/config.toml"
}
