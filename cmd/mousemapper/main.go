// Package main is the entry point for the mousemapper profile generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mousemapper/mousemapper/internal/app"
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

	application := app.New(opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals so watch mode shuts down cleanly
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.BlueprintPath, "blueprint", "", "Path to blueprint file (.toml, .yaml, .lua)")
	flag.StringVar(&opts.BlueprintPath, "b", "", "Path to blueprint file (shorthand)")
	flag.StringVar(&opts.OutputPath, "output", "", "Profile output path (default: stdout)")
	flag.StringVar(&opts.OutputPath, "o", "", "Profile output path (shorthand)")
	flag.BoolVar(&opts.Scan, "scan", false, "List connected USB devices and exit")
	flag.BoolVar(&opts.ValidateOnly, "validate", false, "Validate the blueprint without writing")
	flag.BoolVar(&opts.Watch, "watch", false, "Regenerate whenever the blueprint changes")
	flag.BoolVar(&opts.Watch, "w", false, "Regenerate whenever the blueprint changes (shorthand)")
	flag.BoolVar(&opts.CopyToClipboard, "copy", false, "Copy the generated profile to the clipboard")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mousemapper - Karabiner-Elements rule generator for programmable mice\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mousemapper [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mousemapper -scan                         List connected devices\n")
		fmt.Fprintf(os.Stderr, "  mousemapper -b naga.toml                  Print the profile to stdout\n")
		fmt.Fprintf(os.Stderr, "  mousemapper -b naga.lua -o naga.json      Write the profile to a file\n")
		fmt.Fprintf(os.Stderr, "  mousemapper -b naga.toml -o naga.json -w  Regenerate on every save\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Mousemapper %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.BlueprintPath == "" && !opts.Scan && flag.NArg() > 0 {
		opts.BlueprintPath = flag.Arg(0)
	}

	return opts
}
