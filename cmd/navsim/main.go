package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/navsim/internal/config"
	"github.com/zeusync/navsim/internal/core/navigation"
	"github.com/zeusync/navsim/internal/injector"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("navsim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath = flags.String("config", "", "path to a YAML config file (optional)")
		inputPath  = flags.String("input", "", "instruction file, overrides the config (.zst is decompressed)")
		logLevel   = flags.String("log-level", "", "debug, info, warn or error; overrides the config")
		legacy     = flags.Bool("legacy-fallback", false, "treat unknown action letters as N instead of failing")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}
	if *inputPath != "" {
		cfg.Input = *inputPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *legacy {
		cfg.Parser.LegacyFallback = true
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}

	app, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "init:", err)
		return 1
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := app.Run(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "navsim:", err)
		return 1
	}

	printReport(stdout, report)
	return 0
}

func printReport(w io.Writer, report navigation.Report) {
	for i, res := range report.Results() {
		fmt.Fprintf(w, "part%d (%s): %d\n", i+1, res.Mode, res.Distance)
	}
}
