package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagerec"
	"github.com/fwojciec/pagerec/difflib"
	"github.com/fwojciec/pagerec/fs"
	"github.com/fwojciec/pagerec/goquery"
	"github.com/fwojciec/pagerec/htmltomarkdown"
	"github.com/fwojciec/pagerec/readability"
	recslog "github.com/fwojciec/pagerec/slog"
	"github.com/fwojciec/pagerec/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagerec"),
		kong.Description("Extract a structured JSON record from a saved profile, company or job page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.validate(); err != nil {
		return err
	}

	variant, err := cli.resolveVariant()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel, cli.Quiet)

	opts := goquery.DefaultOptions()
	opts.SimilarityThreshold = cli.SimilarityThreshold

	var pageOpts []goquery.PageOption
	if cli.Markdown {
		pageOpts = append(pageOpts, goquery.WithConverter(newConverter(variant)))
	}
	switch cli.ContentEngine {
	case "trafilatura":
		pageOpts = append(pageOpts, goquery.WithContentExtractor(trafilatura.NewExtractor()))
	case "readability":
		pageOpts = append(pageOpts, goquery.WithContentExtractor(readability.NewExtractor()))
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Logger:   logger,
		Registry: recslog.NewLoggingRegistry(goquery.NewDefaultRegistry(opts, difflib.NewScorer(), pageOpts...), logger),
		Source:   recslog.NewLoggingSnapshotSource(fs.NewSnapshotSource(), logger),
	}
	if cli.Output != "" {
		deps.Writer = fs.NewRecordWriter(cli.Output)
	}

	cmd := &ExtractCmd{
		Path:      cli.Path,
		Extractor: cli.Kind + "/" + variant,
	}
	return cmd.Run(deps)
}

func newConverter(variant string) *htmltomarkdown.Converter {
	if domain, ok := siteDomains[variant]; ok {
		return htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(domain))
	}
	return htmltomarkdown.NewConverter()
}

// newLogger returns a text logger on stderr, or one that discards
// everything when quiet is set.
func newLogger(w io.Writer, level string, quiet bool) *slog.Logger {
	if quiet {
		return slog.New(slog.DiscardHandler)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Logger *slog.Logger

	Registry pagerec.ExtractorRegistry
	Source   pagerec.SnapshotSource

	// Writer receives the record. When nil the record goes to Stdout.
	Writer pagerec.RecordWriter
}
