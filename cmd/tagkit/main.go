package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/vango-go/tagkit/internal/config"
	"github.com/vango-go/tagkit/internal/errors"
	"github.com/vango-go/tagkit/pkg/dom/htmldoc"
	"github.com/vango-go/tagkit/pkg/factory"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the state shared by subcommands, prepared before each run.
type env struct {
	configDir string
	verbose   bool
	metrics   bool
	noColor   bool

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	doc      *htmldoc.Document
	factory  *factory.Factory
}

func newRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:   "tagkit",
		Short: "Build HTML elements from declarative attribute maps",
		Long: `tagkit constructs HTML elements from a tag name and an ordered set of
attributes and properties.

Keys id, class, content and for are special (matched case-insensitively);
every other key is assigned as a property under its exact name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&e.configDir, "config", "c", ".", "Directory containing tagkit.yaml")
	rootCmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Log every constructed element")
	rootCmd.PersistentFlags().BoolVar(&e.metrics, "metrics", false, "Print construction metrics after the command")
	rootCmd.PersistentFlags().BoolVar(&e.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		makeCmd(e),
		buildCmd(e),
		tagsCmd(),
		versionCmd(),
	)

	return rootCmd
}

func (e *env) setup(stderr io.Writer) error {
	if e.noColor {
		errors.DisableColors()
	}

	cfg, err := config.Load(e.configDir)
	if err != nil {
		return err
	}
	e.cfg = cfg

	level := cfg.LogLevel()
	if e.verbose {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []factory.Option{
		factory.WithLogger(e.logger),
		factory.WithTracerName("github.com/vango-go/tagkit/cmd/tagkit"),
	}
	if e.metrics || cfg.Metrics.Enabled {
		e.registry = prometheus.NewRegistry()
		opts = append(opts,
			factory.WithMetrics(e.registry),
			factory.WithNamespace(cfg.Metrics.Namespace),
		)
	}

	e.doc = htmldoc.New()
	e.factory = factory.New(e.doc, opts...)
	return nil
}

// writeMetrics prints gathered metrics in the Prometheus text format.
func (e *env) writeMetrics(w io.Writer) error {
	if e.registry == nil {
		return nil
	}
	families, err := e.registry.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
