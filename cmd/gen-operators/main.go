package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/codeon/govips/internal/generator"
	"github.com/codeon/govips/internal/introspection"
)

var (
	outPath    string
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gen-operators",
		Short: "Generate vips operator bindings from the libvips operation registry",
		Long: `gen-operators walks the operation class hierarchy of the loaded libvips
library and emits a Go source file with a wrapper function for every
concrete operation, plus chained ImageRef methods for the operations
that transform one image into another.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file, - for stdout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file listing operations to exclude")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every generated and excluded operation")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	excluded := generator.DefaultExcludedOperations()
	if configPath != "" {
		var err error
		excluded, err = generator.LoadExclusions(configPath)
		if err != nil {
			return err
		}
	}

	reg, err := introspection.NewVipsRegistry()
	if err != nil {
		return err
	}
	defer reg.Shutdown()

	out := os.Stdout
	if outPath != "" && outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	cfg := generator.Config{
		Excluded: excluded,
		Logger:   logger,
	}
	if err := generator.Generate(reg, cfg, out); err != nil {
		return fmt.Errorf("generating operators: %w", err)
	}
	return nil
}

// newLogger builds a stderr console logger so generated code on stdout
// stays clean.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
