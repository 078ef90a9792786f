// Package main provides the CLI entrypoint for the decimal tool.
// It wires subcommands (validate, parse, sum, cmp), loads configuration,
// initializes logging and dumps cache metrics on request.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/inventar/decimal"
	"github.com/inventar/decimal/internal/calc"
	"github.com/inventar/decimal/internal/config"
	"github.com/inventar/decimal/internal/logger"
	"github.com/inventar/decimal/internal/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds state shared by all subcommands of one execution.
type app struct {
	cache *decimal.Cache

	configPath string
	scale      int
	metrics    bool

	cfg  *config.Config
	calc *calc.Calculator
}

// setup loads the configuration, initializes the logger and builds the calculator.
// The --scale flag overrides the configured scale.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return err
	}

	scale := cfg.Decimal.Scale
	if cmd.Flags().Changed("scale") {
		scale = a.scale
	}
	if a.calc, err = calc.New(a.cache, scale); err != nil {
		return fmt.Errorf("could not create calculator: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithFields(ctx, zap.String("command", cmd.Name()), zap.Int("scale", scale)))

	return nil
}

// dumpMetrics writes cache metrics to stderr if enabled by flag or config.
func (a *app) dumpMetrics(cmd *cobra.Command, _ []string) error {
	if !a.metrics && !a.cfg.Metrics.Enabled {
		return nil
	}

	reg, err := metrics.NewRegistry(a.cfg.Metrics.Namespace, a.cache)
	if err != nil {
		return err
	}

	return metrics.WriteText(cmd.ErrOrStderr(), reg)
}

// newRootCommand returns the root command with all subcommands registered.
// Decimals are interned in cache.
func newRootCommand(cache *decimal.Cache) *cobra.Command {
	a := &app{cache: cache}

	rootCmd := &cobra.Command{
		Use:                "decimal",
		Short:              "Validates, normalizes and adds non-negative fixed-point decimals",
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.dumpMetrics,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")
	flags.IntVar(&a.scale, "scale", 2, "Number of fractional digits, overrides the config file")
	flags.BoolVar(&a.metrics, "metrics", false, "Write cache metrics to stderr after the command")

	rootCmd.AddCommand(
		validateCommand(a),
		parseCommand(a),
		sumCommand(a),
		cmpCommand(a),
	)

	return rootCmd
}

// execute runs cmd and logs its error, if any.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}

	return err
}

// main executes the root command on the process-wide cache.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := execute(ctx, newRootCommand(decimal.Default()))
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
