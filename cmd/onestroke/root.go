package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onestroke/generator"
	"github.com/katalvlaran/onestroke/geometry"
	"github.com/katalvlaran/onestroke/internal/config"
	"github.com/katalvlaran/onestroke/internal/observability"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/repair"
	"github.com/katalvlaran/onestroke/store"
	"github.com/katalvlaran/onestroke/tier"
	"github.com/katalvlaran/onestroke/validate"
)

const shutdownTimeout = 5 * time.Second

// app is the state shared by every subcommand once the root pre-run hook
// has loaded configuration.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	tiers  tier.Table
	tracer *observability.TracerProvider
}

type globalFlags struct {
	configPath string
	catalog    string
	logLevel   string
	logFormat  string
	seed       int64
}

// newRootCmd wires every subcommand to a. The caller owns a and must call
// a.shutdown once Execute returns, error or not.
func newRootCmd(a *app) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "onestroke",
		Short:         "Single-stroke puzzle catalog tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&flags.catalog, "catalog", "", "Catalog JSON file (overrides catalog.path)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	pf.Int64Var(&flags.seed, "seed", 0, "Generator seed (overrides generator.seed)")

	rootCmd.AddCommand(
		newCheckCmd(a),
		newFixCmd(a),
		newGenerateCmd(a),
		newSolveCmd(a),
		newImportCmd(a),
		newExportBadgerCmd(a),
	)
	return rootCmd
}

// init loads configuration, applies flag overrides and builds the logger,
// the tracer and the tier table.
func (a *app) init(cmd *cobra.Command, flags globalFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	pf := cmd.Flags()
	if pf.Changed("catalog") {
		cfg.Catalog.Path = flags.catalog
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if pf.Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if pf.Changed("seed") {
		cfg.Generator.Seed = flags.seed
	}
	a.cfg = cfg

	a.log = observability.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	for _, w := range cfg.Validate() {
		a.log.Warn("config", "warning", w)
	}

	a.tiers = tier.Default()
	if cfg.Tiers.File != "" {
		if a.tiers, err = tier.LoadFile(cfg.Tiers.File); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.tracer, err = observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		return err
	}
	cmd.SetContext(observability.WithLogger(ctx, a.log))
	return nil
}

// shutdown flushes and releases the tracer provider.
func (a *app) shutdown() error {
	if a.tracer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := a.tracer.Shutdown(ctx)
	a.tracer = nil
	return err
}

func (a *app) guard() geometry.Guard {
	if a.cfg.Geometry.Epsilon < 0 {
		return geometry.Guard{Epsilon: geometry.DefaultEpsilon}
	}
	return geometry.Guard{Epsilon: a.cfg.Geometry.Epsilon}
}

func (a *app) placement() geometry.Placement {
	g := a.cfg.Geometry
	if g.Collinearity < 0 || g.Slack < 0 || g.MinDistance < 0 {
		return geometry.DefaultPlacement()
	}
	return geometry.Placement{Collinearity: g.Collinearity, Slack: g.Slack, MinDistance: g.MinDistance}
}

func (a *app) checkOptions() []validate.Option {
	opts := []validate.Option{validate.WithGuard(a.guard())}
	if n := a.cfg.Generator.StepLimit; n > 0 {
		opts = append(opts, validate.WithStepLimit(n))
	}
	return opts
}

// generator builds a generator from the configuration. Non-positive
// budgets keep the package defaults, matching the config warnings.
func (a *app) generator() *generator.Generator {
	gc := a.cfg.Generator
	opts := []generator.Option{
		generator.WithSeed(gc.Seed),
		generator.WithGuard(a.guard()),
		generator.WithPlacement(a.placement()),
		generator.WithLogger(a.log),
		generator.WithTracer(a.tracer.Tracer()),
	}
	if gc.MaxAttempts > 0 {
		opts = append(opts, generator.WithMaxAttempts(gc.MaxAttempts))
	}
	if gc.SafeAttempts > 0 {
		opts = append(opts, generator.WithSafeAttempts(gc.SafeAttempts))
	}
	if gc.EulerFixLimit > 0 {
		opts = append(opts, generator.WithEulerFixLimit(gc.EulerFixLimit))
	}
	if gc.StepLimit > 0 {
		opts = append(opts, generator.WithStepLimit(gc.StepLimit))
	}
	return generator.New(a.tiers, opts...)
}

func (a *app) pipeline() *repair.Pipeline {
	rc := a.cfg.Repair
	opts := []repair.Option{
		repair.WithSafeFallback(rc.SafeFallback),
		repair.WithLocalFix(rc.LocalFix),
		repair.WithGuard(a.guard()),
		repair.WithLogger(a.log),
		repair.WithTracer(a.tracer.Tracer()),
	}
	if rc.MaxRegenerations > 0 {
		opts = append(opts, repair.WithMaxRegenerations(rc.MaxRegenerations))
	}
	if rc.SafeRetries > 0 {
		opts = append(opts, repair.WithSafeRetries(rc.SafeRetries))
	}
	if n := a.cfg.Generator.StepLimit; n > 0 {
		opts = append(opts, repair.WithStepLimit(n))
	}
	return repair.New(a.generator(), opts...)
}

// catalogMode selects how much of a catalog is checked at load.
type catalogMode int

const (
	// strictCatalog requires every level to pass Level.Validate.
	strictCatalog catalogMode = iota
	// lenientCatalog only requires unique level IDs; malformed levels are
	// left for validate.Check to report and repair to replace.
	lenientCatalog
)

// loadCatalog reads the configured catalog. A missing file yields an
// empty catalog when allowMissing is set.
func (a *app) loadCatalog(mode catalogMode, allowMissing bool) (level.Catalog, error) {
	cat, err := store.LoadFile(a.cfg.Catalog.Path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			a.log.Info("catalog not found, starting empty", "path", a.cfg.Catalog.Path)
			return level.Catalog{}, nil
		}
		return nil, err
	}
	if mode == lenientCatalog {
		err = cat.UniqueIDs()
	} else {
		err = cat.Validate()
	}
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (a *app) saveCatalog(cat level.Catalog) error {
	if err := store.SaveFile(a.cfg.Catalog.Path, cat); err != nil {
		return err
	}
	a.log.Info("catalog saved", "path", a.cfg.Catalog.Path, "levels", len(cat))
	return nil
}
