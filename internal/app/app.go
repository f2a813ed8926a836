package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/navsim/internal/config"
	"github.com/zeusync/navsim/internal/core/navigation"
	"github.com/zeusync/navsim/internal/core/observability/log"
	"github.com/zeusync/navsim/internal/core/systems/physics"
)

// App runs one navigation job described by a Config.
type App struct {
	config config.Config
	logger log.Log
}

func New(cfg config.Config, logger log.Log) *App {
	return &App{
		config: cfg,
		logger: logger,
	}
}

// Run reads the configured input and simulates both modes. Any input or parse
// failure aborts before simulation starts.
func (a *App) Run(ctx context.Context) (navigation.Report, error) {
	logger := a.logger.With(log.String("run_id", uuid.NewString()))
	started := time.Now()

	ins, err := navigation.ReadFile(a.config.Input, navigation.ParseOptions{
		LegacyFallback: a.config.Parser.LegacyFallback,
	})
	if err != nil {
		logger.Error("failed to read instructions", log.String("input", a.config.Input), log.Error(err))
		return navigation.Report{}, fmt.Errorf("read instructions: %w", err)
	}

	logger.Info("instructions loaded",
		log.String("input", a.config.Input),
		log.Int("count", len(ins)),
		log.Uint64("digest", ins.Digest()),
	)

	opts := navigation.Options{
		Waypoint:   physics.NewPoint(a.config.Waypoint.X, a.config.Waypoint.Y),
		Concurrent: a.config.Concurrent,
	}
	if a.logger.GetLevel() == log.LevelDebug {
		opts.Observer = NewStepLogger(logger)
	}

	report, err := navigation.Simulate(ctx, ins, opts)
	if err != nil {
		logger.Error("simulation aborted", log.Error(err))
		return navigation.Report{}, fmt.Errorf("simulate: %w", err)
	}

	for _, res := range report.Results() {
		logger.Info("simulation finished",
			log.Stringer("mode", res.Mode),
			log.Stringer("position", res.Position),
			log.Int("distance", res.Distance),
		)
	}
	logger.Debug("run complete", log.Duration("took", time.Since(started)))

	return report, nil
}
