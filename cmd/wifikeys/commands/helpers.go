package commands

import (
	"context"

	"github.com/systmms/wifikeys/internal/config"
	"github.com/systmms/wifikeys/internal/logging"
	"github.com/systmms/wifikeys/internal/metrics"
	"github.com/systmms/wifikeys/internal/wlan"
)

// NoProfilesMessage is printed when there is nothing to show.
const NoProfilesMessage = "No WiFi profiles found or unable to retrieve."

// pipeline bundles the source and aggregator built from a loaded config.
type pipeline struct {
	cfg        *config.Config
	source     *wlan.NetshSource
	aggregator *wlan.Aggregator
	recorder   *metrics.Recorder
}

func newPipeline(cfg *config.Config) *pipeline {
	logger := loggerFor(cfg)
	source := wlan.NewNetshSourceWithExecutor(cfg.NetshConfig(), logger, cfg.CommandExecutor())

	p := &pipeline{cfg: cfg, source: source}
	opts := wlan.AggregatorOptions{
		Concurrency: cfg.Concurrency(),
		Logger:      logger,
	}
	if cfg.MetricsOut != "" {
		p.recorder = metrics.NewRecorder()
		opts.Observer = p.recorder
	}
	p.aggregator = wlan.NewAggregator(source, opts)
	return p
}

// collect loads the configuration and runs the full extraction.
func collect(ctx context.Context, cfg *config.Config) (*wlan.CredentialSet, error) {
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	p := newPipeline(cfg)
	set, err := p.aggregator.Collect(ctx)
	p.flushMetrics()
	return set, err
}

// flushMetrics writes the textfile when --metrics-out is set. Failures are
// logged and never fail the command.
func (p *pipeline) flushMetrics() {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.WriteTextfile(p.cfg.MetricsOut); err != nil {
		loggerFor(p.cfg).Warn("Failed to write metrics to %s: %v", p.cfg.MetricsOut, err)
		return
	}
	loggerFor(p.cfg).Debug("Wrote metrics to %s", p.cfg.MetricsOut)
}

func loggerFor(cfg *config.Config) *logging.Logger {
	if cfg.Logger == nil {
		return logging.Discard()
	}
	return cfg.Logger
}
