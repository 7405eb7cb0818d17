// Command pipedemo runs a producer/consumer pipeline over a bounded queue
// and prints what was produced and what was consumed.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kbukum/pipekit/config"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/pipeline"
)

const appName = "pipedemo"

// Config is the pipedemo application configuration.
type Config struct {
	Base          config.BaseConfig   `yaml:"base" mapstructure:"base"`
	Pipeline      PipelineConfig      `yaml:"pipeline" mapstructure:"pipeline"`
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// PipelineConfig controls the demo run.
type PipelineConfig struct {
	Capacity   int           `yaml:"capacity" mapstructure:"capacity"`
	Items      int           `yaml:"items" mapstructure:"items"`
	PutTimeout time.Duration `yaml:"put_timeout" mapstructure:"put_timeout"`
	GetTimeout time.Duration `yaml:"get_timeout" mapstructure:"get_timeout"`
}

// ObservabilityConfig controls OTLP export. Disabled by default so the demo
// runs without a collector.
type ObservabilityConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

func (c *Config) applyDefaults() {
	c.Base.ApplyDefaults()
	if c.Base.Name == "" {
		c.Base.Name = appName
	}
	if c.Pipeline.Capacity == 0 {
		c.Pipeline.Capacity = 2
	}
	if c.Pipeline.Items == 0 {
		c.Pipeline.Items = 3
	}
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pipedemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.LoadConfig(appName, &cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Base.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent(appName)

	ctx := context.Background()

	var metrics *observability.PipelineMetrics
	if cfg.Observability.Enabled {
		tracerCfg := observability.DefaultTracerConfig(cfg.Base.Name)
		tracerCfg.ServiceVersion = cfg.Base.Version
		tracerCfg.Environment = cfg.Base.Environment
		tracerCfg.Endpoint = cfg.Observability.Endpoint
		tp, err := observability.InitTracer(ctx, tracerCfg)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Warn("tracer shutdown failed", logger.ErrorFields("tracer.shutdown", err))
			}
		}()

		meterCfg := observability.DefaultMeterConfig(cfg.Base.Name)
		meterCfg.ServiceVersion = cfg.Base.Version
		meterCfg.Environment = cfg.Base.Environment
		meterCfg.Endpoint = cfg.Observability.Endpoint
		mp, err := observability.InitMeter(ctx, &meterCfg)
		if err != nil {
			return fmt.Errorf("initializing meter: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mp.Shutdown(shutdownCtx); err != nil {
				log.Warn("meter shutdown failed", logger.ErrorFields("meter.shutdown", err))
			}
		}()

		metrics, err = observability.NewPipelineMetrics(observability.Meter(cfg.Base.Name))
		if err != nil {
			return fmt.Errorf("creating metrics: %w", err)
		}
	}

	produced := make([]int, cfg.Pipeline.Items)
	for i := range produced {
		produced[i] = i + 1
	}

	log.Info("starting run", logger.Fields(
		logger.FieldCapacity, cfg.Pipeline.Capacity,
		logger.FieldItems, len(produced),
	))

	opts := []pipeline.Option{
		pipeline.WithLogger(log),
		pipeline.WithMetrics(metrics),
	}
	if cfg.Pipeline.PutTimeout > 0 {
		opts = append(opts, pipeline.WithPutTimeout(cfg.Pipeline.PutTimeout))
	}
	if cfg.Pipeline.GetTimeout > 0 {
		opts = append(opts, pipeline.WithGetTimeout(cfg.Pipeline.GetTimeout))
	}

	consumed, err := pipeline.Run(ctx, pipeline.FromSlice(produced), cfg.Pipeline.Capacity, opts...)
	if err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}

	fmt.Printf("produced: %v\n", produced)
	fmt.Printf("consumed: %v\n", consumed)
	return nil
}
