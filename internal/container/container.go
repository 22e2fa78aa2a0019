package container

import (
	"fmt"

	"goherit/adapters/inference"
	"goherit/adapters/source"
	"goherit/app"
	"goherit/domain/genetics"
	"goherit/internal"
	"goherit/internal/config"
	"goherit/ports"
)

// Container holds the wired application dependencies and manages their
// construction for one run.
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Source  ports.PedigreeSource
	Engine  ports.InferencePort
	Service *app.InferenceService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	return &Container{
		Config: cfg,
		Logger: internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level)),
	}, nil
}

// InitForPath wires the source adapter, engine, and service for one input
// path. The source is picked by extension; engine workers come from config.
func (c *Container) InitForPath(path string) error {
	src, err := source.ForPath(path, source.Options{
		Sheet:  c.Config.Input.Sheet,
		Family: c.Config.Input.Family,
	})
	if err != nil {
		return err
	}
	c.Source = src

	engine, err := inference.NewEngine(genetics.DefaultModel(), inference.Options{
		Workers: c.Config.Engine.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to build inference engine: %w", err)
	}
	c.Engine = engine

	c.Service = app.NewInferenceService(c.Source, c.Engine, c.Logger)
	c.Logger.Debug("container wired for %s (%d workers)", src.Describe(), c.Config.Engine.Workers)
	return nil
}
