package cmd

import (
	"fmt"
	"io"
	"os"

	"patterns-example/catalog"
	"patterns-example/config"
	"patterns-example/patterns/adapter"
	"patterns-example/patterns/builder"
	"patterns-example/patterns/decorator"
	"patterns-example/patterns/factory"
	"patterns-example/patterns/observer"
	"patterns-example/patterns/proxy"
	"patterns-example/patterns/singleton"
	"patterns-example/patterns/strategy"
	"patterns-example/pkg/logger"

	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg             *config.Config
	out             io.Writer
	extraDemos      []catalog.Demo
	useDefaultDemos bool
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:             cfg,
		out:             os.Stdout,
		extraDemos:      []catalog.Demo{},
		useDefaultDemos: true,
	}
}

// WithOutput redirects demonstration output (default os.Stdout)
func (b *AppBuilder) WithOutput(out io.Writer) *AppBuilder {
	b.out = out
	return b
}

// WithDemo adds a demonstration after the default ones
func (b *AppBuilder) WithDemo(d catalog.Demo) *AppBuilder {
	b.extraDemos = append(b.extraDemos, d)
	return b
}

// DisableDefaultDemos disables registration of the built-in demonstrations
func (b *AppBuilder) DisableDefaultDemos() *AppBuilder {
	b.useDefaultDemos = false
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	// Initialize logger
	if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	cat := catalog.New()

	if b.useDefaultDemos {
		defaults := []catalog.Demo{
			singleton.Demo{},
			factory.Demo{},
			builder.Demo{},
			adapter.Demo{},
			decorator.Demo{},
			proxy.Demo{Remote: b.cfg.Remote},
			observer.Demo{},
			strategy.Demo{},
		}
		for _, d := range defaults {
			if err := cat.Register(d); err != nil {
				return nil, fmt.Errorf("failed to register demo %s: %w", d.Name(), err)
			}
		}
	}

	for _, d := range b.extraDemos {
		if err := cat.Register(d); err != nil {
			return nil, fmt.Errorf("failed to register demo %s: %w", d.Name(), err)
		}
	}

	logger.Info("catalog assembled", zap.Strings("patterns", cat.Names()))

	return &App{
		cfg:     b.cfg,
		catalog: cat,
		out:     b.out,
	}, nil
}
