// Package app implements the application layer for replica.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"go.trai.ch/replica/internal/adapters/watcher"
	"go.trai.ch/replica/internal/core/ports"
)

// MetricsServer records worker metrics and can expose them over HTTP.
type MetricsServer interface {
	ports.Metrics
	Serve(ctx context.Context, addr string) error
}

// App represents the main application logic.
type App struct {
	loader    ports.SolutionLoader
	connector ports.WorkerConnector
	publisher ports.AssetPublisher
	watcher   ports.Watcher
	codec     ports.Codec
	tracer    ports.Tracer
	metrics   MetricsServer
	logger    ports.Logger

	stdout   io.Writer
	debounce time.Duration
}

// New creates a new App instance.
func New(
	loader ports.SolutionLoader,
	connector ports.WorkerConnector,
	publisher ports.AssetPublisher,
	fileWatcher ports.Watcher,
	codec ports.Codec,
	tracer ports.Tracer,
	metrics MetricsServer,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		connector: connector,
		publisher: publisher,
		watcher:   fileWatcher,
		codec:     codec,
		tracer:    tracer,
		metrics:   metrics,
		logger:    log,
		stdout:    os.Stdout,
		debounce:  watcher.DefaultDebounceWindow,
	}
}

// WithOutput redirects command output such as summaries and status reports.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDebounce sets the quiet period before file changes are published.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}
