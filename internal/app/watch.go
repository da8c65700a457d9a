package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.trai.ch/xform/internal/adapters/watcher"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	metricsPath           = "/metrics"
	metricsHeaderTimeout  = 5 * time.Second
	metricsShutdownPeriod = time.Second
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Lenient bool
	// Trace logs every reload and dispatch span.
	Trace bool
	// Debounce is the quiet period before a changed file is reloaded.
	// Zero uses watcher.DefaultDebounceWindow.
	Debounce time.Duration
	// MetricsAddr, when set, serves the resolver metrics over HTTP.
	MetricsAddr string
}

// Watch loads the scene at path, dispatches it and keeps the document in sync
// with the file until ctx is cancelled. A failed initial load is returned;
// failed reloads are logged and watching continues.
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	tracer := a.tracerFor(opts.Trace)
	subsystems := []ports.Subsystem{a.newResolver(opts.Lenient)}
	if a.reporter != nil {
		subsystems = append(subsystems, a.reporter)
	}

	if err := a.reload(ctx, tracer, path, subsystems); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, path); err != nil {
		return zerr.Wrap(err, "failed to watch scene file")
	}

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func(_ []string) {
		if err := a.reload(ctx, tracer, path, subsystems); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to reload scene"))
			return
		}
		a.logger.Info("reloaded " + path)
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if event.Operation == ports.OpRemove {
				a.logger.Warn("scene file removed, waiting for it to come back")
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		debouncer.Stop()
		return a.watcher.Stop()
	})

	if opts.MetricsAddr != "" && a.metricsHandler != nil {
		a.serveMetrics(ctx, gctx, g, opts.MetricsAddr)
	}

	a.logger.Info("watching " + path)
	return g.Wait()
}

func (a *App) serveMetrics(ctx, gctx context.Context, g *errgroup.Group, addr string) {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, a.metricsHandler)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsHeaderTimeout,
	}

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", addr)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownPeriod)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
