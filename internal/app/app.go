// Package app implements the application layer for xform.
package app

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/xform/internal/engine/transform"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the spans emitted by the App.
const TracerName = "go.trai.ch/xform/internal/app"

// App represents the main application logic.
type App struct {
	loader   ports.DocumentLoader
	store    ports.SceneStore
	coercer  ports.Coercer
	logger   ports.Logger
	metrics  ports.ResolverMetrics
	watcher  ports.Watcher
	reporter ports.Subsystem

	metricsHandler http.Handler
	tracer         trace.Tracer
	// spanLog receives spans when an operation runs with Trace set.
	spanLog trace.TracerProvider

	// mu gives each Apply and dispatch exclusive access to the store.
	mu sync.Mutex
}

// New creates a new App instance.
func New(
	loader ports.DocumentLoader,
	store ports.SceneStore,
	coercer ports.Coercer,
	log ports.Logger,
	metrics ports.ResolverMetrics,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		store:   store,
		coercer: coercer,
		logger:  log,
		metrics: metrics,
		watcher: watcher,
		tracer:  otel.Tracer(TracerName),
	}
}

// WithReporter registers the subsystem that receives every dispatched batch
// after the resolver in watch mode.
func (a *App) WithReporter(reporter ports.Subsystem) *App {
	a.reporter = reporter
	return a
}

// WithMetricsHandler sets the handler served on WatchOptions.MetricsAddr.
func (a *App) WithMetricsHandler(h http.Handler) *App {
	a.metricsHandler = h
	return a
}

// WithTracerProvider replaces the global tracer provider.
// This is primarily used for testing with an in-memory exporter.
func (a *App) WithTracerProvider(tp trace.TracerProvider) *App {
	a.tracer = tp.Tracer(TracerName)
	return a
}

// WithSpanLog sets the provider whose tracer is used when an operation runs
// with Trace set.
func (a *App) WithSpanLog(tp trace.TracerProvider) *App {
	a.spanLog = tp
	return a
}

// tracerFor returns the span log tracer when traced is set and one is
// configured, and the default tracer otherwise.
func (a *App) tracerFor(traced bool) trace.Tracer {
	if traced && a.spanLog != nil {
		return a.spanLog.Tracer(TracerName)
	}
	return a.tracer
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Lenient bool
	// Trace logs every dispatch span.
	Trace bool
}

// Result is the resolved transform of one entity.
type Result struct {
	Name   string
	Matrix domain.Matrix
}

// Resolve loads the scene at path and resolves the transforms of the named
// entities. With no names every entity carrying a transform is resolved, in
// name order. Results hold every entity that resolved; the error joins the
// failures of the others under domain.ErrResolveFailed.
func (a *App) Resolve(ctx context.Context, path string, names []string, opts ResolveOptions) ([]Result, error) {
	resolver := a.newResolver(opts.Lenient)
	tracer := a.tracerFor(opts.Trace)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.load(path); err != nil {
		return nil, err
	}
	// A fresh resolver has nothing cached, so the initial batch carries no news.
	a.store.TakeChanges()

	if len(names) == 0 {
		names = a.transformOwners()
	}

	results := make([]Result, 0, len(names))
	var errs error
	for _, name := range names {
		m, err := a.resolveNamed(resolver, name)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		results = append(results, Result{Name: name, Matrix: m})
	}

	if err := a.dispatch(ctx, tracer, []ports.Subsystem{resolver}); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return results, errors.Join(domain.ErrResolveFailed, errs)
	}
	return results, nil
}

func (a *App) resolveNamed(resolver *transform.Resolver, name string) (domain.Matrix, error) {
	id, err := a.store.Lookup(name)
	if err != nil {
		return domain.Matrix{}, zerr.With(err, "entity_name", name)
	}
	m, err := resolver.Resolve(a.store, id)
	if err != nil {
		return domain.Matrix{}, zerr.With(err, "entity_name", name)
	}
	return m, nil
}

// transformOwners returns the names of the entities that carry a transform.
func (a *App) transformOwners() []string {
	var names []string
	for _, e := range a.store.Entities() {
		if _, err := a.store.PropertyExpression(e.ID, domain.KeyTransform); err == nil {
			names = append(names, e.Name)
		}
	}
	return names
}

func (a *App) newResolver(lenient bool) *transform.Resolver {
	return transform.NewResolver(a.coercer, a.logger, a.metrics).WithLenient(lenient)
}

// load reads the scene and applies it to the store. The caller holds mu.
func (a *App) load(path string) error {
	scene, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load scene")
	}
	if err := a.store.Apply(scene); err != nil {
		return zerr.Wrap(err, "failed to apply scene")
	}
	return nil
}
