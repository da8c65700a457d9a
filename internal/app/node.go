package app

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/xform/internal/adapters/coerce"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/memdoc"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			memdoc.NodeID,
			coerce.NodeID,
			logger.NodeID,
			metrics.NodeID,
			watcher.NodeID,
			report.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.DocumentLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SceneStore](ctx)
	if err != nil {
		return nil, err
	}

	coercer, err := graft.Dep[ports.Coercer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	resolverMetrics, err := graft.Dep[*metrics.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	printer, err := graft.Dep[*report.Printer](ctx)
	if err != nil {
		return nil, err
	}

	spanLog, err := graft.Dep[*sdktrace.TracerProvider](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, store, coercer, log, resolverMetrics, fileWatcher).
		WithReporter(printer).
		WithMetricsHandler(resolverMetrics.Handler()).
		WithSpanLog(spanLog), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
