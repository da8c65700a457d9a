package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxDispatchRounds bounds how often subsystems may react to their own writes
// before the dispatch is abandoned.
const maxDispatchRounds = 32

// dispatch drains the pending changes and hands each batch to every subsystem
// in order until the store settles. The caller holds mu.
func (a *App) dispatch(ctx context.Context, tracer trace.Tracer, subsystems []ports.Subsystem) error {
	for round := 1; ; round++ {
		changes := a.store.TakeChanges()
		if len(changes) == 0 {
			return nil
		}
		if round > maxDispatchRounds {
			err := zerr.With(zerr.Wrap(domain.ErrDispatchLimit, "subsystems kept writing"), "rounds", maxDispatchRounds)
			return zerr.With(err, "pending", len(changes))
		}

		_, span := tracer.Start(ctx, "dispatch", trace.WithAttributes(
			attribute.Int("dispatch.round", round),
			attribute.Int("dispatch.changes", len(changes)),
		))
		for _, s := range subsystems {
			s.OnPropertyChanged(a.store, changes)
		}
		span.End()
	}
}

// reload loads the scene, applies it and dispatches the resulting changes.
func (a *App) reload(ctx context.Context, tracer trace.Tracer, path string, subsystems []ports.Subsystem) error {
	ctx, span := tracer.Start(ctx, "reload", trace.WithAttributes(attribute.String("scene.path", path)))
	defer span.End()

	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.load(path)
	if err == nil {
		err = a.dispatch(ctx, tracer, subsystems)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
