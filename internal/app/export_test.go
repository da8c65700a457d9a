package app

import (
	"context"

	"go.trai.ch/xform/internal/core/ports"
)

const MaxDispatchRounds = maxDispatchRounds

// Dispatch runs one dispatch over the pending changes of the store.
func (a *App) Dispatch(ctx context.Context, subsystems ...ports.Subsystem) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatch(ctx, a.tracer, subsystems)
}
