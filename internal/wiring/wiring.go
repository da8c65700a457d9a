// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xform/internal/adapters/coerce"
	_ "go.trai.ch/xform/internal/adapters/config"
	_ "go.trai.ch/xform/internal/adapters/logger"
	_ "go.trai.ch/xform/internal/adapters/memdoc"
	_ "go.trai.ch/xform/internal/adapters/metrics"
	_ "go.trai.ch/xform/internal/adapters/report"
	_ "go.trai.ch/xform/internal/adapters/telemetry"
	_ "go.trai.ch/xform/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/xform/internal/app"
)
