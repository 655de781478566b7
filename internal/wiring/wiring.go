// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/keel/internal/adapters/config"
	_ "go.trai.ch/keel/internal/adapters/logger"
	_ "go.trai.ch/keel/internal/adapters/propstore"
	_ "go.trai.ch/keel/internal/adapters/terminal"
	// Register app and engine nodes.
	_ "go.trai.ch/keel/internal/app"
	_ "go.trai.ch/keel/internal/engine/executor"
)
