// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.cachet.dev/cachet/internal/adapters/config"
	_ "go.cachet.dev/cachet/internal/adapters/ecosystem"
	_ "go.cachet.dev/cachet/internal/adapters/fs"
	_ "go.cachet.dev/cachet/internal/adapters/logger"
	_ "go.cachet.dev/cachet/internal/adapters/shell"
	_ "go.cachet.dev/cachet/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.cachet.dev/cachet/internal/app"
)
