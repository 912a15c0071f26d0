package app

import (
	"io"

	"go.cachet.dev/cachet/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, tracer ports.Tracer) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		Tracer: tracer,
	}
}

// Close releases tracer resources when the active tracer holds any.
func (c *Components) Close() error {
	if closer, ok := c.Tracer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
