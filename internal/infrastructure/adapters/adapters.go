// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"context"

	"github.com/pyyyc/deckprops/internal/application/ports"
	infraconfig "github.com/pyyyc/deckprops/internal/infrastructure/config"
	"github.com/pyyyc/deckprops/internal/infrastructure/output"
	"github.com/pyyyc/deckprops/internal/infrastructure/persistence/memory"
	"github.com/pyyyc/deckprops/internal/infrastructure/system"
	"github.com/pyyyc/deckprops/internal/infrastructure/validation"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.DocumentLoader         = (*infraconfig.DocumentLoader)(nil)
	_ ports.DocumentLinter         = (*validation.SchemaValidator)(nil)
	_ ports.ReportRepository       = (*memory.ReportRepository)(nil)
	_ ports.OutputFormatterFactory = (*output.FormatterFactory)(nil)
	_ ports.SystemConfigProvider   = (*SystemConfigAdapter)(nil)
)

// SystemConfigAdapter adapts system config loader to port interface.
type SystemConfigAdapter struct {
	loader *system.ConfigLoader
}

// NewSystemConfigAdapter creates a new system config adapter.
func NewSystemConfigAdapter() *SystemConfigAdapter {
	return &SystemConfigAdapter{
		loader: system.NewConfigLoader(),
	}
}

// LoadConfig loads system configuration from path, or from the default
// location when path is empty.
func (a *SystemConfigAdapter) LoadConfig(ctx context.Context, path string) (*system.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == "" {
		defaultPath, err := system.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return a.loader.Load(path)
}
