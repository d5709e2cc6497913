// Package container provides dependency injection for the application.
package container

import (
	"context"
	"log/slog"

	"github.com/pyyyc/deckprops/internal/application/ports"
	"github.com/pyyyc/deckprops/internal/application/services"
	"github.com/pyyyc/deckprops/internal/domain/entities"
	"github.com/pyyyc/deckprops/internal/infrastructure/adapters"
	infraconfig "github.com/pyyyc/deckprops/internal/infrastructure/config"
	"github.com/pyyyc/deckprops/internal/infrastructure/output"
	"github.com/pyyyc/deckprops/internal/infrastructure/persistence/memory"
	"github.com/pyyyc/deckprops/internal/infrastructure/system"
	"github.com/pyyyc/deckprops/internal/infrastructure/validation"
)

// Container holds all application dependencies.
type Container struct {
	documentLoader    *infraconfig.DocumentLoader
	schemaValidator   *validation.SchemaValidator
	registry          *entities.Registry
	reports           *memory.ReportRepository
	formatters        ports.OutputFormatterFactory
	checkDocumentsUse *services.CheckDocumentsUseCase
	systemCfg         *system.Config
	logger            *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	Registry         *entities.Registry
	SystemConfigPath string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = entities.DefaultRegistry()
	}

	// Load system config
	systemConfigAdapter := adapters.NewSystemConfigAdapter()
	systemCfg, err := systemConfigAdapter.LoadConfig(context.TODO(), opts.SystemConfigPath)
	if err != nil {
		opts.Logger.Debug("failed to load system config, using defaults", "error", err)
		systemCfg = system.DefaultConfig()
	}

	documentLoader := infraconfig.NewDocumentLoader()
	schemaValidator := validation.NewSchemaValidator()
	reports := memory.NewReportRepository()

	checkDocumentsUse := services.NewCheckDocumentsUseCase(
		documentLoader,
		schemaValidator,
		opts.Registry,
		reports,
		opts.Logger,
	)

	return &Container{
		documentLoader:    documentLoader,
		schemaValidator:   schemaValidator,
		registry:          opts.Registry,
		reports:           reports,
		formatters:        output.NewFormatterFactory(),
		checkDocumentsUse: checkDocumentsUse,
		systemCfg:         systemCfg,
		logger:            opts.Logger,
	}, nil
}

// CheckDocumentsUseCase returns the check documents use case.
func (c *Container) CheckDocumentsUseCase() *services.CheckDocumentsUseCase {
	return c.checkDocumentsUse
}

// DocumentLoader returns the document loader.
func (c *Container) DocumentLoader() *infraconfig.DocumentLoader {
	return c.documentLoader
}

// SchemaValidator returns the JSON Schema validator.
func (c *Container) SchemaValidator() *validation.SchemaValidator {
	return c.schemaValidator
}

// Registry returns the entity kind registry.
func (c *Container) Registry() *entities.Registry {
	return c.registry
}

// Reports returns the report repository.
func (c *Container) Reports() *memory.ReportRepository {
	return c.reports
}

// Formatters returns the output formatter factory.
func (c *Container) Formatters() ports.OutputFormatterFactory {
	return c.formatters
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
