// Package app assembles the services behind the HTTP and MCP surfaces.
package app

import (
	"context"

	"github.com/honeycarbs/jobnest/internal/config"
	"github.com/honeycarbs/jobnest/internal/domain/application"
	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/internal/metrics"
	"github.com/honeycarbs/jobnest/internal/storage/memory"
	"github.com/honeycarbs/jobnest/pkg/logging"
	n4j "github.com/honeycarbs/jobnest/pkg/neo4j"
	sheetsclient "github.com/honeycarbs/jobnest/pkg/sheets"
)

// Resources holds the process-wide services
type Resources struct {
	Jobs         job.Service
	Applications *application.Service
	Sheets       *sheetsclient.Client
	Neo4jClient  *n4j.Client
}

// Close releases the store connection
func (r *Resources) Close(ctx context.Context) error {
	if r.Neo4jClient != nil {
		return r.Neo4jClient.Close(ctx)
	}
	return nil
}

// Build picks the store configured by STORE_DRIVER
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	if cfg.StoreDriver == config.StoreMemory {
		return NewMemoryResources(ctx, cfg, logger)
	}

	res, err := InitializeResources(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)
	return res, nil
}

// NewMemoryResources wires the services over an in-memory store
func NewMemoryResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	store := memory.New()

	jobs, err := job.NewServiceWithDeps(store, logger)
	if err != nil {
		return nil, err
	}
	apps, err := application.NewService(store, store, metrics.NewRecorder(), logger)
	if err != nil {
		return nil, err
	}

	logger.Warn("using in-memory store, data is lost on restart")
	return newResources(jobs, apps, provideSheetsClient(ctx, cfg, logger), nil), nil
}

// provideNeo4jConfig extracts Neo4j config from main config
func provideNeo4jConfig(cfg config.Config) n4j.Config {
	return n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	}
}

// provideNeo4jClient connects to Neo4j and applies the schema
func provideNeo4jClient(ctx context.Context, cfg n4j.Config) (*n4j.Client, error) {
	client, err := n4j.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := client.EnsureSchema(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}
	return client, nil
}

// provideSheetsClient returns nil when no credentials are configured or the
// client cannot be created; sheets_export then reports itself unavailable
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) *sheetsclient.Client {
	if cfg.SheetsCredentialsPath == "" {
		return nil
	}
	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.SheetsCredentialsPath})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return nil
	}
	return client
}

func newResources(
	jobs job.Service,
	apps *application.Service,
	sheets *sheetsclient.Client,
	neo4jClient *n4j.Client,
) *Resources {
	return &Resources{
		Jobs:         jobs,
		Applications: apps,
		Sheets:       sheets,
		Neo4jClient:  neo4jClient,
	}
}
