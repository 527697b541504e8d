//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobnest/internal/config"
	"github.com/honeycarbs/jobnest/internal/domain/application"
	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/internal/metrics"
	storage "github.com/honeycarbs/jobnest/internal/storage/neo4j"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// InitializeResources creates Resources backed by Neo4j
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Neo4j
		provideNeo4jConfig,
		provideNeo4jClient,

		// Repositories
		storage.NewJobRepository,
		wire.Bind(new(job.Repository), new(*storage.JobRepository)),
		wire.Bind(new(application.Jobs), new(*storage.JobRepository)),
		storage.NewApplicationRepository,
		wire.Bind(new(application.Repository), new(*storage.ApplicationRepository)),

		// Services
		metrics.NewRecorder,
		wire.Bind(new(application.Recorder), new(*metrics.Recorder)),
		job.NewServiceWithDeps,
		application.NewService,

		// Integrations
		provideSheetsClient,
		newResources,
	)

	return &Resources{}, nil
}
