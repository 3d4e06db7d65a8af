package testhelpers

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/repository/postgres"
)

// NewStoreForTest creates a document store over the test pool
func NewStoreForTest(pool *pgxpool.Pool, logger *zap.Logger) *postgres.DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return postgres.NewDocumentStore(pool, logger)
}
