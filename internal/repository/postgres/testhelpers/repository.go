package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

func NewSiteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SiteRepository {
	return postgres.NewSiteRepository(NewDBForTest(db, logger))
}

func NewTaxonomyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TaxonomyRepository {
	return postgres.NewTaxonomyRepository(NewDBForTest(db, logger))
}

func NewBusinessRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BusinessRepository {
	return postgres.NewBusinessRepository(NewDBForTest(db, logger))
}

func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger), logger)
}
