package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics aggregates the admin dashboard counters.
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		BusinessesBySite: make(map[uuid.UUID]int),
		SitesByVertical:  make(map[string]int),
		LastUpdated:      time.Now(),
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sites`).Scan(&stats.TotalSites); err != nil {
		return nil, fmt.Errorf("count sites: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT site_id, COUNT(*)
		FROM businesses
		GROUP BY site_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query businesses by site: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var siteID uuid.UUID
		var count int
		if err := rows.Scan(&siteID, &count); err != nil {
			return nil, fmt.Errorf("scan businesses by site: %w", err)
		}
		stats.BusinessesBySite[siteID] = count
		stats.TotalBusinesses += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("businesses by site rows error: %w", err)
	}

	verticalRows, err := r.db.QueryContext(ctx, `
		SELECT v.slug, COUNT(*)
		FROM sites s
		JOIN verticals v ON v.id = s.vertical_id
		GROUP BY v.slug
	`)
	if err != nil {
		return nil, fmt.Errorf("query sites by vertical: %w", err)
	}
	defer verticalRows.Close()

	for verticalRows.Next() {
		var slug string
		var count int
		if err := verticalRows.Scan(&slug, &count); err != nil {
			return nil, fmt.Errorf("scan sites by vertical: %w", err)
		}
		stats.SitesByVertical[slug] = count
	}
	if err := verticalRows.Err(); err != nil {
		return nil, fmt.Errorf("sites by vertical rows error: %w", err)
	}

	r.logger.Debug("Statistics computed",
		zap.Int("sites", stats.TotalSites),
		zap.Int("businesses", stats.TotalBusinesses))

	return stats, nil
}
