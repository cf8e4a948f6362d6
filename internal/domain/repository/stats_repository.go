package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
)

// StatsRepository aggregates admin statistics.
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
