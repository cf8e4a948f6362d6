package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

const (
	statsCacheKey = "stats:platform"
	statsCacheTTL = time.Hour
)

// StatsUseCase serves platform statistics for the admin dashboard.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetStatistics returns platform statistics, cached for an hour.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	raw, err := uc.cacheRepo.Get(ctx, statsCacheKey)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	} else if raw != nil {
		var cached domain.Statistics
		if err := json.Unmarshal(raw, &cached); err == nil {
			uc.logger.Debug("Statistics fetched from cache")
			return &cached, nil
		}
		uc.logger.Warn("Discarding undecodable cached stats")
	}

	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := uc.cacheRepo.Set(ctx, statsCacheKey, raw, statsCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return stats, nil
}

// RefreshStatistics bypasses the cache and rewrites it.
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh statistics: %w", err)
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := uc.cacheRepo.Set(ctx, statsCacheKey, raw, statsCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache refreshed stats", zap.Error(err))
		}
	}

	return stats, nil
}
