package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func taxonomyKey(siteID uuid.UUID) string {
	return fmt.Sprintf("taxonomy:%s", siteID)
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetTaxonomy returns the cached taxonomy for a site, or nil on a
// miss. Slug indexes are rebuilt after deserialization since the
// lookup maps do not survive the JSON round trip.
func (r *cacheRepository) GetTaxonomy(ctx context.Context, siteID uuid.UUID) (*domain.Taxonomy, error) {
	data, err := r.Get(ctx, taxonomyKey(siteID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var tax domain.Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		r.logger.Error("Failed to unmarshal cached taxonomy",
			zap.String("site_id", siteID.String()), zap.Error(err))
		return nil, fmt.Errorf("unmarshal taxonomy: %w", err)
	}
	tax.BuildIndex()

	return &tax, nil
}

func (r *cacheRepository) SetTaxonomy(ctx context.Context, tax *domain.Taxonomy, ttl time.Duration) error {
	data, err := json.Marshal(tax)
	if err != nil {
		r.logger.Error("Failed to marshal taxonomy",
			zap.String("site_id", tax.SiteID.String()), zap.Error(err))
		return fmt.Errorf("marshal taxonomy: %w", err)
	}

	return r.Set(ctx, taxonomyKey(tax.SiteID), data, ttl)
}

func (r *cacheRepository) InvalidateTaxonomy(ctx context.Context, siteID uuid.UUID) error {
	return r.Delete(ctx, taxonomyKey(siteID))
}
