package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/pkg/errors"
)

type taxonomyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTaxonomyRepository(db *DB) repository.TaxonomyRepository {
	return &taxonomyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetEnabledCategories returns the site's enabled categories ordered
// by name. The ordering is part of the taxonomy determinism contract.
func (r *taxonomyRepository) GetEnabledCategories(ctx context.Context, siteID uuid.UUID) ([]domain.Category, error) {
	query := `
		SELECT c.id, c.vertical_id, c.name, c.slug
		FROM site_categories sc
		JOIN categories c ON c.id = sc.category_id
		WHERE sc.site_id = $1
		ORDER BY c.name ASC
	`

	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, siteID); err != nil {
		r.logger.Error("Failed to load enabled categories",
			zap.String("site_id", siteID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return categories, nil
}

// GetEnabledCities returns the site's enabled cities ordered by
// population descending with nulls last, then name ascending, which
// fixes menu order and collision precedence deterministically.
func (r *taxonomyRepository) GetEnabledCities(ctx context.Context, siteID uuid.UUID) ([]domain.City, error) {
	query := `
		SELECT ci.id, ci.state_id, ci.name, ci.population
		FROM site_cities sc
		JOIN cities ci ON ci.id = sc.city_id
		WHERE sc.site_id = $1
		ORDER BY ci.population DESC NULLS LAST, ci.name ASC
	`

	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, query, siteID); err != nil {
		r.logger.Error("Failed to load enabled cities",
			zap.String("site_id", siteID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cities, nil
}

func (r *taxonomyRepository) ListVerticalCategories(ctx context.Context, verticalID uuid.UUID) ([]domain.Category, error) {
	query := `
		SELECT id, vertical_id, name, slug
		FROM categories
		WHERE vertical_id = $1
		ORDER BY name ASC
	`

	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, verticalID); err != nil {
		r.logger.Error("Failed to list vertical categories",
			zap.String("vertical_id", verticalID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return categories, nil
}

func (r *taxonomyRepository) ListStateCities(ctx context.Context, stateID uuid.UUID) ([]domain.City, error) {
	query := `
		SELECT id, state_id, name, population
		FROM cities
		WHERE state_id = $1
		ORDER BY population DESC NULLS LAST, name ASC
	`

	cities := []domain.City{}
	if err := r.db.SelectContext(ctx, &cities, query, stateID); err != nil {
		r.logger.Error("Failed to list state cities",
			zap.String("state_id", stateID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cities, nil
}

func (r *taxonomyRepository) SetCategoryEnabled(ctx context.Context, siteID, categoryID uuid.UUID, enabled bool) error {
	if enabled {
		query := `
			INSERT INTO site_categories (site_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`
		if _, err := r.db.ExecContext(ctx, query, siteID, categoryID); err != nil {
			r.logger.Error("Failed to enable category",
				zap.String("site_id", siteID.String()),
				zap.String("category_id", categoryID.String()),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
		return nil
	}

	query := `DELETE FROM site_categories WHERE site_id = $1 AND category_id = $2`
	if _, err := r.db.ExecContext(ctx, query, siteID, categoryID); err != nil {
		r.logger.Error("Failed to disable category",
			zap.String("site_id", siteID.String()),
			zap.String("category_id", categoryID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *taxonomyRepository) SetCityEnabled(ctx context.Context, siteID, cityID uuid.UUID, enabled bool) error {
	if enabled {
		query := `
			INSERT INTO site_cities (site_id, city_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`
		if _, err := r.db.ExecContext(ctx, query, siteID, cityID); err != nil {
			r.logger.Error("Failed to enable city",
				zap.String("site_id", siteID.String()),
				zap.String("city_id", cityID.String()),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
		return nil
	}

	query := `DELETE FROM site_cities WHERE site_id = $1 AND city_id = $2`
	if _, err := r.db.ExecContext(ctx, query, siteID, cityID); err != nil {
		r.logger.Error("Failed to disable city",
			zap.String("site_id", siteID.String()),
			zap.String("city_id", cityID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}
