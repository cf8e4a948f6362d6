package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/pkg/errors"
)

type siteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSiteRepository(db *DB) repository.SiteRepository {
	return &siteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// siteColumns is the select list shared by every site read. Vertical
// and state come along on each fetch: resolution needs the vertical
// slug and terminology defaults in one round trip.
const siteColumns = `
	s.id, s.name, s.domain,
	s.category_singular, s.category_plural,
	s.business_singular, s.business_plural, s.call_to_action,
	s.created_at, s.updated_at,
	v.id, v.name, v.slug,
	v.category_singular, v.category_plural,
	v.business_singular, v.business_plural, v.call_to_action,
	st.id, st.code, st.name
`

const siteFrom = `
	FROM sites s
	JOIN verticals v ON v.id = s.vertical_id
	JOIN states st ON st.id = s.state_id
`

func (r *siteRepository) GetByDomain(ctx context.Context, host string) (*domain.Site, error) {
	query := `SELECT ` + siteColumns + siteFrom + ` WHERE s.domain = $1`

	site, err := r.scanSite(r.db.QueryRowContext(ctx, query, host))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrSiteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get site by domain", zap.String("domain", host), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return site, nil
}

func (r *siteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Site, error) {
	query := `SELECT ` + siteColumns + siteFrom + ` WHERE s.id = $1`

	site, err := r.scanSite(r.db.QueryRowContext(ctx, query, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrSiteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get site by id", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return site, nil
}

func (r *siteRepository) List(ctx context.Context) ([]*domain.Site, error) {
	query := `SELECT ` + siteColumns + siteFrom + ` ORDER BY s.name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list sites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var sites []*domain.Site
	for rows.Next() {
		site, err := r.scanSite(rows)
		if err != nil {
			r.logger.Error("Failed to scan site row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Site rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sites, nil
}

func (r *siteRepository) Create(ctx context.Context, site *domain.Site) error {
	query := `
		INSERT INTO sites (
			id, name, domain, vertical_id, state_id,
			category_singular, category_plural,
			business_singular, business_plural, call_to_action
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`

	_, err := r.db.ExecContext(ctx, query,
		site.ID, site.Name, site.Domain,
		site.Vertical.ID, site.State.ID,
		site.Overrides.CategorySingular, site.Overrides.CategoryPlural,
		site.Overrides.BusinessSingular, site.Overrides.BusinessPlural,
		site.Overrides.CallToAction,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDomainTaken
		}
		r.logger.Error("Failed to create site", zap.String("domain", site.Domain), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *siteRepository) UpdateOverrides(ctx context.Context, id uuid.UUID, overrides domain.Terminology) error {
	query := `
		UPDATE sites SET
			category_singular = $2, category_plural = $3,
			business_singular = $4, business_plural = $5,
			call_to_action = $6, updated_at = now()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id,
		overrides.CategorySingular, overrides.CategoryPlural,
		overrides.BusinessSingular, overrides.BusinessPlural,
		overrides.CallToAction,
	)
	if err != nil {
		r.logger.Error("Failed to update site overrides", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrSiteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *siteRepository) scanSite(row rowScanner) (*domain.Site, error) {
	var site domain.Site
	err := row.Scan(
		&site.ID, &site.Name, &site.Domain,
		&site.Overrides.CategorySingular, &site.Overrides.CategoryPlural,
		&site.Overrides.BusinessSingular, &site.Overrides.BusinessPlural,
		&site.Overrides.CallToAction,
		&site.CreatedAt, &site.UpdatedAt,
		&site.Vertical.ID, &site.Vertical.Name, &site.Vertical.Slug,
		&site.Vertical.Terminology.CategorySingular, &site.Vertical.Terminology.CategoryPlural,
		&site.Vertical.Terminology.BusinessSingular, &site.Vertical.Terminology.BusinessPlural,
		&site.Vertical.Terminology.CallToAction,
		&site.State.ID, &site.State.Code, &site.State.Name,
	)
	if err != nil {
		return nil, err
	}
	return &site, nil
}
