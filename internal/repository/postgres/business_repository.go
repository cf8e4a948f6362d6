package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/pkg/errors"
)

type businessRepository struct {
	db      *sqlx.DB
	logger  *zap.Logger
	builder sq.StatementBuilderType
}

func NewBusinessRepository(db *DB) repository.BusinessRepository {
	return &businessRepository{
		db:      db.DB,
		logger:  db.logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *businessRepository) GetByID(ctx context.Context, siteID, id uuid.UUID) (*domain.Business, error) {
	query := `
		SELECT id, site_id, category_id, city_id, name, address, phone,
		       website, rating, place_ref, created_at, updated_at
		FROM businesses
		WHERE site_id = $1 AND id = $2
	`

	var business domain.Business
	err := r.db.GetContext(ctx, &business, query, siteID, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBusinessNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get business",
			zap.String("site_id", siteID.String()),
			zap.String("id", id.String()),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &business, nil
}

// List filters are composed dynamically: category and city narrow the
// set only when present on the filter.
func (r *businessRepository) List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, int, error) {
	where := sq.Eq{"site_id": filter.SiteID}
	if filter.CategoryID != uuid.Nil {
		where["category_id"] = filter.CategoryID
	}
	if filter.CityID != uuid.Nil {
		where["city_id"] = filter.CityID
	}

	countSQL, countArgs, err := r.builder.
		Select("COUNT(*)").
		From("businesses").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, errors.ErrDatabaseError
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		r.logger.Error("Failed to count businesses", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	listQuery := r.builder.
		Select("id", "site_id", "category_id", "city_id", "name", "address",
			"phone", "website", "rating", "place_ref", "created_at", "updated_at").
		From("businesses").
		Where(where).
		OrderBy("rating DESC NULLS LAST", "name ASC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		listQuery = listQuery.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, errors.ErrDatabaseError
	}

	businesses := []*domain.Business{}
	if err := r.db.SelectContext(ctx, &businesses, listSQL, listArgs...); err != nil {
		r.logger.Error("Failed to list businesses", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return businesses, total, nil
}

// Upsert refreshes listings keyed by (site_id, place_ref) so repeated
// imports update instead of duplicating.
func (r *businessRepository) Upsert(ctx context.Context, businesses []*domain.Business) ([]*domain.Business, error) {
	if len(businesses) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO businesses (
			id, site_id, category_id, city_id, name, address,
			phone, website, rating, place_ref
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (site_id, place_ref) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			website = EXCLUDED.website,
			rating = EXCLUDED.rating,
			updated_at = now()
		RETURNING id, site_id, category_id, city_id, name, address,
		          phone, website, rating, place_ref, created_at, updated_at
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin upsert transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	stored := make([]*domain.Business, 0, len(businesses))
	for _, b := range businesses {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}

		var row domain.Business
		err := tx.QueryRowxContext(ctx, query,
			b.ID, b.SiteID, b.CategoryID, b.CityID, b.Name, b.Address,
			b.Phone, b.Website, b.Rating, b.PlaceRef,
		).StructScan(&row)
		if err != nil {
			r.logger.Error("Failed to upsert business",
				zap.String("place_ref", b.PlaceRef),
				zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stored = append(stored, &row)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit upsert transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stored, nil
}
