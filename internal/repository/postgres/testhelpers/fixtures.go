package testhelpers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Seed helpers insert one row each and return the generated id.

func SeedState(ctx context.Context, db *sqlx.DB, code, name string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO states (id, code, name) VALUES ($1, $2, $3)`, id, code, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed state %s: %w", code, err)
	}
	return id, nil
}

func SeedVertical(ctx context.Context, db *sqlx.DB, name, slug string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO verticals (id, name, slug) VALUES ($1, $2, $3)`, id, name, slug)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed vertical %s: %w", slug, err)
	}
	return id, nil
}

func SeedCategory(ctx context.Context, db *sqlx.DB, verticalID uuid.UUID, name, slug string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO categories (id, vertical_id, name, slug) VALUES ($1, $2, $3, $4)`,
		id, verticalID, name, slug)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed category %s: %w", slug, err)
	}
	return id, nil
}

func SeedCity(ctx context.Context, db *sqlx.DB, stateID uuid.UUID, name string, population *int64) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO cities (id, state_id, name, population) VALUES ($1, $2, $3, $4)`,
		id, stateID, name, population)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed city %s: %w", name, err)
	}
	return id, nil
}

func SeedSite(ctx context.Context, db *sqlx.DB, name, domain string, verticalID, stateID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO sites (id, name, domain, vertical_id, state_id) VALUES ($1, $2, $3, $4, $5)`,
		id, name, domain, verticalID, stateID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed site %s: %w", domain, err)
	}
	return id, nil
}

func EnableCategory(ctx context.Context, db *sqlx.DB, siteID, categoryID uuid.UUID) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO site_categories (site_id, category_id) VALUES ($1, $2)`, siteID, categoryID)
	return err
}

func EnableCity(ctx context.Context, db *sqlx.DB, siteID, cityID uuid.UUID) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO site_cities (site_id, city_id) VALUES ($1, $2)`, siteID, cityID)
	return err
}
