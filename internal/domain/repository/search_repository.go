package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
	"github.com/google/uuid"
)

// SearchRepository pushes listing documents into the search index.
// Only the import pipeline writes here; the request path never queries it.
type SearchRepository interface {
	// IndexBusinesses upserts documents into the index.
	IndexBusinesses(ctx context.Context, docs []domain.BusinessDocument) error

	// DeleteBusiness removes one document.
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}
