package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

// ImportUseCase owns the places-import pipeline: the admin side fans a
// site's taxonomy out into per-cell jobs, the worker side turns one
// job into upserted and indexed listings.
type ImportUseCase struct {
	siteRepo     repository.SiteRepository
	taxonomyUC   *TaxonomyUseCase
	businessRepo repository.BusinessRepository
	placesRepo   repository.PlacesRepository
	searchRepo   repository.SearchRepository
	streamRepo   repository.StreamRepository
	logger       *zap.Logger
	resultLimit  int
}

func NewImportUseCase(
	siteRepo repository.SiteRepository,
	taxonomyUC *TaxonomyUseCase,
	businessRepo repository.BusinessRepository,
	placesRepo repository.PlacesRepository,
	searchRepo repository.SearchRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	resultLimit int,
) *ImportUseCase {
	return &ImportUseCase{
		siteRepo:     siteRepo,
		taxonomyUC:   taxonomyUC,
		businessRepo: businessRepo,
		placesRepo:   placesRepo,
		searchRepo:   searchRepo,
		streamRepo:   streamRepo,
		logger:       logger,
		resultLimit:  resultLimit,
	}
}

// EnqueueSiteImport publishes one import job per enabled
// (category x city) cell of the site. Returns the number of jobs queued.
func (uc *ImportUseCase) EnqueueSiteImport(ctx context.Context, siteID uuid.UUID) (int, error) {
	site, err := uc.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return 0, err
	}

	tax, err := uc.taxonomyUC.Load(ctx, siteID)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, category := range tax.Categories {
		for _, city := range tax.Cities {
			job := domain.PlacesImportJob{
				JobID:        uuid.New(),
				SiteID:       site.ID,
				CategoryID:   category.ID,
				CategoryName: category.Name,
				CityID:       city.ID,
				CityName:     city.Name,
				StateCode:    site.State.Code,
			}
			if err := uc.streamRepo.Publish(ctx, domain.StreamPlacesImport, job); err != nil {
				return queued, fmt.Errorf("publish import job: %w", err)
			}
			queued++
		}
	}

	uc.logger.Info("Import jobs enqueued",
		zap.String("site_id", siteID.String()),
		zap.Int("jobs", queued))
	return queued, nil
}

// ProcessJob imports one (site, category, city) cell: query the places
// API, upsert the listings, push documents to the search index.
func (uc *ImportUseCase) ProcessJob(ctx context.Context, job *domain.PlacesImportJob) (*domain.PlacesImportResult, error) {
	places, err := uc.placesRepo.SearchPlaces(ctx, job.Query(), uc.resultLimit)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}

	if len(places) == 0 {
		uc.logger.Info("No places found for job",
			zap.String("job_id", job.JobID.String()),
			zap.String("query", job.Query()))
		return &domain.PlacesImportResult{JobID: job.JobID, SiteID: job.SiteID}, nil
	}

	businesses := make([]*domain.Business, 0, len(places))
	for _, p := range places {
		businesses = append(businesses, &domain.Business{
			SiteID:     job.SiteID,
			CategoryID: job.CategoryID,
			CityID:     job.CityID,
			Name:       p.Name,
			Address:    p.Address,
			Phone:      p.Phone,
			Website:    p.Website,
			Rating:     p.Rating,
			PlaceRef:   p.Ref,
		})
	}

	stored, err := uc.businessRepo.Upsert(ctx, businesses)
	if err != nil {
		return nil, fmt.Errorf("upsert businesses: %w", err)
	}

	docs := make([]domain.BusinessDocument, 0, len(stored))
	for _, b := range stored {
		docs = append(docs, domain.BusinessDocument{
			ID:       b.ID,
			SiteID:   b.SiteID,
			Name:     b.Name,
			Category: job.CategoryName,
			City:     job.CityName,
			Address:  b.Address,
			Rating:   b.Rating,
		})
	}
	if err := uc.searchRepo.IndexBusinesses(ctx, docs); err != nil {
		// The rows are durable; indexing is retried on the next import
		// run. Surface the failure without losing the upsert.
		uc.logger.Error("Failed to index imported businesses",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
	}

	uc.logger.Info("Import job processed",
		zap.String("job_id", job.JobID.String()),
		zap.Int("imported", len(stored)))

	return &domain.PlacesImportResult{
		JobID:    job.JobID,
		SiteID:   job.SiteID,
		Imported: len(stored),
	}, nil
}

// PublishResult pushes a job outcome onto the done stream.
func (uc *ImportUseCase) PublishResult(ctx context.Context, result *domain.PlacesImportResult) error {
	return uc.streamRepo.Publish(ctx, domain.StreamPlacesDone, result)
}
