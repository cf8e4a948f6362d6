package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
)

// ResolveUseCase maps an inbound host header to the site that owns it.
type ResolveUseCase struct {
	siteRepo  repository.SiteRepository
	adminHost string
	logger    *zap.Logger
}

func NewResolveUseCase(siteRepo repository.SiteRepository, adminHost string, logger *zap.Logger) *ResolveUseCase {
	return &ResolveUseCase{
		siteRepo:  siteRepo,
		adminHost: NormalizeHost(adminHost),
		logger:    logger,
	}
}

// NormalizeHost strips a port and trailing dot and lowercases the
// host. Site domains are stored lowercase, so lookup is exact match.
func NormalizeHost(raw string) string {
	host := strings.TrimSpace(raw)
	if idx := strings.LastIndex(host, ":"); idx != -1 && !strings.Contains(host[idx:], "]") {
		host = host[:idx]
	}
	host = strings.TrimSuffix(host, ".")
	return strings.ToLower(host)
}

// Resolve returns the owning site for a raw host header. The reserved
// admin host short-circuits to the admin pseudo-site before any store
// read; every other host is looked up verbatim. An unknown host is
// ErrSiteNotFound and never falls back to another tenant.
func (uc *ResolveUseCase) Resolve(ctx context.Context, rawHost string) (*domain.Site, error) {
	host := NormalizeHost(rawHost)

	if host == uc.adminHost {
		return domain.AdminSite, nil
	}

	site, err := uc.siteRepo.GetByDomain(ctx, host)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Site resolved",
		zap.String("host", host),
		zap.String("site_id", site.ID.String()))
	return site, nil
}
