package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/config"
	"github.com/directory-platform/internal/delivery/http/handler"
	"github.com/directory-platform/internal/delivery/http/middleware"
	"github.com/directory-platform/internal/pkg/errors"
	"github.com/directory-platform/internal/pkg/utils"
	"github.com/directory-platform/internal/usecase"
)

// Server is the Fiber HTTP server. The admin API and every tenant site
// share one listener; the tenant middleware decides which face of the
// platform a request sees.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	resolveUC *usecase.ResolveUseCase

	pageHandler   *handler.PageHandler
	siteHandler   *handler.SiteHandler
	importHandler *handler.ImportHandler
	statsHandler  *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	resolveUC *usecase.ResolveUseCase,
	pageHandler *handler.PageHandler,
	siteHandler *handler.SiteHandler,
	importHandler *handler.ImportHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Directory Platform",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		resolveUC:     resolveUC,
		pageHandler:   pageHandler,
		siteHandler:   siteHandler,
		importHandler: importHandler,
		statsHandler:  statsHandler,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Host-independent endpoints, registered ahead of tenant resolution.
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Use(middleware.Tenant(s.resolveUC, s.logger))

	// Admin API, reachable only on the admin host.
	api := s.app.Group("/api/v1", requireAdminHost())

	api.Get("/sites", s.siteHandler.ListSites)
	api.Post("/sites", s.siteHandler.CreateSite)
	api.Get("/sites/:id", s.siteHandler.GetSite)
	api.Put("/sites/:id/categories/:category_id", s.siteHandler.SetCategoryEnabled)
	api.Put("/sites/:id/cities/:city_id", s.siteHandler.SetCityEnabled)
	api.Post("/sites/:id/import", s.importHandler.EnqueueImport)

	api.Get("/verticals/:id/categories", s.siteHandler.ListVerticalCategories)
	api.Get("/states/:id/cities", s.siteHandler.ListStateCities)

	api.Get("/stats", s.statsHandler.GetStatistics)
	api.Post("/stats/refresh", s.statsHandler.RefreshStatistics)

	// Everything else is a tenant page URL owned by the route grammar.
	s.app.Get("/*", s.pageHandler.RenderPage)
}

// requireAdminHost hides the admin API from tenant hosts. A tenant
// request to /api/v1 gets the same 404 a bad page URL would.
func requireAdminHost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		site := middleware.SiteFromCtx(c)
		if site == nil || !site.IsAdmin {
			return utils.SendError(c, errors.ErrRouteNotFound)
		}
		return c.Next()
	}
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
