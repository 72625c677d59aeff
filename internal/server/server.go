package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seoforge/seoforge/internal/ai"
	"github.com/seoforge/seoforge/internal/auth"
	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/contentful"
	"github.com/seoforge/seoforge/internal/generate"
	"github.com/seoforge/seoforge/internal/health"
	"github.com/seoforge/seoforge/internal/publish"
	"github.com/seoforge/seoforge/internal/publisher"
)

// New wires the handlers to their integrations and returns the configured
// app. The contentful client may be nil when credentials are missing; the
// publish route reports that instead of the server refusing to start.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Static("/uploads", "./uploads", fiber.Static{
		Compress:  true,
		ByteRange: true,
		Browse:    false,
		MaxAge:    3600,
	})

	aiClient := ai.NewClient(cfg.AI)
	cmsClient := contentful.NewClient(cfg.Contentful)

	var pub *publisher.Publisher
	if cmsClient != nil {
		pub = publisher.New(cmsClient, cfg.Contentful.Locale, cfg.Contentful.DefaultAssetID)
	}

	deps := &Deps{
		Config:   cfg,
		Auth:     auth.NewHandler(auth.NewService(cfg.Auth)),
		Health:   health.NewHandler(cfg),
		Generate: generate.NewHandler(aiClient),
		Publish:  publish.NewHandler(pub),
	}

	SetupRoutes(app, deps)

	return app
}
