package server

import (
	"time"

	"github.com/seoforge/seoforge/internal/auth"
	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/generate"
	"github.com/seoforge/seoforge/internal/health"
	"github.com/seoforge/seoforge/internal/media"
	"github.com/seoforge/seoforge/internal/publish"
	"github.com/seoforge/seoforge/internal/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Deps struct {
	Config   *config.Config
	Auth     *auth.Handler
	Health   *health.Handler
	Generate *generate.Handler
	Publish  *publish.Handler
}

func SetupRoutes(app *fiber.App, deps *Deps) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.Config.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	api := app.Group("/api")

	api.Get("/health", deps.Health.Status)

	// ==========================================
	// AUTH ROUTES (No authentication required)
	// ==========================================
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.TooManyRequests(c, "Too many login attempts, try again later")
		},
	}), deps.Auth.Login)
	authGroup.Post("/verify", deps.Auth.Verify)
	authGroup.Get("/status", deps.Auth.Status)
	authGroup.Get("/google/login", deps.Auth.GoogleLogin)
	authGroup.Get("/google/callback", deps.Auth.GoogleCallback)

	// ==========================================
	// WIZARD ROUTES (Session token required)
	// ==========================================
	api.Post("/generate", auth.JWTProtected(), limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return response.TooManyRequests(c, "Generation rate limit exceeded")
		},
	}), deps.Generate.Generate)

	api.Post("/publish", auth.JWTProtected(), deps.Publish.Publish)

	api.Post("/media/upload", auth.JWTProtected(), media.UploadHandler)
}
