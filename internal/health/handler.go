package health

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/response"
	"github.com/seoforge/seoforge/internal/utils"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Status reports which integrations are configured so the wizard can warn
// the operator before they walk through the whole flow.
func (h *Handler) Status(c *fiber.Ctx) error {
	missing := h.cfg.MissingCredentials()

	return response.Success(c, fiber.Map{
		"status": "ok",
		"configured": fiber.Map{
			"ai":         h.cfg.AI.APIKey != "",
			"contentful": h.cfg.Contentful.SpaceID != "" && h.cfg.Contentful.ManagementToken != "",
			"auth":       h.cfg.Auth.Username != "" && (h.cfg.Auth.Password != "" || h.cfg.Auth.PasswordHash != ""),
		},
		"storageMode":        utils.GetStorageMode(),
		"missingCredentials": missing,
	}, "")
}
