// Package publish drives the CMS side of the wizard: it takes an approved
// page draft and materializes it as draft entries, optionally batched into a
// release.
package publish

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/seoforge/seoforge/internal/mapping"
	"github.com/seoforge/seoforge/internal/publisher"
	"github.com/seoforge/seoforge/internal/response"
)

type ReleaseConfig struct {
	WithRelease bool   `json:"withRelease"`
	Title       string `json:"title"`
}

type Request struct {
	GeneratedContent *mapping.PageData `json:"generatedContent"`
	ImageURLs        map[string]string `json:"imageUrls"`
	ReleaseConfig    *ReleaseConfig    `json:"releaseConfig"`
}

type Handler struct {
	pub *publisher.Publisher
}

func NewHandler(pub *publisher.Publisher) *Handler {
	return &Handler{pub: pub}
}

func (h *Handler) Publish(c *fiber.Ctx) error {
	if h.pub == nil {
		return response.InternalError(c, "CMS is not configured on this server")
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if req.GeneratedContent == nil {
		return response.ValidationError(c, map[string]string{
			"generatedContent": "generatedContent is required",
		})
	}
	if len(req.GeneratedContent.GeneratedSections) == 0 && req.GeneratedContent.MainKeywords == "" {
		return response.ValidationError(c, map[string]string{
			"generatedContent": "generatedContent has no sections and no keywords",
		})
	}

	opts := publisher.Options{
		ImageURLs: req.ImageURLs,
	}
	if req.ReleaseConfig != nil {
		opts.WithRelease = req.ReleaseConfig.WithRelease
		opts.ReleaseTitle = releaseTitle(req.ReleaseConfig.Title, req.GeneratedContent)
	}

	log.Printf("📦 Publishing page for '%s'", req.GeneratedContent.MainKeywords)

	result := h.pub.Publish(c.UserContext(), req.GeneratedContent, opts)
	if !result.Success {
		return response.Error(c, fiber.StatusInternalServerError, "PUBLISH_FAILED", "Publishing failed", result)
	}

	return response.Created(c, result, "Page published to CMS as draft")
}

func releaseTitle(configured string, data *mapping.PageData) string {
	if configured != "" {
		return configured
	}
	if data.MetaTitle != "" {
		return data.MetaTitle
	}
	return "AI Generated Page Release"
}
