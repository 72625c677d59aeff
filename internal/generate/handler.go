// Package generate exposes the wizard's content-generation endpoint. It
// relays the form inputs to the AI client and hands back the structured page
// draft for preview before anything touches the CMS.
package generate

import (
	"encoding/json"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/seoforge/seoforge/internal/ai"
	"github.com/seoforge/seoforge/internal/mapping"
	"github.com/seoforge/seoforge/internal/response"
	"github.com/seoforge/seoforge/internal/schema"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the JSON field names the wizard sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type Request struct {
	MainKeywords        string       `json:"mainKeywords" validate:"required"`
	SecondaryKeywords   string       `json:"secondaryKeywords" validate:"required"`
	Questions           string       `json:"questions"`
	Language            string       `json:"language" validate:"omitempty,oneof=en de es fr"`
	Components          []string     `json:"components" validate:"required,min=1,dive,oneof=hero faqs seoText"`
	ConversationContext []ai.Message `json:"conversationContext"`
}

type Handler struct {
	client *ai.Client
}

func NewHandler(client *ai.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return response.ValidationError(c, validationDetails(err))
	}

	if req.Language == "" {
		req.Language = "en"
	}

	log.Printf("🤖 Generating content for '%s' (%s)", req.MainKeywords, strings.Join(req.Components, ", "))

	result, err := h.client.GenerateContent(c.UserContext(), ai.GenerationParams{
		MainKeywords:        req.MainKeywords,
		SecondaryKeywords:   req.SecondaryKeywords,
		Questions:           req.Questions,
		ContentTypes:        req.Components,
		Language:            req.Language,
		ConversationContext: req.ConversationContext,
	})
	if err != nil {
		log.Printf("❌ AI generation failed: %v", err)
		return response.Error(c, fiber.StatusBadGateway, "AI_ERROR", "Content generation failed", err.Error())
	}

	data, parsed := parseGenerated(result.Content, req)

	payload := fiber.Map{
		"parsed": parsed,
	}
	if parsed {
		payload["content"] = data
	} else {
		payload["content"] = result.Content
	}
	if result.Usage != nil {
		payload["usage"] = result.Usage
	}

	return response.Success(c, payload, "Content generated")
}

// parseGenerated decodes the completion into page data. The model sometimes
// wraps JSON in markdown fences or returns prose; in that case the raw text
// is passed through for the operator to inspect.
func parseGenerated(content string, req Request) (*mapping.PageData, bool) {
	trimmed := stripFences(content)

	var data mapping.PageData
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		log.Printf("⚠️  AI response was not valid JSON: %v", err)
		return nil, false
	}

	if data.MainKeywords == "" {
		data.MainKeywords = req.MainKeywords
	}
	if data.SecondaryKeywords == "" {
		data.SecondaryKeywords = req.SecondaryKeywords
	}
	if data.Language == "" {
		data.Language = req.Language
	}
	if data.MetaDescription == "" {
		data.MetaDescription = schema.GenerateMetaDescription(data.MainKeywords, data.SecondaryKeywords)
	}

	return &data, true
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

func validationDetails(err error) interface{} {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			details[field] = field + " is required"
		case "oneof":
			details[field] = field + " must be one of: " + fe.Param()
		case "min":
			details[field] = field + " needs at least " + fe.Param() + " items"
		default:
			details[field] = field + " is invalid"
		}
	}
	return details
}
