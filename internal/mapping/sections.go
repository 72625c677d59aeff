package mapping

import (
	"encoding/json"

	"github.com/seoforge/seoforge/internal/schema"
)

// GeneratedSection is one unit of AI output, tagged by component type.
// Exactly one of the payload fields is populated; Raw keeps the original
// object for unknown types so they can be reported instead of dropped.
type GeneratedSection struct {
	Type    schema.ComponentType
	Hero    *HeroSection
	FAQ     *FAQSection
	SEOText *SEOTextSection
	Raw     json.RawMessage
}

type HeroSection struct {
	Title        string `json:"title"`
	Heading      string `json:"heading"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	CTAText      string `json:"ctaText"`
	CTALink      string `json:"ctaLink"`
	ImageAltText string `json:"imageAltText"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQSection struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

type SEOTextContent struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ImagePosition    string `json:"imagePosition"`
	ImageAltText     string `json:"imageAltText"`
	ShortDescription string `json:"shortDescription"`
}

type SEOTextSection struct {
	Content SEOTextContent `json:"content"`
}

// PageData is the AI output envelope the publish flow consumes.
type PageData struct {
	MainKeywords      string             `json:"mainKeywords"`
	SecondaryKeywords string             `json:"secondaryKeywords"`
	Language          string             `json:"language"`
	MetaTitle         string             `json:"metaTitle"`
	MetaDescription   string             `json:"metaDescription"`
	GeneratedSections []GeneratedSection `json:"generatedSections"`
	Metadata          *PageMetadata      `json:"metadata,omitempty"`
}

type PageMetadata struct {
	KeywordsUsed      []string `json:"keywordsUsed,omitempty"`
	InternalLinksUsed []string `json:"internalLinksUsed,omitempty"`
	GeneratedAt       string   `json:"generatedAt,omitempty"`
}

// UnmarshalJSON decodes a section by its type tag. Unknown types keep the
// raw object; the orchestrator skips them with a diagnostic.
func (s *GeneratedSection) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type schema.ComponentType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	s.Type = tag.Type
	switch tag.Type {
	case schema.TypeHero:
		s.Hero = &HeroSection{}
		return json.Unmarshal(data, s.Hero)
	case schema.TypeFAQSection:
		s.FAQ = &FAQSection{}
		return json.Unmarshal(data, s.FAQ)
	case schema.TypeSEOTextBlock:
		s.SEOText = &SEOTextSection{}
		return json.Unmarshal(data, s.SEOText)
	default:
		s.Raw = append(json.RawMessage(nil), data...)
		return nil
	}
}

// MarshalJSON re-emits the wire shape with the type tag inlined.
func (s GeneratedSection) MarshalJSON() ([]byte, error) {
	switch {
	case s.Hero != nil:
		return tagged(schema.TypeHero, s.Hero)
	case s.FAQ != nil:
		return tagged(schema.TypeFAQSection, s.FAQ)
	case s.SEOText != nil:
		return tagged(schema.TypeSEOTextBlock, s.SEOText)
	case s.Raw != nil:
		return s.Raw, nil
	default:
		return json.Marshal(map[string]interface{}{"type": s.Type})
	}
}

func tagged(t schema.ComponentType, payload interface{}) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	m["type"] = t
	return json.Marshal(m)
}
