package mapping

import (
	"fmt"
	"strings"

	"github.com/seoforge/seoforge/internal/schema"
)

// AssembleReferences flattens created entry ids into the order sections
// appear on the page: priority types first (hero, seoText, faqs), each in
// original creation order, then any remaining types in encounter order.
func AssembleReferences(idsByType map[schema.ComponentType][]string, encounterOrder []schema.ComponentType) []string {
	ordered := make([]string, 0)

	for _, t := range schema.PriorityOrder {
		ordered = append(ordered, idsByType[t]...)
	}

	seen := map[schema.ComponentType]bool{}
	for _, t := range schema.PriorityOrder {
		seen[t] = true
	}
	for _, t := range encounterOrder {
		if seen[t] {
			continue
		}
		seen[t] = true
		ordered = append(ordered, idsByType[t]...)
	}

	return ordered
}

// EnsureHero guarantees exactly one hero section. When the AI output has
// none, a stub derived from the topic is synthesized and prepended so the
// page always opens with a hero.
func EnsureHero(sections []GeneratedSection, topic string) []GeneratedSection {
	for _, s := range sections {
		if s.Type == schema.TypeHero {
			return sections
		}
	}

	if topic == "" {
		topic = "Premium Service"
	}

	stub := GeneratedSection{
		Type: schema.TypeHero,
		Hero: &HeroSection{
			Title:        topic,
			Subtitle:     fmt.Sprintf("Discover our %s", strings.ToLower(topic)),
			ImageAltText: fmt.Sprintf("%s hero image", topic),
		},
	}

	return append([]GeneratedSection{stub}, sections...)
}
