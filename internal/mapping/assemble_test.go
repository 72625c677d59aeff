package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seoforge/seoforge/internal/schema"
)

func TestAssembleReferencesPriorityOrder(t *testing.T) {
	ids := map[schema.ComponentType][]string{
		schema.TypeFAQSection:   {"faq-1"},
		schema.TypeHero:         {"hero-1"},
		schema.TypeSEOTextBlock: {"seo-1", "seo-2"},
	}
	order := []schema.ComponentType{schema.TypeFAQSection, schema.TypeHero, schema.TypeSEOTextBlock}

	got := AssembleReferences(ids, order)
	assert.Equal(t, []string{"hero-1", "seo-1", "seo-2", "faq-1"}, got)
}

func TestAssembleReferencesUnknownTypesTrail(t *testing.T) {
	other := schema.ComponentType("testimonial")
	ids := map[schema.ComponentType][]string{
		other:           {"t-1"},
		schema.TypeHero: {"hero-1"},
	}
	order := []schema.ComponentType{other, schema.TypeHero}

	got := AssembleReferences(ids, order)
	assert.Equal(t, []string{"hero-1", "t-1"}, got)
}

func TestAssembleReferencesEmpty(t *testing.T) {
	got := AssembleReferences(map[schema.ComponentType][]string{}, nil)
	assert.Empty(t, got)
}

func TestEnsureHeroPrependsStub(t *testing.T) {
	sections := []GeneratedSection{
		{Type: schema.TypeSEOTextBlock, SEOText: &SEOTextSection{}},
	}

	got := EnsureHero(sections, "Airport Transfer")
	require.Len(t, got, 2)
	assert.Equal(t, schema.TypeHero, got[0].Type)
	assert.Equal(t, "Airport Transfer", got[0].Hero.Title)
	assert.Equal(t, "Discover our airport transfer", got[0].Hero.Subtitle)
}

func TestEnsureHeroKeepsExistingHero(t *testing.T) {
	sections := []GeneratedSection{
		{Type: schema.TypeSEOTextBlock, SEOText: &SEOTextSection{}},
		{Type: schema.TypeHero, Hero: &HeroSection{Title: "Real Hero"}},
	}

	got := EnsureHero(sections, "topic")
	require.Len(t, got, 2)

	heroes := 0
	for _, s := range got {
		if s.Type == schema.TypeHero {
			heroes++
		}
	}
	assert.Equal(t, 1, heroes)
	assert.Equal(t, "Real Hero", got[1].Hero.Title)
}

func TestEnsureHeroEmptyTopic(t *testing.T) {
	got := EnsureHero(nil, "")
	require.Len(t, got, 1)
	assert.Equal(t, "Premium Service", got[0].Hero.Title)
}
