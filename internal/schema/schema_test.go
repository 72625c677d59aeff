package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateURLPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple keywords", "airport transfer singapore", "/airport-transfer-singapore/"},
		{"punctuation and case", "Luxury Chauffeur, Berlin!!", "/luxury-chauffeur-berlin/"},
		{"multiple spaces", "a   b", "/a-b/"},
		{"leading and trailing noise", "  -hello-  ", "/hello/"},
		{"empty input", "", "/page/"},
		{"existing hyphens", "pre-booked rides", "/pre-booked-rides/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateURLPath(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, URLPathPattern.MatchString(got), "slug must satisfy the urlPath pattern")
		})
	}
}

func TestGenerateMetaDescription(t *testing.T) {
	got := GenerateMetaDescription("Airport Transfer", "changi, private driver")
	assert.Equal(t, "Discover airport transfer with changi, private driver. Professional services designed to meet your needs.", got)

	got = GenerateMetaDescription("Airport Transfer", "")
	assert.Equal(t, "Discover airport transfer. Professional services designed to meet your needs.", got)

	// only the first three secondary keywords are used
	got = GenerateMetaDescription("Tours", "a, b, c, d, e")
	assert.Contains(t, got, "a, b, c.")
	assert.NotContains(t, got, "d")
}

func TestRegistryCoversAllComponentTypes(t *testing.T) {
	for _, ct := range []ComponentType{TypeHero, TypeFAQSection, TypeSEOTextBlock, TypeAccordionItem, TypePage} {
		cs := Get(ct)
		require.NotNil(t, cs, "schema for %s", ct)
		assert.NotEmpty(t, cs.ContentTypeID)
		assert.NotEmpty(t, cs.RequiredFields)

		for _, field := range cs.RequiredFields {
			_, ok := cs.Fields[field]
			assert.True(t, ok, "%s: required field %s must be declared", ct, field)
		}
	}

	assert.Nil(t, Get(ComponentType("nope")))
	assert.Len(t, Types(), 5)
}

func TestPriorityOrder(t *testing.T) {
	assert.Equal(t, []ComponentType{TypeHero, TypeSEOTextBlock, TypeFAQSection}, PriorityOrder)
}

func TestFAQBoundsConstants(t *testing.T) {
	assert.Equal(t, 3, FAQMinQuestions)
	assert.Equal(t, 12, FAQMaxQuestions)

	faq := Get(TypeFAQSection)
	questions := faq.Fields["questions"]
	require.NotNil(t, questions.MinItems)
	require.NotNil(t, questions.MaxItems)
	assert.Equal(t, FAQMinQuestions, *questions.MinItems)
	assert.Equal(t, FAQMaxQuestions, *questions.MaxItems)
}

func TestHeroAIFieldMapping(t *testing.T) {
	hero := Get(TypeHero)
	assert.Equal(t, "name", hero.AIFieldMapping["title"])
	assert.Equal(t, "name", hero.AIFieldMapping["heading"])
	assert.Equal(t, "imageAltText", hero.AIFieldMapping["imageAltText"])
}
