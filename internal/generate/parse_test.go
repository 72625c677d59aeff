package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripFences("  {\"a\":1}  "))
}

func TestParseGeneratedFillsDefaults(t *testing.T) {
	req := Request{
		MainKeywords:      "airport transfer",
		SecondaryKeywords: "changi",
		Language:          "en",
	}

	data, parsed := parseGenerated(`{"metaTitle": "Airport Transfer", "generatedSections": []}`, req)
	require.True(t, parsed)
	assert.Equal(t, "airport transfer", data.MainKeywords)
	assert.Equal(t, "changi", data.SecondaryKeywords)
	assert.Equal(t, "en", data.Language)
	assert.NotEmpty(t, data.MetaDescription)
}

func TestParseGeneratedKeepsAIValues(t *testing.T) {
	req := Request{MainKeywords: "fallback", Language: "en"}

	data, parsed := parseGenerated(`{
		"mainKeywords": "from the model",
		"metaDescription": "model description",
		"generatedSections": [{"type": "hero", "title": "H"}]
	}`, req)
	require.True(t, parsed)
	assert.Equal(t, "from the model", data.MainKeywords)
	assert.Equal(t, "model description", data.MetaDescription)
	require.Len(t, data.GeneratedSections, 1)
}

func TestParseGeneratedRejectsProse(t *testing.T) {
	data, parsed := parseGenerated("Sorry, I cannot do that.", Request{})
	assert.False(t, parsed)
	assert.Nil(t, data)
}
