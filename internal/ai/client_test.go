package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seoforge/seoforge/internal/config"
)

func testConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "seo-landing-page-generator",
		Timeout:     5 * time.Second,
		SiteName:    "Example Rides",
		SiteBaseURL: "https://example.com",
	}
}

func completionServer(t *testing.T, content string, status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "seo-landing-page-generator", req.Model)

		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error": "upstream problem"}`))
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 350, "total_tokens": 470},
		})
	}))
}

func TestGenerateContent(t *testing.T) {
	srv := completionServer(t, `{"mainKeywords": "airport transfer"}`, http.StatusOK)
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.GenerateContent(context.Background(), GenerationParams{
		MainKeywords:      "airport transfer",
		SecondaryKeywords: "changi",
		ContentTypes:      []string{"hero", "seoText", "faqs"},
		Language:          "en",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"mainKeywords": "airport transfer"}`, resp.Content)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 470, resp.Usage.TotalTokens)
}

func TestGenerateContentUpstreamError(t *testing.T) {
	srv := completionServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.GenerateContent(context.Background(), GenerationParams{MainKeywords: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateContentEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.GenerateContent(context.Background(), GenerationParams{MainKeywords: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestGenerateContentRequiresAPIKey(t *testing.T) {
	cfg := testConfig("http://localhost:1")
	cfg.APIKey = ""
	client := NewClient(cfg)

	assert.False(t, client.Configured())
	_, err := client.GenerateContent(context.Background(), GenerationParams{MainKeywords: "x"})
	require.Error(t, err)
}

func TestCheckConnection(t *testing.T) {
	srv := completionServer(t, "Hello", http.StatusOK)
	defer srv.Close()

	assert.True(t, NewClient(testConfig(srv.URL)).CheckConnection(context.Background()))

	bad := completionServer(t, "", http.StatusUnauthorized)
	defer bad.Close()
	assert.False(t, NewClient(testConfig(bad.URL)).CheckConnection(context.Background()))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(GenerationParams{
		MainKeywords:      "airport transfer singapore",
		SecondaryKeywords: "changi pickup",
		Questions:         "How long does it take?",
		ContentTypes:      []string{"hero", "seoText", "faqs"},
		Language:          "en",
	}, "Example Rides", "https://example.com")

	assert.Contains(t, prompt, "Example Rides")
	assert.Contains(t, prompt, "https://example.com")
	assert.Contains(t, prompt, "Main keywords: airport transfer singapore")
	assert.Contains(t, prompt, "How long does it take?")
	assert.Contains(t, prompt, "generatedSections")
	// shape examples for each requested type
	assert.Contains(t, prompt, `"type": "hero"`)
	assert.Contains(t, prompt, `"type": "seoText"`)
	assert.Contains(t, prompt, `"type": "faqs"`)
	// structural rules
	assert.Contains(t, prompt, "exactly THREE seoText")
	assert.Contains(t, prompt, "between 3 and 12 items")
	assert.Contains(t, prompt, "at most 80 characters")
}

func TestBuildPromptIncludesConversationContext(t *testing.T) {
	prompt := BuildPrompt(GenerationParams{
		MainKeywords: "tours",
		ContentTypes: []string{"hero"},
		ConversationContext: []Message{
			{Role: "user", Content: "make it more formal"},
		},
	}, "", "")

	assert.Contains(t, prompt, "Previous conversation:")
	assert.Contains(t, prompt, "make it more formal")
	assert.Contains(t, prompt, "our website")
}

func TestBuildPromptSkipsUnknownTypes(t *testing.T) {
	prompt := BuildPrompt(GenerationParams{
		MainKeywords: "tours",
		ContentTypes: []string{"hero", "testimonial"},
	}, "Site", "")

	assert.Contains(t, prompt, `"type": "hero"`)
	assert.NotContains(t, prompt, "testimonial:")
}
