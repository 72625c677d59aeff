package generate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seoforge/seoforge/internal/testutils"
)

func validRequest() map[string]interface{} {
	return map[string]interface{}{
		"mainKeywords":      "airport transfer singapore",
		"secondaryKeywords": "changi pickup",
		"language":          "en",
		"components":        []string{"hero", "seoText", "faqs"},
	}
}

func aiServer(t *testing.T, content string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
			"usage": map[string]int{"total_tokens": 500},
		})
	}))
}

func TestGenerateSuccess(t *testing.T) {
	srv := aiServer(t, `{"metaTitle": "Airport Transfer Singapore", "generatedSections": [{"type": "hero", "title": "H"}]}`)
	defer srv.Close()
	t.Setenv("AI_BASE_URL", srv.URL)
	t.Setenv("AI_API_KEY", "test-key")

	app := testutils.SetupTestApp(t)
	token := testutils.GetAuthToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/api/generate", validRequest(), token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	require.True(t, result.Success)

	data := result.Data.(map[string]interface{})
	assert.Equal(t, true, data["parsed"])

	content := data["content"].(map[string]interface{})
	assert.Equal(t, "Airport Transfer Singapore", content["metaTitle"])
	// request keywords are echoed back when the model omits them
	assert.Equal(t, "airport transfer singapore", content["mainKeywords"])
}

func TestGenerateUnparsableContentPassedThrough(t *testing.T) {
	srv := aiServer(t, "I could not produce JSON this time.")
	defer srv.Close()
	t.Setenv("AI_BASE_URL", srv.URL)
	t.Setenv("AI_API_KEY", "test-key")

	app := testutils.SetupTestApp(t)
	token := testutils.GetAuthToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/api/generate", validRequest(), token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)

	var result testutils.StandardResponse
	testutils.ParseResponse(t, resp, &result)
	data := result.Data.(map[string]interface{})
	assert.Equal(t, false, data["parsed"])
	assert.Equal(t, "I could not produce JSON this time.", data["content"])
}

func TestGenerateValidation(t *testing.T) {
	app := testutils.SetupTestApp(t)
	token := testutils.GetAuthToken(t)

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		field  string
	}{
		{"missing main keywords", func(m map[string]interface{}) { delete(m, "mainKeywords") }, "mainKeywords"},
		{"missing secondary keywords", func(m map[string]interface{}) { delete(m, "secondaryKeywords") }, "secondaryKeywords"},
		{"empty components", func(m map[string]interface{}) { m["components"] = []string{} }, "components"},
		{"unknown component", func(m map[string]interface{}) { m["components"] = []string{"carousel"} }, "components[0]"},
		{"unsupported language", func(m map[string]interface{}) { m["language"] = "xx" }, "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validRequest()
			tt.mutate(body)

			resp, err := testutils.MakeRequest(app, "POST", "/api/generate", body, token)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			testutils.AssertError(t, resp, "VALIDATION_ERROR")
		})
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	t.Setenv("AI_BASE_URL", srv.URL)
	t.Setenv("AI_API_KEY", "test-key")

	app := testutils.SetupTestApp(t)
	token := testutils.GetAuthToken(t)

	resp, err := testutils.MakeRequest(app, "POST", "/api/generate", validRequest(), token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.Code)
	testutils.AssertError(t, resp, "AI_ERROR")
}
