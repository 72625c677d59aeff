package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("CONTENTFUL_LOCALE", "")
	t.Setenv("CONTENTFUL_ENVIRONMENT_ID", "")
	t.Setenv("CONTENTFUL_DEFAULT_ASSET_ID", "")

	cfg := Load()

	assert.Equal(t, ":8001", cfg.ServerAddr)
	assert.Equal(t, "en-US", cfg.Contentful.Locale)
	assert.Equal(t, "master", cfg.Contentful.Environment)
	assert.Equal(t, "4yVKNgR5TO4py6zdvKRqik", cfg.Contentful.DefaultAssetID)
}

func TestMissingCredentials(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	t.Setenv("CONTENTFUL_SPACE_ID", "sp")
	t.Setenv("CONTENTFUL_MANAGEMENT_TOKEN", "")

	cfg := Load()
	missing := cfg.MissingCredentials()

	assert.Equal(t, []string{"AI_API_KEY", "CONTENTFUL_MANAGEMENT_TOKEN"}, missing)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, splitList(" a@x.com , b@x.com ,"))
}
