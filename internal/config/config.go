package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	CORSOrigin string
	Env        string

	AI         AIConfig
	Contentful ContentfulConfig
	Auth       AuthConfig
	Storage    StorageConfig
}

type AIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	SiteName    string
	SiteBaseURL string
}

type ContentfulConfig struct {
	SpaceID         string
	ManagementToken string
	Environment     string
	Locale          string
	DefaultAssetID  string
}

type AuthConfig struct {
	Username      string
	Password      string
	PasswordHash  string
	AllowedEmails []string
}

type StorageConfig struct {
	UseS3         bool
	S3Bucket      string
	S3Region      string
	CloudFrontURL string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8001"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:8000"),
		Env:        getEnv("APP_ENV", "development"),
		AI: AIConfig{
			BaseURL:     getEnv("AI_BASE_URL", "https://ai-chat.example.com/api/v1"),
			APIKey:      os.Getenv("AI_API_KEY"),
			Model:       getEnv("AI_MODEL_ID", "seo-landing-page-generator"),
			Timeout:     30 * time.Second,
			SiteName:    getEnv("SITE_NAME", "our site"),
			SiteBaseURL: getEnv("SITE_BASE_URL", ""),
		},
		Contentful: ContentfulConfig{
			SpaceID:         os.Getenv("CONTENTFUL_SPACE_ID"),
			ManagementToken: os.Getenv("CONTENTFUL_MANAGEMENT_TOKEN"),
			Environment:     getEnv("CONTENTFUL_ENVIRONMENT_ID", "master"),
			Locale:          getEnv("CONTENTFUL_LOCALE", "en-US"),
			DefaultAssetID:  getEnv("CONTENTFUL_DEFAULT_ASSET_ID", "4yVKNgR5TO4py6zdvKRqik"),
		},
		Auth: AuthConfig{
			Username:      os.Getenv("AUTH_USERNAME"),
			Password:      os.Getenv("AUTH_PASSWORD"),
			PasswordHash:  os.Getenv("AUTH_PASSWORD_HASH"),
			AllowedEmails: splitList(os.Getenv("AUTH_ALLOWED_EMAILS")),
		},
		Storage: StorageConfig{
			UseS3:         os.Getenv("USE_S3") == "true",
			S3Bucket:      os.Getenv("S3_BUCKET"),
			S3Region:      os.Getenv("S3_REGION"),
			CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
		},
	}

	log.Println("✅ Config loaded")
	return cfg
}

// MissingCredentials lists the credentials the health endpoint reports as
// degraded. These are non-fatal: the server still starts without them.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.AI.APIKey == "" {
		missing = append(missing, "AI_API_KEY")
	}
	if c.Contentful.SpaceID == "" {
		missing = append(missing, "CONTENTFUL_SPACE_ID")
	}
	if c.Contentful.ManagementToken == "" {
		missing = append(missing, "CONTENTFUL_MANAGEMENT_TOKEN")
	}
	return missing
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
