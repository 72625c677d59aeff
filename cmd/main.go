package main

import (
	"log"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/server"
	"github.com/seoforge/seoforge/internal/utils"
)

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		if err := utils.ValidateJWTSecret(); err != nil {
			log.Fatal("❌ JWT Configuration Error: ", err)
		}
		log.Println("✅ JWT secret validated")
	}

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		log.Printf("⚠️  Missing credentials: %v", missing)
		log.Println("⚠️  The wizard will start, but generation or publishing will fail until they are set")
	} else {
		log.Println("✅ AI and CMS credentials present")
	}

	// ========== STORAGE SETUP ==========
	if err := utils.InitLocalStorage(); err != nil {
		log.Fatal("❌ Failed to initialize local storage:", err)
	}
	log.Println("✅ Local storage initialized at ./uploads/")

	if cfg.Storage.UseS3 {
		if cfg.Storage.S3Bucket != "" && cfg.Storage.S3Region != "" {
			if err := utils.InitS3(cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.CloudFrontURL); err != nil {
				log.Println("⚠️  S3 initialization failed:", err)
				log.Println("⚠️  Falling back to local storage")
				utils.SetStorageMode(true)
			} else {
				log.Printf("☁️  Using S3: %s (region: %s)", cfg.Storage.S3Bucket, cfg.Storage.S3Region)
			}
		} else {
			log.Println("⚠️  USE_S3=true but S3_BUCKET or S3_REGION not configured")
			log.Println("⚠️  Falling back to local storage")
			utils.SetStorageMode(true)
		}
	} else {
		log.Println("💾 Using LOCAL storage mode (./uploads/)")
		utils.SetStorageMode(true)
	}

	// ========== START SERVER ==========
	app := server.New(cfg)

	log.Printf("🚀 SEO wizard backend starting on %s", cfg.ServerAddr)
	log.Printf("📚 Health check: %s/api/health", cfg.ServerAddr)
	log.Printf("💾 Storage Mode: %s", utils.GetStorageMode())
	log.Printf("🔐 JWT Authentication: Enabled")

	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
