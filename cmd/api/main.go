package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/wearzy/wearzy-api/internal/auth"
	"github.com/wearzy/wearzy-api/internal/config"
	"github.com/wearzy/wearzy-api/internal/database"
	"github.com/wearzy/wearzy-api/internal/handlers"
	"github.com/wearzy/wearzy-api/internal/payment"
	"github.com/wearzy/wearzy-api/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Application Setup ---
	// Inject all dependencies into the Handlers struct.
	app := &handlers.Handlers{
		DB:      db,
		Tokens:  auth.NewTokenManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Gateway: payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		Config:  cfg,
	}

	// 3. --- Background Worker (Credential Sweeper) ---
	// Runs hourly, deleting expired OTPs and stale refresh tokens so the
	// two tables don't grow without bound.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Background worker started: sweeping expired OTPs and refresh tokens")

		for range ticker.C {
			app.SweepExpiredCredentials()
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	log.Printf("Starting Wearzy API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
