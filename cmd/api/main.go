// cmd/api/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"swastik-transport-api-server/config"
	"swastik-transport-api-server/internal/api/handlers"
	"swastik-transport-api-server/internal/api/routes"
	"swastik-transport-api-server/internal/database"
	"swastik-transport-api-server/internal/pricing"
	"swastik-transport-api-server/internal/refid"
	"swastik-transport-api-server/internal/s3"
	"swastik-transport-api-server/internal/socket"
	"swastik-transport-api-server/internal/uploads"
)

func main() {
	// 1. Load configuration (.env is optional)
	godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Connect to Postgres and bring the schema up to date
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 3. Ensure the default admin account exists
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// 4. Resume storage: S3 when a bucket is configured, local disk otherwise
	var files handlers.FileStore
	if cfg.S3.Bucket != "" {
		uploader, err := s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
		files = uploader
	} else {
		store, err := uploads.NewDiskStore(cfg.Uploads.Dir)
		if err != nil {
			log.Fatalf("Failed to create uploads directory: %v", err)
		}
		files = store
	}

	// 5. Tracking feed hub, reference codes, price estimator
	hub := socket.NewHub()
	refs := refid.New()
	estimator := pricing.NewEstimator(pricing.RandomDistance)

	// 6. Wire the router and start the server
	router := routes.SetupRouter(cfg, db.Pool, files, hub, refs, estimator)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
