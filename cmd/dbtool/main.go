package main

import (
	"context"
	"eld-trip-service/internal/adapters/repositories"
	"eld-trip-service/internal/config"
	"eld-trip-service/internal/platform/db"
	"eld-trip-service/internal/platform/obs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		obs.Logger.Info("No .env file found (using environment variables)")
	}

	dbCfg, err := config.LoadDatabase(os.Getenv("CONFIG_PATH"))
	if err != nil {
		obs.Logger.Fatal(err)
	}

	conn, err := db.Open(dbCfg.Driver, dbCfg.URL)
	if err != nil {
		obs.Logger.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	obs.Logger.WithField("driver", dbCfg.Driver).Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn, db.Dialect(dbCfg.Driver)); err != nil {
		obs.Logger.Fatalf("schema initialization failed: %v", err)
	}
	obs.Logger.Info("Schema ready.")
}
