package main

import (
	"context"
	"eld-trip-service/internal/adapters/cache"
	"eld-trip-service/internal/adapters/repositories"
	"eld-trip-service/internal/adapters/routing"
	"eld-trip-service/internal/api"
	"eld-trip-service/internal/config"
	"eld-trip-service/internal/platform/db"
	"eld-trip-service/internal/platform/obs"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, ORS) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		obs.Logger.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		obs.Logger.Fatal(err)
	}
	if err := obs.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		obs.Logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		obs.Logger.Fatal(err)
	}
	defer conn.Close()

	dialect := db.Dialect(cfg.Database.Driver)
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		obs.Logger.Fatal(err)
	}

	opts := routing.ORSOptions{
		BaseURL:      cfg.ORS.BaseURL,
		Profile:      cfg.ORS.Profile,
		Country:      cfg.ORS.Country,
		GeocodeCache: cache.NewSQLGeocodeCache(conn, dialect),
	}

	// The route cache is optional; without Redis every trip asks ORS.
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			obs.Logger.WithError(err).WithField("addr", cfg.Redis.Addr).Warn("redis unreachable, route cache disabled")
		} else {
			opts.RouteCache = cache.NewRedisRouteCache(rdb, cfg.Redis.TTL)
		}
	}

	ors, err := routing.NewORSClient(cfg.ORS.APIKey, opts)
	if err != nil {
		obs.Logger.Fatal(err)
	}

	repo := repositories.NewSQLTripRepository(conn, dialect)
	router := api.NewRouter(repo, ors, ors)

	// Timeouts are tuned for cold-cache trip creation (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.WithFields(logrus.Fields{
			"addr":   srv.Addr,
			"driver": cfg.Database.Driver,
		}).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	obs.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		obs.Logger.WithError(err).Error("graceful shutdown failed")
	}
}
