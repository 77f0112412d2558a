package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dalal-market/internal/app"
	"dalal-market/internal/config"
	"dalal-market/internal/seed"
	"dalal-market/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		utils.Fatal("Failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// background work outlives the signal so in-flight notifications can finish during shutdown
	bgCtx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	market, err := app.New(bgCtx, cfg)
	if err != nil {
		utils.Fatal("Failed to start marketplace", map[string]any{"error": err.Error()})
	}

	if cfg.Seed {
		prepopulate(ctx, market)
	}

	go market.Services.Bidding.RunSweeper(bgCtx, cfg.Auction.SweepInterval)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           market.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("Starting marketplace server", map[string]any{"addr": srv.Addr, "env": cfg.Env, "store": cfg.Store.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("Shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("HTTP shutdown failed", map[string]any{"error": err.Error()})
	}

	done := make(chan struct{})
	go func() {
		if err := market.Close(); err != nil {
			utils.Error("Failed to release resources", map[string]any{"error": err.Error()})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		// give up on pending notifications
		cancelBackground()
		<-done
	}
	utils.Info("Server stopped", nil)
}

// prepopulate loads the sample catalogue for local runs
func prepopulate(ctx context.Context, market *app.App) {
	seeder := seed.New(market.Store, market.Services.Accounts, market.Services.Catalog, market.Services.Locations)
	summary, err := seeder.Run(ctx, seed.Options{
		AdminPassword:  envOr("SEED_ADMIN_PASSWORD", "admin12345"),
		SamplePassword: envOr("SEED_USER_PASSWORD", "password123"),
	})
	if err != nil {
		utils.Error("Failed to seed sample data", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("Seed finished", map[string]any{"skipped": summary.Skipped})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
