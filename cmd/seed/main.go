// Command seed loads the sample catalogue into the configured store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"dalal-market/internal/app"
	"dalal-market/internal/config"
	"dalal-market/internal/seed"
	"dalal-market/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		utils.Fatal("Seeding failed", map[string]any{"error": err.Error()})
	}
}

// run seeds the store named by args and the environment; any failure is returned so main exits non-zero
func run(ctx context.Context, args []string) (err error) {
	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	configPath := flags.String("config", os.Getenv("CONFIG_PATH"), "optional YAML config file")
	adminPassword := flags.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "password for the admin account")
	userPassword := flags.String("user-password", os.Getenv("SEED_USER_PASSWORD"), "password for the sample seller and buyer")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	utils.SetLevel(cfg.Log.Level)
	if cfg.Store.Driver == config.StoreMemory {
		utils.Warn("seeding the in-memory store has no lasting effect", nil)
	}

	market, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if closeErr := market.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("release resources: %w", closeErr))
		}
	}()

	seeder := seed.New(market.Store, market.Services.Accounts, market.Services.Catalog, market.Services.Locations)
	summary, err := seeder.Run(ctx, seed.Options{AdminPassword: *adminPassword, SamplePassword: *userPassword})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	utils.Info("Seeding finished", map[string]any{
		"skipped":    summary.Skipped,
		"users":      summary.Users,
		"categories": summary.Categories,
		"locations":  summary.Locations,
		"listings":   summary.Listings,
	})
	return nil
}
