package app

import (
	"context"
	"errors"
	"fmt"

	accounts "dalal-market/internal/accountService"
	"dalal-market/internal/auth"
	bidding "dalal-market/internal/biddingService"
	"dalal-market/internal/cache"
	catalog "dalal-market/internal/catalogService"
	"dalal-market/internal/config"
	"dalal-market/internal/events"
	inquiries "dalal-market/internal/inquiryService"
	locations "dalal-market/internal/locationService"
	"dalal-market/internal/media"
	messaging "dalal-market/internal/messagingService"
	"dalal-market/internal/metrics"
	"dalal-market/internal/notify"
	orders "dalal-market/internal/orderService"
	reporting "dalal-market/internal/reportService"
	"dalal-market/internal/repository"
	"dalal-market/internal/repository/postgres"
	reviews "dalal-market/internal/reviewService"
	"dalal-market/internal/server"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

// App holds the wired dependencies of one marketplace process
type App struct {
	Config      *config.Config
	Store       repository.Store
	Metrics     *metrics.Metrics
	Services    server.Services
	Idempotency cache.IdempotencyStore
	Dispatcher  *notify.Dispatcher

	mediaDir string
	closers  []func() error
}

// New connects every backend named in cfg. Background work started later is bound to ctx.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg, Metrics: metrics.New()}
	if err := a.wire(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context) error {
	cfg := a.Config

	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.Connect(ctx, cfg.Store.DatabaseURL, int(cfg.Store.MaxConns))
		if err != nil {
			return err
		}
		if err := postgres.RunMigrations(ctx, db); err != nil {
			return err
		}
		store := postgres.NewStore(db)
		a.Store = store
		a.closers = append(a.closers, store.Close)
	default:
		utils.Warn("using in-memory store, data is lost on restart", nil)
		a.Store = repository.NewMemoryRepo()
	}

	var listingCache cache.ListingCache
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, client.Close)
		listingCache = cache.NewRedisListingCache(client, cfg.Redis.CacheTTL)
		a.Idempotency = cache.NewRedisIdempotencyStore(client, cfg.HTTP.IdempotencyTTL)
	} else {
		listingCache = cache.NewMemoryListingCache(cfg.Redis.CacheTTL)
		a.Idempotency = cache.NewMemoryIdempotencyStore(cfg.HTTP.IdempotencyTTL)
	}

	var publisher events.Publisher = events.LogPublisher{}
	if cfg.NATS.URL != "" {
		conn, err := events.Connect(cfg.NATS.URL, "dalal-market")
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() error { return conn.Drain() })
		nats, err := events.NewNATSPublisher(conn)
		if err != nil {
			return err
		}
		publisher = nats
	}
	publisher = events.NewObservedPublisher(publisher, a.Metrics.ObserveEvent)

	var storage media.Storage
	switch cfg.Media.Driver {
	case config.MediaS3:
		s3, err := media.NewS3Storage(ctx, cfg.Media.Endpoint, cfg.Media.AccessKey, cfg.Media.SecretKey, cfg.Media.Bucket, cfg.Media.UseSSL)
		if err != nil {
			return err
		}
		storage = s3
	default:
		local, err := media.NewLocalStorage(cfg.Media.Root, cfg.Media.BaseURL)
		if err != nil {
			return err
		}
		a.mediaDir = local.Root()
		storage = local
	}
	uploader := media.NewUploader(storage, cfg.Media.MaxUpload)

	a.Dispatcher = notify.NewDispatcher(ctx, a.Store, a.Metrics, notify.Options{
		MaxAttempts:  cfg.Notifications.MaxAttempts,
		InitialDelay: cfg.Notifications.InitialDelay,
	}, notify.NewEmailChannel(cfg.SMTP), notify.NewWhatsAppChannel(cfg.WhatsApp))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	store := a.Store
	a.Services = server.Services{
		Accounts:  accounts.NewAccountService(store, store, store, tokens),
		Catalog:   catalog.NewCatalogService(store, store, store, store, listingCache, uploader, publisher),
		Bidding:   bidding.NewBiddingService(store, store, publisher, a.Metrics),
		Orders:    orders.NewOrderService(store, store, listingCache, publisher),
		Reviews:   reviews.NewReviewService(store, store, store),
		Messaging: messaging.NewMessagingService(store, store),
		Locations: locations.NewLocationService(store, store, store),
		Reports:   reporting.NewReportService(store, store),
		Inquiries: inquiries.NewInquiryService(store, store, a.Dispatcher, publisher),
	}
	return nil
}

// Router builds the HTTP handler over the wired services
func (a *App) Router() *gin.Engine {
	return server.SetupRouter(a.Services, server.Options{
		Metrics:     a.Metrics,
		Idempotency: a.Idempotency,
		MediaDir:    a.mediaDir,
		MediaURL:    a.Config.Media.BaseURL,
	})
}

// Close waits for pending notifications and releases backend connections in reverse order
func (a *App) Close() error {
	if a.Dispatcher != nil {
		a.Dispatcher.Wait()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("app: close: %w", err)
	}
	return nil
}
