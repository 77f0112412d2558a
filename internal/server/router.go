package server

import (
	"net/http"

	accounts "dalal-market/internal/accountService"
	bidding "dalal-market/internal/biddingService"
	"dalal-market/internal/cache"
	catalog "dalal-market/internal/catalogService"
	inquiries "dalal-market/internal/inquiryService"
	locations "dalal-market/internal/locationService"
	messaging "dalal-market/internal/messagingService"
	"dalal-market/internal/metrics"
	orders "dalal-market/internal/orderService"
	reporting "dalal-market/internal/reportService"
	reviews "dalal-market/internal/reviewService"
	accountHandler "dalal-market/services/accounts/handler"
	biddingHandler "dalal-market/services/bidding/handler"
	catalogHandler "dalal-market/services/catalog/handler"
	inquiryHandler "dalal-market/services/inquiries/handler"
	locationHandler "dalal-market/services/locations/handler"
	messagingHandler "dalal-market/services/messaging/handler"
	orderHandler "dalal-market/services/orders/handler"
	reportHandler "dalal-market/services/reports/handler"
	reviewHandler "dalal-market/services/reviews/handler"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

// Services bundles the domain services exposed over HTTP
type Services struct {
	Accounts  *accounts.AccountService
	Catalog   *catalog.CatalogService
	Bidding   *bidding.BiddingService
	Orders    *orders.OrderService
	Reviews   *reviews.ReviewService
	Messaging *messaging.MessagingService
	Locations *locations.LocationService
	Reports   *reporting.ReportService
	Inquiries *inquiries.InquiryService
}

type Options struct {
	Metrics     *metrics.Metrics
	Idempotency cache.IdempotencyStore
	// MediaDir is served under MediaURL when set
	MediaDir string
	MediaURL string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	if opts.Metrics != nil {
		router.Use(MetricsMiddleware(opts.Metrics))
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if opts.MediaDir != "" && opts.MediaURL != "" {
		router.Static(opts.MediaURL, opts.MediaDir)
	}

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})

	requireAuth := RequireAuth(svc.Accounts)
	optionalAuth := OptionalAuth(svc.Accounts)
	idempotent := Idempotency(opts.Idempotency)

	accountH := accountHandler.NewAccountHandler(svc.Accounts)
	catalogH := catalogHandler.NewCatalogHandler(svc.Catalog)
	biddingH := biddingHandler.NewBiddingHandler(svc.Bidding)
	orderH := orderHandler.NewOrderHandler(svc.Orders)
	reviewH := reviewHandler.NewReviewHandler(svc.Reviews)
	messagingH := messagingHandler.NewMessagingHandler(svc.Messaging)
	locationH := locationHandler.NewLocationHandler(svc.Locations)
	reportH := reportHandler.NewReportHandler(svc.Reports)
	inquiryH := inquiryHandler.NewInquiryHandler(svc.Inquiries)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", accountH.RegisterHandler)
		authGroup.POST("/login", accountH.LoginHandler)
	}

	me := router.Group("/users/me", requireAuth)
	{
		me.GET("", accountH.ProfileHandler)
		me.PATCH("", accountH.UpdateProfileHandler)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", catalogH.ListCategoriesHandler)
		categories.GET("/:slug", catalogH.GetCategoryHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", catalogH.SearchListingsHandler)
		listings.POST("", requireAuth, catalogH.CreateListingHandler)
		listings.GET("/mine", requireAuth, catalogH.MyListingsHandler)
		listings.GET("/:listing_id", optionalAuth, catalogH.GetListingHandler)
		listings.PATCH("/:listing_id", requireAuth, catalogH.UpdateListingHandler)
		listings.POST("/:listing_id/cancel", requireAuth, catalogH.CancelListingHandler)
		listings.PUT("/:listing_id/details", requireAuth, catalogH.AttachDetailsHandler)
		listings.POST("/:listing_id/images", requireAuth, catalogH.UploadImageHandler)
		listings.GET("/:listing_id/images", catalogH.ListImagesHandler)
		listings.GET("/:listing_id/related", catalogH.RelatedListingsHandler)
		listings.GET("/:listing_id/nearby", locationH.NearbyListingsHandler)
		listings.GET("/:listing_id/reviews", reviewH.ListingReviewsHandler)
		listings.POST("/:listing_id/reviews", requireAuth, reviewH.AddListingReviewHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", biddingH.ListActiveAuctionsHandler)
		auctions.POST("", requireAuth, biddingH.CreateAuctionHandler)
		auctions.GET("/mine", requireAuth, biddingH.MyAuctionsHandler)
		auctions.GET("/:auction_id", optionalAuth, biddingH.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", requireAuth, idempotent, biddingH.RecordBidHandler)
		auctions.GET("/:auction_id/bids", biddingH.GetBidsHandler)
		auctions.GET("/:auction_id/winning", biddingH.GetWinningBidHandler)
		auctions.POST("/:auction_id/cancel", requireAuth, biddingH.CancelAuctionHandler)
	}

	orderGroup := router.Group("/orders", requireAuth)
	{
		orderGroup.POST("", idempotent, orderH.CreateOrderHandler)
		orderGroup.GET("", orderH.MyOrdersHandler)
		orderGroup.GET("/history", orderH.OrderHistoryHandler)
		orderGroup.GET("/:order_id", orderH.GetOrderHandler)
		orderGroup.PATCH("/:order_id/status", orderH.UpdateOrderStatusHandler)
		orderGroup.POST("/:order_id/cancel", orderH.CancelOrderHandler)
	}

	reviewGroup := router.Group("/reviews")
	{
		reviewGroup.GET("/mine", requireAuth, reviewH.MyReviewsHandler)
		reviewGroup.GET("/sellers/:seller_id", reviewH.SellerReviewsHandler)
		reviewGroup.POST("/sellers/:seller_id", requireAuth, reviewH.AddSellerReviewHandler)
		reviewGroup.PATCH("/:review_id", requireAuth, reviewH.EditReviewHandler)
		reviewGroup.DELETE("/:review_id", requireAuth, reviewH.DeleteReviewHandler)
	}

	conversations := router.Group("/conversations", requireAuth)
	{
		conversations.GET("", messagingH.ListConversationsHandler)
		conversations.POST("", messagingH.StartConversationHandler)
		conversations.GET("/:conversation_id", messagingH.GetConversationHandler)
		conversations.POST("/:conversation_id/messages", messagingH.SendMessageHandler)
		conversations.POST("/:conversation_id/read", messagingH.MarkAsReadHandler)
	}

	locationGroup := router.Group("/locations")
	{
		locationGroup.GET("", locationH.ListLocationsHandler)
		locationGroup.GET("/search", locationH.SearchLocationsHandler)
		locationGroup.GET("/map", locationH.AreaListingsHandler)
		locationGroup.GET("/saved", requireAuth, locationH.MyLocationsHandler)
		locationGroup.POST("/saved", requireAuth, locationH.SaveLocationHandler)
		locationGroup.DELETE("/saved/:saved_location_id", requireAuth, locationH.DeleteSavedLocationHandler)
	}

	router.POST("/inquiries", optionalAuth, idempotent, inquiryH.CreateInquiryHandler)

	admin := router.Group("/admin", requireAuth, RequireStaff)
	{
		admin.GET("/dashboard", reportH.DashboardHandler)
		admin.GET("/reports", reportH.ReportsHandler)

		admin.GET("/users", accountH.ListUsersHandler)
		admin.POST("/users/:user_id/verify", accountH.VerifyUserHandler)
		admin.POST("/users/:user_id/suspend", accountH.SuspendUserHandler)
		admin.POST("/users/:user_id/reactivate", accountH.ReactivateUserHandler)

		admin.POST("/categories", catalogH.CreateCategoryHandler)
		admin.PUT("/categories/:category_id/parent", catalogH.MoveCategoryHandler)
		admin.POST("/locations", locationH.CreateLocationHandler)

		admin.GET("/listings/pending", catalogH.PendingListingsHandler)
		admin.POST("/listings/bulk", catalogH.BulkActionHandler)
		admin.POST("/listings/:listing_id/approve", catalogH.ApproveListingHandler)
		admin.POST("/listings/:listing_id/reject", catalogH.RejectListingHandler)
		admin.GET("/listings/:listing_id/history", catalogH.ListingHistoryHandler)

		admin.POST("/conversations/:conversation_id/read-all", messagingH.MarkAllReadHandler)

		admin.GET("/inquiries", inquiryH.ListInquiriesHandler)
		admin.GET("/inquiries/:inquiry_id", inquiryH.GetInquiryHandler)
		admin.PATCH("/inquiries/:inquiry_id", inquiryH.UpdateInquiryHandler)
	}

	return router
}
