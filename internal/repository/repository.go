package repository

import (
	"context"
	"time"

	"dalal-market/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_repository.go -package=repository -self_package=dalal-market/internal/repository dalal-market/internal/repository AuctionDB,ListingDB

// UserDB stores marketplace accounts
type UserDB interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, userID string) (models.User, error)
	// GetUserByLogin matches username or email, case-insensitively
	GetUserByLogin(ctx context.Context, login string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// CategoryDB stores the category tree
type CategoryDB interface {
	CreateCategory(ctx context.Context, category models.Category) error
	UpdateCategory(ctx context.Context, category models.Category) error
	GetCategory(ctx context.Context, categoryID string) (models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// StatusUpdate describes a staff status change applied to one or more listings
type StatusUpdate struct {
	ActorID      string
	Status       models.ListingStatus
	MarkApproved bool
	Reason       string
	At           time.Time
}

// ListingDB stores listings with their details, images and status history
type ListingDB interface {
	CreateListing(ctx context.Context, listing models.Listing) error
	GetListing(ctx context.Context, listingID string) (models.Listing, error)
	// UpdateListing writes only the owner-editable fields (title, description,
	// price, category, coordinates, updated_at) and returns the stored listing.
	UpdateListing(ctx context.Context, listing models.Listing) (models.Listing, error)
	IncrementViews(ctx context.Context, listingID string) (models.Listing, error)
	SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	CountListingsForCategory(ctx context.Context, categoryID string) (total, active int, err error)

	// SetListingStatus writes the status of every listing in ids and appends one
	// audit entry per listing, atomically. Unknown ids are skipped.
	SetListingStatus(ctx context.Context, ids []string, update StatusUpdate) ([]models.Listing, error)
	ListStatusChanges(ctx context.Context, listingID string) ([]models.ListingStatusChange, error)

	GetDetails(ctx context.Context, listingID string) (models.ListingDetails, error)
	// SaveDetails stores the single detail carried by details. It fails with
	// ErrDetailConflict when a detail of another kind already exists.
	SaveDetails(ctx context.Context, listingID string, details models.ListingDetails) error

	AddImage(ctx context.Context, image models.ListingImage) error
	ListImages(ctx context.Context, listingID string) ([]models.ListingImage, error)
}

// AuctionWrite is what an AuctionMutation asks the store to persist
type AuctionWrite struct {
	NewBid       *models.Bid
	WinningBidID string
}

// AuctionMutation inspects and modifies a locked auction. Returning an error
// discards every change.
type AuctionMutation func(auction *models.Auction, bids []models.Bid) (AuctionWrite, error)

// OrderMutation inspects and modifies a locked order. Returning markListingSold
// flips the order's listing to sold with it; an error discards every change.
type OrderMutation func(order *models.Order) (markListingSold bool, err error)

// AuctionDB defines the auction and bid storage interface
type AuctionDB interface {
	CreateAuction(ctx context.Context, auction models.Auction) error
	GetAuction(ctx context.Context, auctionID string) (models.Auction, error)
	GetAuctionByListing(ctx context.Context, listingID string) (models.Auction, error)
	ListAuctions(ctx context.Context, filter models.AuctionFilter) ([]models.Auction, error)
	GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error)
	// UpdateAuctionLocked runs fn while holding an exclusive lock on the auction
	// and persists the auction plus the returned write in one transaction.
	UpdateAuctionLocked(ctx context.Context, auctionID string, fn AuctionMutation) (models.Auction, error)
	ListExpiredAuctions(ctx context.Context, now time.Time) ([]string, error)
}

// OrderDB stores orders
type OrderDB interface {
	CreateOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, orderID string) (models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// UpdateOrderLocked runs fn while holding an exclusive lock on the order
	// and persists its status in the same transaction.
	UpdateOrderLocked(ctx context.Context, orderID string, fn OrderMutation) (models.Order, error)
}

// ReviewDB stores reviews
type ReviewDB interface {
	// CreateReview fails with ErrDuplicate when the reviewer already reviewed the listing
	CreateReview(ctx context.Context, review models.Review) error
	GetReview(ctx context.Context, reviewID string) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, reviewID string) error
	ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
}

// MessageDB stores conversations and messages
type MessageDB interface {
	CreateConversation(ctx context.Context, conversation models.Conversation) error
	GetConversation(ctx context.Context, conversationID string) (models.Conversation, error)
	FindConversation(ctx context.Context, listingID, userA, userB string) (models.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	// AddMessage stores the message and bumps the conversation's updated_at
	AddMessage(ctx context.Context, message models.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)
	// MarkRead flags unread messages in the conversation as read. An empty
	// receiverID marks every message; otherwise only those addressed to it.
	MarkRead(ctx context.Context, conversationID, receiverID string) (int, error)
	CountUnread(ctx context.Context, conversationID, receiverID string) (int, error)
	CountMessages(ctx context.Context, userID string) (sent, received int, err error)
}

// LocationDB stores the location tree and saved user locations
type LocationDB interface {
	CreateLocation(ctx context.Context, location models.Location) error
	GetLocation(ctx context.Context, locationID string) (models.Location, error)
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error)
	// CreateSavedLocation clears the user's previous default when the new one is default
	CreateSavedLocation(ctx context.Context, saved models.SavedLocation) error
	GetSavedLocation(ctx context.Context, savedLocationID string) (models.SavedLocation, error)
	ListSavedLocations(ctx context.Context, userID string) ([]models.SavedLocation, error)
	DeleteSavedLocation(ctx context.Context, savedLocationID string) error
}

// InquiryDB stores customer inquiries and their notification outcomes
type InquiryDB interface {
	CreateInquiry(ctx context.Context, inquiry models.Inquiry) error
	GetInquiry(ctx context.Context, inquiryID string) (models.Inquiry, error)
	ListInquiries(ctx context.Context, status models.InquiryStatus) ([]models.Inquiry, error)
	UpdateInquiry(ctx context.Context, inquiry models.Inquiry) error
	RecordNotification(ctx context.Context, inquiryID string, attempt models.NotificationAttempt) error
}

// ReportDB computes read-only aggregates for staff
type ReportDB interface {
	CountListingsByStatus(ctx context.Context) (map[models.ListingStatus]int, error)
	CountListingsByCategory(ctx context.Context) ([]models.KeyCount, error)
	CountListingsSince(ctx context.Context, since time.Time) (int, error)
	// CountUsers counts users joined at or after since; the zero time counts all
	CountUsers(ctx context.Context, since time.Time) (int, error)
	NewUsersPerDay(ctx context.Context, since time.Time) ([]models.KeyCount, error)
	RecentUsers(ctx context.Context, limit int) ([]models.User, error)
	CountAuctionsByStatus(ctx context.Context) (map[models.AuctionStatus]int, error)
	CountOrdersByStatus(ctx context.Context) (map[models.OrderStatus]int, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	TopSellers(ctx context.Context, limit int) ([]models.SellerCount, error)
}

// Store is the full persistence surface of the marketplace
type Store interface {
	UserDB
	CategoryDB
	ListingDB
	AuctionDB
	OrderDB
	ReviewDB
	MessageDB
	LocationDB
	InquiryDB
	ReportDB
}
