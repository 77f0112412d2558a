package marketerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrListingNotFound      = errors.New("listing not found")
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrNoBids               = errors.New("no bids found for auction")
	ErrDuplicate            = errors.New("record already exists")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("action not allowed")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserSuspended      = errors.New("user account is suspended")

	ErrCategoryCycle      = errors.New("parent would create a cycle")
	ErrDetailConflict     = errors.New("listing already has a detail record of another kind")
	ErrListingUnavailable = errors.New("listing is not available")

	ErrAuctionExists   = errors.New("auction already exists for listing")
	ErrAuctionInactive = errors.New("auction is not active")
	ErrAuctionEnded    = errors.New("auction has ended")
	ErrOwnBid          = errors.New("cannot bid on your own listing")
	ErrBidTooLow       = errors.New("bid amount too low")

	ErrInvalidStatus   = errors.New("invalid status")
	ErrAlreadyReviewed = errors.New("listing already reviewed by user")
	ErrSelfAction      = errors.New("cannot perform this action on yourself")
)
