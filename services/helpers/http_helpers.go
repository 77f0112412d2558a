package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"dalal-market/internal/marketerrors"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var tooLow *marketerrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return http.StatusConflict, tooLow.Error()
	}

	switch {
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, marketerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrReviewNotFound):
		return http.StatusNotFound, "review not found"
	case errors.Is(err, marketerrors.ErrConversationNotFound):
		return http.StatusNotFound, "conversation not found"
	case errors.Is(err, marketerrors.ErrLocationNotFound):
		return http.StatusNotFound, "location not found"
	case errors.Is(err, marketerrors.ErrInquiryNotFound):
		return http.StatusNotFound, "inquiry not found"
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"

	case errors.Is(err, marketerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, marketerrors.ErrUserSuspended):
		return http.StatusForbidden, "user account is suspended"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "action not allowed"
	case errors.Is(err, marketerrors.ErrOwnBid):
		return http.StatusForbidden, "cannot bid on your own listing"

	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, marketerrors.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid status"
	case errors.Is(err, marketerrors.ErrCategoryCycle):
		return http.StatusBadRequest, "parent would create a cycle"
	case errors.Is(err, marketerrors.ErrSelfAction):
		return http.StatusBadRequest, "cannot perform this action on yourself"

	case errors.Is(err, marketerrors.ErrDuplicate):
		return http.StatusConflict, "record already exists"
	case errors.Is(err, marketerrors.ErrDetailConflict):
		return http.StatusConflict, "listing already has details of another kind"
	case errors.Is(err, marketerrors.ErrListingUnavailable):
		return http.StatusConflict, "listing is not available"
	case errors.Is(err, marketerrors.ErrAuctionExists):
		return http.StatusConflict, "auction already exists for listing"
	case errors.Is(err, marketerrors.ErrAuctionInactive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrAlreadyReviewed):
		return http.StatusConflict, "listing already reviewed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError writes the mapped error response and logs it at a level matching the status
func HandleServiceError(c *gin.Context, handlerName, logMessage string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+logMessage, fields)
		return
	}
	utils.Warn(handlerName+": "+logMessage, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
