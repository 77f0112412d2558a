package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ReviewService manages listing and seller reviews
type ReviewService struct {
	repo     repository.ReviewDB
	listings repository.ListingDB
	users    repository.UserDB
	now      func() time.Time
}

func NewReviewService(repo repository.ReviewDB, listings repository.ListingDB, users repository.UserDB) *ReviewService {
	return &ReviewService{repo: repo, listings: listings, users: users, now: time.Now}
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("service: %w - rating must be between %d and %d", marketerrors.ErrInvalidInput, MinRating, MaxRating)
	}
	return nil
}

// AddListingReview rates a listing once per reviewer; sellers cannot rate their own listings
func (s *ReviewService) AddListingReview(ctx context.Context, reviewerID, listingID string, rating int, comment string) (models.Review, error) {
	if err := validateRating(rating); err != nil {
		return models.Review{}, err
	}
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.Review{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.SellerID == reviewerID {
		return models.Review{}, fmt.Errorf("service: %w - cannot review your own listing", marketerrors.ErrSelfAction)
	}

	review := models.Review{
		ReviewID:   utils.GenerateID(),
		ReviewerID: reviewerID,
		ListingID:  listingID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  s.now().UTC(),
	}
	err = s.repo.CreateReview(ctx, review)
	if errors.Is(err, marketerrors.ErrDuplicate) {
		return models.Review{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrAlreadyReviewed, listingID)
	}
	if err != nil {
		return models.Review{}, fmt.Errorf("service: failed to create review: %w", err)
	}
	return review, nil
}

// AddSellerReview rates a seller
func (s *ReviewService) AddSellerReview(ctx context.Context, reviewerID, sellerID string, rating int, comment string) (models.Review, error) {
	if err := validateRating(rating); err != nil {
		return models.Review{}, err
	}
	if sellerID == reviewerID {
		return models.Review{}, fmt.Errorf("service: %w - cannot review yourself", marketerrors.ErrSelfAction)
	}
	seller, err := s.users.GetUser(ctx, sellerID)
	if err != nil {
		return models.Review{}, fmt.Errorf("service: failed to get seller %s: %w", sellerID, err)
	}
	if !seller.IsSeller {
		return models.Review{}, fmt.Errorf("service: %w - user %s is not a seller", marketerrors.ErrInvalidInput, sellerID)
	}

	review := models.Review{
		ReviewID:   utils.GenerateID(),
		ReviewerID: reviewerID,
		SellerID:   sellerID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("service: failed to create review: %w", err)
	}
	return review, nil
}

// Summarize averages ratings, rounded to one decimal
func Summarize(reviews []models.Review) models.ReviewSummary {
	summary := models.ReviewSummary{Reviews: reviews, TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews))))
	summary.AverageRating = avg.Round(1).InexactFloat64()
	return summary
}

// ListingReviews returns a listing's reviews with their average
func (s *ReviewService) ListingReviews(ctx context.Context, listingID string) (models.ReviewSummary, error) {
	if _, err := s.listings.GetListing(ctx, listingID); err != nil {
		return models.ReviewSummary{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	list, err := s.repo.ListReviews(ctx, models.ReviewFilter{ListingID: listingID})
	if err != nil {
		return models.ReviewSummary{}, fmt.Errorf("service: failed to list reviews of listing %s: %w", listingID, err)
	}
	return Summarize(list), nil
}

// SellerReviews returns a seller's reviews with their average
func (s *ReviewService) SellerReviews(ctx context.Context, sellerID string) (models.ReviewSummary, error) {
	if _, err := s.users.GetUser(ctx, sellerID); err != nil {
		return models.ReviewSummary{}, fmt.Errorf("service: failed to get seller %s: %w", sellerID, err)
	}
	list, err := s.repo.ListReviews(ctx, models.ReviewFilter{SellerID: sellerID})
	if err != nil {
		return models.ReviewSummary{}, fmt.Errorf("service: failed to list reviews of seller %s: %w", sellerID, err)
	}
	return Summarize(list), nil
}

// MyReviews returns the reviews the user wrote, newest first
func (s *ReviewService) MyReviews(ctx context.Context, reviewerID string) ([]models.Review, error) {
	list, err := s.repo.ListReviews(ctx, models.ReviewFilter{ReviewerID: reviewerID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reviews by %s: %w", reviewerID, err)
	}
	return list, nil
}

func (s *ReviewService) authored(ctx context.Context, userID, reviewID string) (models.Review, error) {
	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return models.Review{}, fmt.Errorf("service: failed to get review %s: %w", reviewID, err)
	}
	if review.ReviewerID != userID {
		return models.Review{}, fmt.Errorf("service: %w - review %s belongs to another user", marketerrors.ErrForbidden, reviewID)
	}
	return review, nil
}

// EditReview changes the author's rating and comment
func (s *ReviewService) EditReview(ctx context.Context, userID, reviewID string, rating int, comment string) (models.Review, error) {
	if err := validateRating(rating); err != nil {
		return models.Review{}, err
	}
	review, err := s.authored(ctx, userID, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	review.Rating = rating
	review.Comment = strings.TrimSpace(comment)
	if err := s.repo.UpdateReview(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("service: failed to update review %s: %w", reviewID, err)
	}
	return review, nil
}

// DeleteReview removes the author's review
func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if _, err := s.authored(ctx, userID, reviewID); err != nil {
		return err
	}
	if err := s.repo.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("service: failed to delete review %s: %w", reviewID, err)
	}
	return nil
}
