package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dalal-market/internal/models"
	"dalal-market/internal/repository"
)

const (
	recentShown   = 5
	topShown      = 10
	weekWindow    = 7 * 24 * time.Hour
	signupsWindow = 30 * 24 * time.Hour
)

// ReportService computes the staff dashboard and reports
type ReportService struct {
	repo     repository.ReportDB
	listings repository.ListingDB
	now      func() time.Time
}

func NewReportService(repo repository.ReportDB, listings repository.ListingDB) *ReportService {
	return &ReportService{repo: repo, listings: listings, now: time.Now}
}

// Dashboard gathers the staff overview totals
func (s *ReportService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-weekWindow)

	var d models.Dashboard

	byStatus, err := s.repo.CountListingsByStatus(ctx)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count listings: %w", err)
	}
	for _, n := range byStatus {
		d.TotalListings += n
	}
	d.PendingListings = byStatus[models.ListingPendingApproval]
	d.ActiveListings = byStatus[models.ListingActive]

	if d.TotalUsers, err = s.repo.CountUsers(ctx, time.Time{}); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count users: %w", err)
	}
	if d.NewUsersToday, err = s.repo.CountUsers(ctx, today); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count new users: %w", err)
	}
	if d.UsersThisWeek, err = s.repo.CountUsers(ctx, weekAgo); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count weekly users: %w", err)
	}
	if d.ListingsThisWeek, err = s.repo.CountListingsSince(ctx, weekAgo); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count weekly listings: %w", err)
	}

	auctions, err := s.repo.CountAuctionsByStatus(ctx)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count auctions: %w", err)
	}
	for _, n := range auctions {
		d.TotalAuctions += n
	}
	d.ActiveAuctions = auctions[models.AuctionActive]

	orders, err := s.repo.CountOrdersByStatus(ctx)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to count orders: %w", err)
	}
	d.PendingOrders = orders[models.OrderPending]
	d.CompletedOrders = orders[models.OrderCompleted]

	if d.Revenue, err = s.repo.Revenue(ctx); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to sum revenue: %w", err)
	}

	if d.RecentPending, err = s.listings.SearchListings(ctx, models.ListingFilter{
		Statuses: []models.ListingStatus{models.ListingPendingApproval},
		Sort:     models.SortNewest,
		Limit:    recentShown,
	}); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to list recent pending listings: %w", err)
	}
	if d.RecentUsers, err = s.repo.RecentUsers(ctx, recentShown); err != nil {
		return models.Dashboard{}, fmt.Errorf("service: failed to list recent users: %w", err)
	}
	return d, nil
}

// Reports gathers the staff analytics breakdowns
func (s *ReportService) Reports(ctx context.Context) (models.Reports, error) {
	var r models.Reports
	var err error

	if r.ListingsByCategory, err = s.repo.CountListingsByCategory(ctx); err != nil {
		return models.Reports{}, fmt.Errorf("service: failed to count listings by category: %w", err)
	}

	byStatus, err := s.repo.CountListingsByStatus(ctx)
	if err != nil {
		return models.Reports{}, fmt.Errorf("service: failed to count listings by status: %w", err)
	}
	r.ListingsByStatus = make([]models.KeyCount, 0, len(byStatus))
	for status, n := range byStatus {
		r.ListingsByStatus = append(r.ListingsByStatus, models.KeyCount{Key: string(status), Count: n})
	}
	sort.Slice(r.ListingsByStatus, func(i, j int) bool {
		if r.ListingsByStatus[i].Count != r.ListingsByStatus[j].Count {
			return r.ListingsByStatus[i].Count > r.ListingsByStatus[j].Count
		}
		return r.ListingsByStatus[i].Key < r.ListingsByStatus[j].Key
	})

	if r.NewUsersPerDay, err = s.repo.NewUsersPerDay(ctx, s.now().UTC().Add(-signupsWindow)); err != nil {
		return models.Reports{}, fmt.Errorf("service: failed to count signups: %w", err)
	}
	if r.TopSellers, err = s.repo.TopSellers(ctx, topShown); err != nil {
		return models.Reports{}, fmt.Errorf("service: failed to rank sellers: %w", err)
	}
	if r.MostViewed, err = s.listings.SearchListings(ctx, models.ListingFilter{
		Statuses: []models.ListingStatus{models.ListingActive},
		Sort:     models.SortViews,
		Limit:    topShown,
	}); err != nil {
		return models.Reports{}, fmt.Errorf("service: failed to list most viewed listings: %w", err)
	}
	return r, nil
}
