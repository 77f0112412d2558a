package postgres

import (
	"dalal-market/internal/models"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toUserRecord(u models.User) userRecord {
	return userRecord{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        optional(u.Email),
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  u.PhoneNumber,
		Address:      u.Address,
		IsSeller:     u.IsSeller,
		IsStaff:      u.IsStaff,
		IsVerified:   u.IsVerified,
		IsActive:     u.IsActive,
		DateJoined:   u.DateJoined,
	}
}

func toUser(row userRecord) models.User {
	return models.User{
		UserID:       row.UserID,
		Username:     row.Username,
		Email:        deref(row.Email),
		PasswordHash: row.PasswordHash,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		PhoneNumber:  row.PhoneNumber,
		Address:      row.Address,
		IsSeller:     row.IsSeller,
		IsStaff:      row.IsStaff,
		IsVerified:   row.IsVerified,
		IsActive:     row.IsActive,
		DateJoined:   row.DateJoined,
	}
}

func toCategoryRecord(c models.Category) categoryRecord {
	return categoryRecord{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Slug:       c.Slug,
		ParentID:   optional(c.ParentID),
		CreatedAt:  c.CreatedAt,
	}
}

func toCategory(row categoryRecord) models.Category {
	return models.Category{
		CategoryID: row.CategoryID,
		Name:       row.Name,
		Slug:       row.Slug,
		ParentID:   deref(row.ParentID),
		CreatedAt:  row.CreatedAt,
	}
}

func toListingRecord(l models.Listing) listingRecord {
	return listingRecord{
		ListingID:   l.ListingID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		CategoryID:  l.CategoryID,
		SellerID:    l.SellerID,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Status:      string(l.Status),
		IsApproved:  l.IsApproved,
		ViewsCount:  l.ViewsCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toListing(row listingRecord) models.Listing {
	return models.Listing{
		ListingID:   row.ListingID,
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		CategoryID:  row.CategoryID,
		SellerID:    row.SellerID,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		Status:      models.ListingStatus(row.Status),
		IsApproved:  row.IsApproved,
		ViewsCount:  row.ViewsCount,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toListings(rows []listingRecord) []models.Listing {
	out := make([]models.Listing, 0, len(rows))
	for _, row := range rows {
		out = append(out, toListing(row))
	}
	return out
}

func toImage(row listingImageRecord) models.ListingImage {
	return models.ListingImage{
		ImageID:   row.ImageID,
		ListingID: row.ListingID,
		ObjectKey: row.ObjectKey,
		URL:       row.URL,
		IsMain:    row.IsMain,
		CreatedAt: row.CreatedAt,
	}
}

func toStatusChange(row statusChangeRecord) models.ListingStatusChange {
	return models.ListingStatusChange{
		ChangeID:  row.ChangeID,
		ListingID: row.ListingID,
		ActorID:   row.ActorID,
		From:      models.ListingStatus(row.FromStatus),
		To:        models.ListingStatus(row.ToStatus),
		Reason:    row.Reason,
		ChangedAt: row.ChangedAt,
	}
}

func toAuctionRecord(a models.Auction) auctionRecord {
	return auctionRecord{
		AuctionID:       a.AuctionID,
		ListingID:       a.ListingID,
		SellerID:        a.SellerID,
		StartingBid:     a.StartingBid,
		CurrentBid:      a.CurrentBid,
		HighestBidderID: optional(a.HighestBidderID),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Status:          string(a.Status),
		Version:         a.Version,
		CreatedAt:       a.CreatedAt,
	}
}

func toAuction(row auctionRecord) models.Auction {
	return models.Auction{
		AuctionID:       row.AuctionID,
		ListingID:       row.ListingID,
		SellerID:        row.SellerID,
		StartingBid:     row.StartingBid,
		CurrentBid:      row.CurrentBid,
		HighestBidderID: deref(row.HighestBidderID),
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		Status:          models.AuctionStatus(row.Status),
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
	}
}

func toBidRecord(b models.Bid) bidRecord {
	return bidRecord{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
		IsWinning: b.IsWinning,
	}
}

func toBids(rows []bidRecord) []models.Bid {
	out := make([]models.Bid, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Bid{
			BidID:     row.BidID,
			AuctionID: row.AuctionID,
			BidderID:  row.BidderID,
			Amount:    row.Amount,
			CreatedAt: row.CreatedAt,
			IsWinning: row.IsWinning,
		})
	}
	return out
}

func toOrderRecord(o models.Order) orderRecord {
	return orderRecord{
		OrderID:     o.OrderID,
		ListingID:   o.ListingID,
		BuyerID:     o.BuyerID,
		SellerID:    optional(o.SellerID),
		Quantity:    o.Quantity,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toOrder(row orderRecord) models.Order {
	return models.Order{
		OrderID:     row.OrderID,
		ListingID:   row.ListingID,
		BuyerID:     row.BuyerID,
		SellerID:    deref(row.SellerID),
		Quantity:    row.Quantity,
		TotalAmount: row.TotalAmount,
		Status:      models.OrderStatus(row.Status),
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toReviewRecord(r models.Review) reviewRecord {
	return reviewRecord{
		ReviewID:   r.ReviewID,
		ReviewerID: r.ReviewerID,
		ListingID:  optional(r.ListingID),
		SellerID:   optional(r.SellerID),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func toReview(row reviewRecord) models.Review {
	return models.Review{
		ReviewID:   row.ReviewID,
		ReviewerID: row.ReviewerID,
		ListingID:  deref(row.ListingID),
		SellerID:   deref(row.SellerID),
		Rating:     row.Rating,
		Comment:    row.Comment,
		CreatedAt:  row.CreatedAt,
	}
}

func toMessageRecord(m models.Message) messageRecord {
	return messageRecord{
		MessageID:      m.MessageID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		ListingID:      optional(m.ListingID),
		Content:        m.Content,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

func toMessage(row messageRecord) models.Message {
	return models.Message{
		MessageID:      row.MessageID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		ReceiverID:     row.ReceiverID,
		ListingID:      deref(row.ListingID),
		Content:        row.Content,
		IsRead:         row.IsRead,
		CreatedAt:      row.CreatedAt,
	}
}

func toLocationRecord(l models.Location) locationRecord {
	return locationRecord{
		LocationID: l.LocationID,
		Name:       l.Name,
		NameEn:     l.NameEn,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		ParentID:   optional(l.ParentID),
		Level:      string(l.Level),
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
	}
}

func toLocation(row locationRecord) models.Location {
	return models.Location{
		LocationID: row.LocationID,
		Name:       row.Name,
		NameEn:     row.NameEn,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		ParentID:   deref(row.ParentID),
		Level:      models.LocationLevel(row.Level),
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
	}
}

func toSavedLocation(row savedLocationRecord) models.SavedLocation {
	return models.SavedLocation{
		SavedLocationID: row.SavedLocationID,
		UserID:          row.UserID,
		Name:            row.Name,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		Address:         row.Address,
		IsDefault:       row.IsDefault,
		CreatedAt:       row.CreatedAt,
	}
}

func toInquiryRecord(in models.Inquiry) inquiryRecord {
	return inquiryRecord{
		InquiryID:  in.InquiryID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Type:       string(in.Type),
		ListingID:  optional(in.ListingID),
		Message:    in.Message,
		Status:     string(in.Status),
		AdminNotes: in.AdminNotes,
		IPAddress:  in.IPAddress,
		UserAgent:  in.UserAgent,
		CreatedAt:  in.CreatedAt,
		UpdatedAt:  in.UpdatedAt,
	}
}

func toInquiry(row inquiryRecord, notes []notificationRecord) models.Inquiry {
	attempts := make([]models.NotificationAttempt, 0, len(notes))
	for _, n := range notes {
		attempts = append(attempts, models.NotificationAttempt{
			Channel:  n.Channel,
			State:    n.State,
			Attempts: n.Attempts,
			Error:    n.Error,
			At:       n.At,
		})
	}
	return models.Inquiry{
		InquiryID:     row.InquiryID,
		Name:          row.Name,
		Email:         row.Email,
		Phone:         row.Phone,
		Address:       row.Address,
		Type:          models.InquiryType(row.Type),
		ListingID:     deref(row.ListingID),
		Message:       row.Message,
		Status:        models.InquiryStatus(row.Status),
		AdminNotes:    row.AdminNotes,
		IPAddress:     row.IPAddress,
		UserAgent:     row.UserAgent,
		Notifications: attempts,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
