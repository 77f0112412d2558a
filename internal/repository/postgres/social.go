package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateReview(ctx context.Context, review models.Review) error {
	rec := toReviewRecord(review)
	return translate("create review", s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrListingNotFound)
}

func (s *Store) GetReview(ctx context.Context, reviewID string) (models.Review, error) {
	var rec reviewRecord
	if err := s.db.WithContext(ctx).Where("review_id = ?", reviewID).Take(&rec).Error; err != nil {
		return models.Review{}, translate("get review "+reviewID, err, marketerrors.ErrReviewNotFound)
	}
	return toReview(rec), nil
}

func (s *Store) UpdateReview(ctx context.Context, review models.Review) error {
	res := s.db.WithContext(ctx).Model(&reviewRecord{}).Where("review_id = ?", review.ReviewID).
		Updates(map[string]any{"rating": review.Rating, "comment": review.Comment})
	if res.Error != nil {
		return fmt.Errorf("update review %s: %w", review.ReviewID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update review %s: %w", review.ReviewID, marketerrors.ErrReviewNotFound)
	}
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, reviewID string) error {
	res := s.db.WithContext(ctx).Where("review_id = ?", reviewID).Delete(&reviewRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete review %s: %w", reviewID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete review %s: %w", reviewID, marketerrors.ErrReviewNotFound)
	}
	return nil
}

func (s *Store) ListReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	q := s.db.WithContext(ctx).Model(&reviewRecord{})
	if filter.ReviewerID != "" {
		q = q.Where("reviewer_id = ?", filter.ReviewerID)
	}
	if filter.ListingID != "" {
		q = q.Where("listing_id = ?", filter.ListingID)
	}
	if filter.SellerID != "" {
		q = q.Where("seller_id = ?", filter.SellerID)
	}
	var rows []reviewRecord
	if err := q.Order("created_at DESC, review_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	out := make([]models.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReview(row))
	}
	return out, nil
}

func (s *Store) CreateConversation(ctx context.Context, conversation models.Conversation) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := conversationRecord{
			ConversationID: conversation.ConversationID,
			ListingID:      optional(conversation.ListingID),
			CreatedAt:      conversation.CreatedAt,
			UpdatedAt:      conversation.UpdatedAt,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		for _, userID := range conversation.ParticipantIDs {
			if err := tx.Create(&participantRecord{ConversationID: rec.ConversationID, UserID: userID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate("create conversation", err, marketerrors.ErrUserNotFound)
}

func (s *Store) loadConversations(ctx context.Context, rows []conversationRecord) ([]models.Conversation, error) {
	if len(rows) == 0 {
		return []models.Conversation{}, nil
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ConversationID)
	}
	var parts []participantRecord
	if err := s.db.WithContext(ctx).Where("conversation_id IN ?", ids).Order("user_id").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	byConversation := make(map[string][]string, len(rows))
	for _, p := range parts {
		byConversation[p.ConversationID] = append(byConversation[p.ConversationID], p.UserID)
	}

	out := make([]models.Conversation, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Conversation{
			ConversationID: row.ConversationID,
			ParticipantIDs: byConversation[row.ConversationID],
			ListingID:      deref(row.ListingID),
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		})
	}
	return out, nil
}

func (s *Store) GetConversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	var rec conversationRecord
	if err := s.db.WithContext(ctx).Where("conversation_id = ?", conversationID).Take(&rec).Error; err != nil {
		return models.Conversation{}, translate("get conversation "+conversationID, err, marketerrors.ErrConversationNotFound)
	}
	convs, err := s.loadConversations(ctx, []conversationRecord{rec})
	if err != nil {
		return models.Conversation{}, err
	}
	return convs[0], nil
}

func (s *Store) FindConversation(ctx context.Context, listingID, userA, userB string) (models.Conversation, error) {
	member := "EXISTS (SELECT 1 FROM conversation_participants p WHERE p.conversation_id = conversations.conversation_id AND p.user_id = ?)"
	q := s.db.WithContext(ctx).Model(&conversationRecord{}).Where(member, userA).Where(member, userB)
	if listingID == "" {
		q = q.Where("listing_id IS NULL")
	} else {
		q = q.Where("listing_id = ?", listingID)
	}
	var rec conversationRecord
	if err := q.Order("created_at").Take(&rec).Error; err != nil {
		return models.Conversation{}, translate("find conversation", err, marketerrors.ErrConversationNotFound)
	}
	convs, err := s.loadConversations(ctx, []conversationRecord{rec})
	if err != nil {
		return models.Conversation{}, err
	}
	return convs[0], nil
}

func (s *Store) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	var rows []conversationRecord
	err := s.db.WithContext(ctx).
		Where("conversation_id IN (?)", s.db.Model(&participantRecord{}).Select("conversation_id").Where("user_id = ?", userID)).
		Order("updated_at DESC, conversation_id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations for %s: %w", userID, err)
	}
	return s.loadConversations(ctx, rows)
}

func (s *Store) AddMessage(ctx context.Context, message models.Message) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&conversationRecord{}).Where("conversation_id = ?", message.ConversationID).
			Update("updated_at", message.CreatedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("add message to %s: %w", message.ConversationID, marketerrors.ErrConversationNotFound)
		}
		rec := toMessageRecord(message)
		return tx.Create(&rec).Error
	})
}

func (s *Store) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	var rows []messageRecord
	if err := s.db.WithContext(ctx).Where("conversation_id = ?", conversationID).Order("created_at, message_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list messages %s: %w", conversationID, err)
	}
	out := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMessage(row))
	}
	return out, nil
}

func (s *Store) MarkRead(ctx context.Context, conversationID, receiverID string) (int, error) {
	if _, err := s.GetConversation(ctx, conversationID); err != nil {
		return 0, err
	}
	q := s.db.WithContext(ctx).Model(&messageRecord{}).Where("conversation_id = ? AND NOT is_read", conversationID)
	if receiverID != "" {
		q = q.Where("receiver_id = ?", receiverID)
	}
	res := q.Update("is_read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("mark read %s: %w", conversationID, res.Error)
	}
	return int(res.RowsAffected), nil
}

func (s *Store) CountUnread(ctx context.Context, conversationID, receiverID string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&messageRecord{}).
		Where("conversation_id = ? AND receiver_id = ? AND NOT is_read", conversationID, receiverID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count unread %s: %w", conversationID, err)
	}
	return int(n), nil
}

func (s *Store) CountMessages(ctx context.Context, userID string) (int, int, error) {
	var sent, received int64
	if err := s.db.WithContext(ctx).Model(&messageRecord{}).Where("sender_id = ?", userID).Count(&sent).Error; err != nil {
		return 0, 0, fmt.Errorf("count sent messages: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&messageRecord{}).Where("receiver_id = ?", userID).Count(&received).Error; err != nil {
		return 0, 0, fmt.Errorf("count received messages: %w", err)
	}
	return int(sent), int(received), nil
}

func (s *Store) CreateInquiry(ctx context.Context, inquiry models.Inquiry) error {
	rec := toInquiryRecord(inquiry)
	return translate("create inquiry", s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrListingNotFound)
}

func (s *Store) GetInquiry(ctx context.Context, inquiryID string) (models.Inquiry, error) {
	var rec inquiryRecord
	if err := s.db.WithContext(ctx).Where("inquiry_id = ?", inquiryID).Take(&rec).Error; err != nil {
		return models.Inquiry{}, translate("get inquiry "+inquiryID, err, marketerrors.ErrInquiryNotFound)
	}
	var notes []notificationRecord
	if err := s.db.WithContext(ctx).Where("inquiry_id = ?", inquiryID).Order("id").Find(&notes).Error; err != nil {
		return models.Inquiry{}, fmt.Errorf("get inquiry notifications %s: %w", inquiryID, err)
	}
	return toInquiry(rec, notes), nil
}

func (s *Store) ListInquiries(ctx context.Context, status models.InquiryStatus) ([]models.Inquiry, error) {
	q := s.db.WithContext(ctx).Model(&inquiryRecord{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var rows []inquiryRecord
	if err := q.Order("created_at DESC, inquiry_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	if len(rows) == 0 {
		return []models.Inquiry{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.InquiryID)
	}
	var notes []notificationRecord
	if err := s.db.WithContext(ctx).Where("inquiry_id IN ?", ids).Order("id").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list inquiry notifications: %w", err)
	}
	byInquiry := make(map[string][]notificationRecord, len(rows))
	for _, n := range notes {
		byInquiry[n.InquiryID] = append(byInquiry[n.InquiryID], n)
	}

	out := make([]models.Inquiry, 0, len(rows))
	for _, row := range rows {
		out = append(out, toInquiry(row, byInquiry[row.InquiryID]))
	}
	return out, nil
}

func (s *Store) UpdateInquiry(ctx context.Context, inquiry models.Inquiry) error {
	res := s.db.WithContext(ctx).Model(&inquiryRecord{}).Where("inquiry_id = ?", inquiry.InquiryID).
		Updates(map[string]any{
			"status":      string(inquiry.Status),
			"admin_notes": inquiry.AdminNotes,
			"updated_at":  inquiry.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update inquiry %s: %w", inquiry.InquiryID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update inquiry %s: %w", inquiry.InquiryID, marketerrors.ErrInquiryNotFound)
	}
	return nil
}

func (s *Store) RecordNotification(ctx context.Context, inquiryID string, attempt models.NotificationAttempt) error {
	if attempt.At.IsZero() {
		attempt.At = time.Now().UTC()
	}
	rec := notificationRecord{
		InquiryID: inquiryID,
		Channel:   attempt.Channel,
		State:     attempt.State,
		Attempts:  attempt.Attempts,
		Error:     attempt.Error,
		At:        attempt.At,
	}
	err := s.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("record notification for %s: %w", inquiryID, marketerrors.ErrInquiryNotFound)
	}
	if err != nil {
		return fmt.Errorf("record notification for %s: %w", inquiryID, err)
	}
	return nil
}
