package inquiries

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"dalal-market/internal/events"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"
)

const maxNotesLength = 5000

// Notifier fans a stored inquiry out to the configured channels without blocking the caller
type Notifier interface {
	NotifyAsync(inquiry models.Inquiry)
}

// InquiryInput is a customer's contact request
type InquiryInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	Type      models.InquiryType
	ListingID string
	Message   string
	IPAddress string
	UserAgent string
}

// InquiryUpdate holds staff changes; nil fields are left untouched
type InquiryUpdate struct {
	Status     *models.InquiryStatus
	AdminNotes *string
}

// InquiryService stores customer inquiries and triggers their notifications
type InquiryService struct {
	repo      repository.InquiryDB
	listings  repository.ListingDB
	notifier  Notifier
	publisher events.Publisher
	now       func() time.Time
}

func NewInquiryService(repo repository.InquiryDB, listings repository.ListingDB, notifier Notifier, publisher events.Publisher) *InquiryService {
	return &InquiryService{repo: repo, listings: listings, notifier: notifier, publisher: publisher, now: time.Now}
}

// CreateInquiry stores the inquiry and hands it to the notifier
func (s *InquiryService) CreateInquiry(ctx context.Context, in InquiryInput) (models.Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	message := strings.TrimSpace(in.Message)
	if name == "" || phone == "" || message == "" {
		return models.Inquiry{}, fmt.Errorf("service: %w - name, phone and message are required", marketerrors.ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return models.Inquiry{}, fmt.Errorf("service: %w - invalid email %q", marketerrors.ErrInvalidInput, email)
		}
	}
	kind := in.Type
	if kind == "" {
		kind = models.InquiryGeneral
	}
	if !kind.Valid() {
		return models.Inquiry{}, fmt.Errorf("service: %w - unknown inquiry type %q", marketerrors.ErrInvalidInput, in.Type)
	}
	if in.ListingID != "" {
		if _, err := s.listings.GetListing(ctx, in.ListingID); err != nil {
			return models.Inquiry{}, fmt.Errorf("service: failed to get listing %s: %w", in.ListingID, err)
		}
	}

	now := s.now().UTC()
	inquiry := models.Inquiry{
		InquiryID:     utils.GenerateID(),
		Name:          name,
		Email:         email,
		Phone:         phone,
		Address:       strings.TrimSpace(in.Address),
		Type:          kind,
		ListingID:     in.ListingID,
		Message:       message,
		Status:        models.InquiryNew,
		IPAddress:     in.IPAddress,
		UserAgent:     in.UserAgent,
		Notifications: []models.NotificationAttempt{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateInquiry(ctx, inquiry); err != nil {
		return models.Inquiry{}, fmt.Errorf("service: failed to create inquiry: %w", err)
	}

	utils.Info("inquiry received", map[string]any{"inquiry_id": inquiry.InquiryID, "type": string(kind)})
	events.PublishOrLog(ctx, s.publisher, events.SubjectInquiryCreated, events.InquiryCreated{
		InquiryID: inquiry.InquiryID,
		Type:      inquiry.Type,
		ListingID: inquiry.ListingID,
		At:        now,
	})
	if s.notifier != nil {
		s.notifier.NotifyAsync(inquiry)
	}
	return inquiry, nil
}

// GetInquiry returns one inquiry with its notification outcomes
func (s *InquiryService) GetInquiry(ctx context.Context, inquiryID string) (models.Inquiry, error) {
	inquiry, err := s.repo.GetInquiry(ctx, inquiryID)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("service: failed to get inquiry %s: %w", inquiryID, err)
	}
	return inquiry, nil
}

// ListInquiries returns inquiries, optionally with one status only
func (s *InquiryService) ListInquiries(ctx context.Context, status models.InquiryStatus) ([]models.Inquiry, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("service: %w - %q", marketerrors.ErrInvalidStatus, status)
	}
	out, err := s.repo.ListInquiries(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list inquiries: %w", err)
	}
	return out, nil
}

// UpdateInquiry applies a staff status change and/or notes
func (s *InquiryService) UpdateInquiry(ctx context.Context, inquiryID string, upd InquiryUpdate) (models.Inquiry, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return models.Inquiry{}, fmt.Errorf("service: %w - %q", marketerrors.ErrInvalidStatus, *upd.Status)
	}
	if upd.AdminNotes != nil && len(*upd.AdminNotes) > maxNotesLength {
		return models.Inquiry{}, fmt.Errorf("service: %w - notes exceed %d bytes", marketerrors.ErrInvalidInput, maxNotesLength)
	}
	inquiry, err := s.repo.GetInquiry(ctx, inquiryID)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("service: failed to get inquiry %s: %w", inquiryID, err)
	}
	if upd.Status != nil {
		inquiry.Status = *upd.Status
	}
	if upd.AdminNotes != nil {
		inquiry.AdminNotes = strings.TrimSpace(*upd.AdminNotes)
	}
	inquiry.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateInquiry(ctx, inquiry); err != nil {
		return models.Inquiry{}, fmt.Errorf("service: failed to update inquiry %s: %w", inquiryID, err)
	}
	return inquiry, nil
}
