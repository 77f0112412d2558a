package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"dalal-market/internal/auth"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"
)

const minPasswordLength = 8

// RegisterInput carries a new account's details
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	IsSeller    bool
}

// ProfileUpdate lists the fields a user may change on their own profile. Nil means unchanged.
type ProfileUpdate struct {
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
	IsSeller    *bool
}

// Session is the result of a successful login
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

// Profile is a user with their activity counters
type Profile struct {
	User  models.User      `json:"user"`
	Stats models.UserStats `json:"stats"`
}

// AccountService handles registration, login and user administration
type AccountService struct {
	users    repository.UserDB
	listings repository.ListingDB
	messages repository.MessageDB
	tokens   *auth.TokenManager
	now      func() time.Time
}

func NewAccountService(users repository.UserDB, listings repository.ListingDB, messages repository.MessageDB, tokens *auth.TokenManager) *AccountService {
	return &AccountService{
		users:    users,
		listings: listings,
		messages: messages,
		tokens:   tokens,
		now:      time.Now,
	}
}

// Register creates an active account with a bcrypt-hashed password
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if n := utf8.RuneCountInString(in.Username); n < 3 || n > 150 {
		return models.User{}, fmt.Errorf("service: %w - username must be 3 to 150 characters", marketerrors.ErrInvalidInput)
	}
	if in.Email == "" {
		return models.User{}, fmt.Errorf("service: %w - email is required", marketerrors.ErrInvalidInput)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return models.User{}, fmt.Errorf("service: %w - password must be at least %d characters", marketerrors.ErrInvalidInput, minPasswordLength)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		IsSeller:     in.IsSeller,
		IsActive:     true,
		DateJoined:   s.now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to register %s: %w", in.Username, err)
	}
	return user, nil
}

// Login checks credentials given a username or email and issues an access token
func (s *AccountService) Login(ctx context.Context, login, password string) (Session, error) {
	user, err := s.users.GetUserByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, marketerrors.ErrUserNotFound) {
		return Session{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return Session{}, fmt.Errorf("service: failed to load user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return Session{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}
	if !user.IsActive {
		return Session{}, fmt.Errorf("service: %w - %s", marketerrors.ErrUserSuspended, user.Username)
	}

	token, expiresAt, err := s.tokens.Issue(user.UserID, user.IsStaff)
	if err != nil {
		return Session{}, fmt.Errorf("service: %w", err)
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves a bearer token to a user that still exists and is active
func (s *AccountService) Authenticate(ctx context.Context, token string) (models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w - %v", marketerrors.ErrUnauthenticated, err)
	}
	user, err := s.users.GetUser(ctx, claims.Subject)
	if errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: %w - user no longer exists", marketerrors.ErrUnauthenticated)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", claims.Subject, err)
	}
	if !user.IsActive {
		return models.User{}, fmt.Errorf("service: %w - %s", marketerrors.ErrUserSuspended, user.Username)
	}
	return user, nil
}

// Profile returns the user with listing and message counters
func (s *AccountService) Profile(ctx context.Context, userID string) (Profile, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	listings, err := s.listings.SearchListings(ctx, models.ListingFilter{SellerID: userID})
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to list listings for %s: %w", userID, err)
	}

	stats := models.UserStats{TotalListings: len(listings)}
	for _, l := range listings {
		switch l.Status {
		case models.ListingSold:
			stats.SoldListings++
		case models.ListingActive:
			stats.ActiveListings++
		case models.ListingPendingApproval:
			stats.PendingListings++
		}
	}
	stats.SentMessages, stats.ReceivedMessages, err = s.messages.CountMessages(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("service: failed to count messages for %s: %w", userID, err)
	}
	return Profile{User: user, Stats: stats}, nil
}

// UpdateProfile applies the non-nil fields of update to the user's own record
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email == "" {
			return models.User{}, fmt.Errorf("service: %w - email cannot be empty", marketerrors.ErrInvalidInput)
		}
		user.Email = email
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.IsSeller != nil {
		user.IsSeller = *update.IsSeller
	}
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers is the staff user listing, newest first
func (s *AccountService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	switch filter.Type {
	case "", models.UserTypeSellers, models.UserTypeVerified, models.UserTypeStaff:
	default:
		return nil, fmt.Errorf("service: %w - unknown user type %q", marketerrors.ErrInvalidInput, filter.Type)
	}
	users, err := s.users.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// VerifyUser marks a user as verified by staff
func (s *AccountService) VerifyUser(ctx context.Context, userID string) (models.User, error) {
	return s.setFlag(ctx, userID, func(u *models.User) { u.IsVerified = true })
}

// SuspendUser deactivates a user; staff cannot suspend themselves
func (s *AccountService) SuspendUser(ctx context.Context, actorID, userID string) (models.User, error) {
	if actorID == userID {
		return models.User{}, fmt.Errorf("service: %w - cannot suspend your own account", marketerrors.ErrSelfAction)
	}
	return s.setFlag(ctx, userID, func(u *models.User) { u.IsActive = false })
}

// ReactivateUser lifts a suspension
func (s *AccountService) ReactivateUser(ctx context.Context, userID string) (models.User, error) {
	return s.setFlag(ctx, userID, func(u *models.User) { u.IsActive = true })
}

func (s *AccountService) setFlag(ctx context.Context, userID string, apply func(*models.User)) (models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	apply(&user)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	utils.Info("user flags updated", map[string]any{"user_id": userID, "is_active": user.IsActive, "is_verified": user.IsVerified})
	return user, nil
}
