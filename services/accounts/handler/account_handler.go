package handler

import (
	"context"
	"net/http"

	accounts "dalal-market/internal/accountService"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, in accounts.RegisterInput) (models.User, error)
	Login(ctx context.Context, login, password string) (accounts.Session, error)
	Profile(ctx context.Context, userID string) (accounts.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update accounts.ProfileUpdate) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	VerifyUser(ctx context.Context, userID string) (models.User, error)
	SuspendUser(ctx context.Context, actorID, userID string) (models.User, error)
	ReactivateUser(ctx context.Context, userID string) (models.User, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), accounts.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsSeller:    req.IsSeller,
	})
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", "failed to register user", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id":   user.UserID,
		"username":  user.Username,
		"is_seller": user.IsSeller,
	})
}

// LoginHandler handles POST /auth/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", "login failed", err, map[string]any{"login": req.Login})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"user_id": session.User.UserID})
}

// ProfileHandler handles GET /users/me
func (h *AccountHandler) ProfileHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "ProfileHandler")
	if !ok {
		return
	}
	profile, err := h.service.Profile(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "ProfileHandler", "error retrieving profile", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
	helpers.LogSuccess("ProfileHandler", "profile retrieved successfully", map[string]any{"user_id": user.UserID})
}

// UpdateProfileHandler handles PATCH /users/me
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "UpdateProfileHandler")
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), user.UserID, accounts.ProfileUpdate{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsSeller:    req.IsSeller,
	})
	if err != nil {
		helpers.HandleServiceError(c, "UpdateProfileHandler", "failed to update profile", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"user_id": user.UserID})
}

// ListUsersHandler handles GET /admin/users
func (h *AccountHandler) ListUsersHandler(c *gin.Context) {
	filter := models.UserFilter{Type: c.Query("type"), Search: c.Query("search")}
	users, err := h.service.ListUsers(c.Request.Context(), filter)
	if err != nil {
		helpers.HandleServiceError(c, "ListUsersHandler", "error listing users", err, map[string]any{"type": filter.Type})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{
		"type":  filter.Type,
		"count": len(users),
	})
}

// VerifyUserHandler handles POST /admin/users/:user_id/verify
func (h *AccountHandler) VerifyUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.VerifyUser(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "VerifyUserHandler", "failed to verify user", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user verified successfully")
	helpers.LogSuccess("VerifyUserHandler", "user verified successfully", map[string]any{"user_id": userID})
}

// SuspendUserHandler handles POST /admin/users/:user_id/suspend
func (h *AccountHandler) SuspendUserHandler(c *gin.Context) {
	actor, ok := helpers.RequireUser(c, "SuspendUserHandler")
	if !ok {
		return
	}
	userID := c.Param("user_id")
	user, err := h.service.SuspendUser(c.Request.Context(), actor.UserID, userID)
	if err != nil {
		helpers.HandleServiceError(c, "SuspendUserHandler", "failed to suspend user", err, map[string]any{
			"user_id":  userID,
			"actor_id": actor.UserID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user suspended successfully")
	helpers.LogSuccess("SuspendUserHandler", "user suspended successfully", map[string]any{"user_id": userID, "actor_id": actor.UserID})
}

// ReactivateUserHandler handles POST /admin/users/:user_id/reactivate
func (h *AccountHandler) ReactivateUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.ReactivateUser(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "ReactivateUserHandler", "failed to reactivate user", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user reactivated successfully")
	helpers.LogSuccess("ReactivateUserHandler", "user reactivated successfully", map[string]any{"user_id": userID})
}
