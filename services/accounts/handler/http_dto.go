package handler

// Request DTOs
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"max=150"`
	LastName    string `json:"last_name" binding:"max=150"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
	Address     string `json:"address"`
	IsSeller    bool   `json:"is_seller"`
}

// LoginRequest accepts either a username or an email in Login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name" binding:"omitempty,max=150"`
	LastName    *string `json:"last_name" binding:"omitempty,max=150"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
	Address     *string `json:"address"`
	IsSeller    *bool   `json:"is_seller"`
}
