package handler

// Request DTOs
type CreateLocationRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	NameEn    string   `json:"name_en" binding:"max=100"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	ParentID  string   `json:"parent_id"`
	Level     string   `json:"level" binding:"required"`
}

type SaveLocationRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Address   string   `json:"address"`
	IsDefault bool     `json:"is_default"`
}
