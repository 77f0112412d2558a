package handler

import (
	"context"
	"net/http"

	inquiries "dalal-market/internal/inquiryService"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, in inquiries.InquiryInput) (models.Inquiry, error)
	GetInquiry(ctx context.Context, inquiryID string) (models.Inquiry, error)
	ListInquiries(ctx context.Context, status models.InquiryStatus) ([]models.Inquiry, error)
	UpdateInquiry(ctx context.Context, inquiryID string, upd inquiries.InquiryUpdate) (models.Inquiry, error)
}

type InquiryHandler struct {
	service InquiryServiceInterface
}

func NewInquiryHandler(service InquiryServiceInterface) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// CreateInquiryHandler handles POST /inquiries
func (h *InquiryHandler) CreateInquiryHandler(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateInquiryHandler", err)
		return
	}

	inquiry, err := h.service.CreateInquiry(c.Request.Context(), inquiries.InquiryInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Type:      models.InquiryType(req.Type),
		ListingID: req.ListingID,
		Message:   req.Message,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateInquiryHandler", "failed to create inquiry", err, map[string]any{"type": req.Type})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, inquiry, "inquiry received successfully")
	helpers.LogSuccess("CreateInquiryHandler", "inquiry received successfully", map[string]any{
		"inquiry_id": inquiry.InquiryID,
		"type":       inquiry.Type,
	})
}

// ListInquiriesHandler handles GET /admin/inquiries?status=
func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	status := models.InquiryStatus(c.Query("status"))
	list, err := h.service.ListInquiries(c.Request.Context(), status)
	if err != nil {
		helpers.HandleServiceError(c, "ListInquiriesHandler", "error listing inquiries", err, map[string]any{"status": status})
		return
	}
	if list == nil {
		list = []models.Inquiry{}
	}

	utils.JSONResponse(c, http.StatusOK, list, "inquiries retrieved successfully")
	helpers.LogSuccess("ListInquiriesHandler", "inquiries retrieved successfully", map[string]any{
		"status": status,
		"count":  len(list),
	})
}

// GetInquiryHandler handles GET /admin/inquiries/:inquiry_id
func (h *InquiryHandler) GetInquiryHandler(c *gin.Context) {
	inquiryID := c.Param("inquiry_id")
	inquiry, err := h.service.GetInquiry(c.Request.Context(), inquiryID)
	if err != nil {
		helpers.HandleServiceError(c, "GetInquiryHandler", "error retrieving inquiry", err, map[string]any{"inquiry_id": inquiryID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, inquiry, "inquiry retrieved successfully")
	helpers.LogSuccess("GetInquiryHandler", "inquiry retrieved successfully", map[string]any{"inquiry_id": inquiryID})
}

// UpdateInquiryHandler handles PATCH /admin/inquiries/:inquiry_id
func (h *InquiryHandler) UpdateInquiryHandler(c *gin.Context) {
	inquiryID := c.Param("inquiry_id")
	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateInquiryHandler", err)
		return
	}

	var upd inquiries.InquiryUpdate
	if req.Status != nil {
		status := models.InquiryStatus(*req.Status)
		upd.Status = &status
	}
	upd.AdminNotes = req.AdminNotes

	inquiry, err := h.service.UpdateInquiry(c.Request.Context(), inquiryID, upd)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateInquiryHandler", "failed to update inquiry", err, map[string]any{"inquiry_id": inquiryID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, inquiry, "inquiry updated successfully")
	helpers.LogSuccess("UpdateInquiryHandler", "inquiry updated successfully", map[string]any{
		"inquiry_id": inquiryID,
		"status":     inquiry.Status,
	})
}
