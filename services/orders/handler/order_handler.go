package handler

import (
	"context"
	"net/http"

	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, buyerID, listingID string, quantity int, notes string) (models.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (models.Order, error)
	MyOrders(ctx context.Context, userID string) (models.MyOrders, error)
	UpdateOrderStatus(ctx context.Context, sellerID, orderID string, status models.OrderStatus) (models.Order, error)
	CancelOrder(ctx context.Context, buyerID, orderID string) (models.Order, error)
	OrderHistory(ctx context.Context, userID string) ([]models.Order, error)
}

type OrderHandler struct {
	service OrderServiceInterface
}

func NewOrderHandler(service OrderServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateOrderHandler handles POST /orders
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "CreateOrderHandler")
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOrderHandler", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, err := h.service.CreateOrder(c.Request.Context(), user.UserID, req.ListingID, req.Quantity, req.Notes)
	if err != nil {
		helpers.HandleServiceError(c, "CreateOrderHandler", "failed to create order", err, map[string]any{
			"listing_id": req.ListingID,
			"buyer_id":   user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, order, "order created successfully")
	helpers.LogSuccess("CreateOrderHandler", "order created successfully", map[string]any{
		"order_id":     order.OrderID,
		"listing_id":   order.ListingID,
		"total_amount": order.TotalAmount.String(),
	})
}

// MyOrdersHandler handles GET /orders
func (h *OrderHandler) MyOrdersHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "MyOrdersHandler")
	if !ok {
		return
	}
	mine, err := h.service.MyOrders(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "MyOrdersHandler", "error listing orders", err, map[string]any{"user_id": user.UserID})
		return
	}
	if mine.Buying == nil {
		mine.Buying = []models.Order{}
	}
	if mine.Selling == nil {
		mine.Selling = []models.Order{}
	}

	utils.JSONResponse(c, http.StatusOK, mine, "orders retrieved successfully")
	helpers.LogSuccess("MyOrdersHandler", "orders retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"total":   mine.Stats.Total,
	})
}

// OrderHistoryHandler handles GET /orders/history
func (h *OrderHandler) OrderHistoryHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "OrderHistoryHandler")
	if !ok {
		return
	}
	orders, err := h.service.OrderHistory(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "OrderHistoryHandler", "error listing order history", err, map[string]any{"user_id": user.UserID})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.JSONResponse(c, http.StatusOK, orders, "order history retrieved successfully")
	helpers.LogSuccess("OrderHistoryHandler", "order history retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(orders),
	})
}

// GetOrderHandler handles GET /orders/:order_id
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "GetOrderHandler")
	if !ok {
		return
	}
	orderID := c.Param("order_id")
	order, err := h.service.GetOrder(c.Request.Context(), user.UserID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "GetOrderHandler", "error retrieving order", err, map[string]any{"order_id": orderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order retrieved successfully")
	helpers.LogSuccess("GetOrderHandler", "order retrieved successfully", map[string]any{"order_id": orderID})
}

// UpdateOrderStatusHandler handles PATCH /orders/:order_id/status
func (h *OrderHandler) UpdateOrderStatusHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "UpdateOrderStatusHandler")
	if !ok {
		return
	}
	orderID := c.Param("order_id")
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateOrderStatusHandler", err)
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), user.UserID, orderID, models.OrderStatus(req.Status))
	if err != nil {
		helpers.HandleServiceError(c, "UpdateOrderStatusHandler", "failed to update order status", err, map[string]any{
			"order_id": orderID,
			"status":   req.Status,
			"user_id":  user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order status updated successfully")
	helpers.LogSuccess("UpdateOrderStatusHandler", "order status updated successfully", map[string]any{
		"order_id": orderID,
		"status":   order.Status,
	})
}

// CancelOrderHandler handles POST /orders/:order_id/cancel
func (h *OrderHandler) CancelOrderHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "CancelOrderHandler")
	if !ok {
		return
	}
	orderID := c.Param("order_id")
	order, err := h.service.CancelOrder(c.Request.Context(), user.UserID, orderID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelOrderHandler", "failed to cancel order", err, map[string]any{
			"order_id": orderID,
			"user_id":  user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, order, "order cancelled successfully")
	helpers.LogSuccess("CancelOrderHandler", "order cancelled successfully", map[string]any{"order_id": orderID})
}
