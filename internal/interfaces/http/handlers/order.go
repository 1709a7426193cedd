// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/order"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
)

// OrderHandler handles order tracking endpoints
type OrderHandler struct {
	orders   *order.Client
	receipts *receipt.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(deps *Dependencies) *OrderHandler {
	return &OrderHandler{
		orders:   deps.Orders,
		receipts: deps.Receipts,
	}
}

// UpdateStatusRequest represents a status transition request
type UpdateStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := &order.ListFilter{
		Status: order.Status(c.Query("status")),
		Search: c.Query("search"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	result, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    result,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	fetched, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data": gin.H{
			"order":         fetched,
			"next_statuses": order.NextStatusOptions(fetched),
		},
	})
}

// UpdateOrderStatus handles PATCH /orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}

// AddPayment handles POST /orders/:id/payments
func (h *OrderHandler) AddPayment(c *gin.Context) {
	var req order.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orders.AddPayment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment added successfully",
		"data":    updated,
	})
}

// GetOrderStats handles GET /orders/stats
func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	filter := &order.StatsFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	stats, err := h.orders.GetStats(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order stats retrieved successfully",
		"data":    stats,
	})
}

// GetReceipt handles GET /orders/:id/receipt, streaming a PDF receipt
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	fetched, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := h.receipts.Generate(fetched)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", fetched.OrderCode)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}
