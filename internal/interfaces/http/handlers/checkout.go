// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	store           *cart.Store
	session         *cart.SessionStore
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(deps *Dependencies) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: deps.Checkout,
		store:           deps.Cart,
		session:         deps.Session,
	}
}

// PreviewSubmission handles GET /checkout/preview, returning the order
// payload that would be submitted for the current cart
func (h *CheckoutHandler) PreviewSubmission(c *gin.Context) {
	req := &checkout.Request{PaymentMethod: "cash"}
	submission, err := h.checkoutService.BuildSubmission(c.Request.Context(), h.store.Lines(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout preview built successfully",
		"data":    submission,
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	created, err := h.checkoutService.PlaceOrder(c.Request.Context(), h.store, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	// The cart was cleared after the confirmed create; drop the
	// persisted session snapshot too
	if h.session != nil {
		if err := h.session.Clear(c.Request.Context()); err != nil {
			logrus.WithError(err).Warn("Failed to clear cart session after checkout")
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    created,
	})
}
