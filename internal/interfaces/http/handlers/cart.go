// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store   *cart.Store
	session *cart.SessionStore
}

// NewCartHandler creates a new cart handler
func NewCartHandler(deps *Dependencies) *CartHandler {
	return &CartHandler{
		store:   deps.Cart,
		session: deps.Session,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	Product   catalog.Product   `json:"product" binding:"required"`
	Selection pricing.Selection `json:"selection" binding:"required"`
}

// UpdateCartLineRequest represents update cart line request
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	lines := h.store.Lines()

	totalPrice, err := h.store.TotalPrice(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"lines":       lines,
			"total_items": h.store.TotalItemCount(),
			"total_price": totalPrice,
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	line, err := h.store.Add(req.Product, req.Selection)
	if err != nil {
		respondError(c, err)
		return
	}

	h.persistSession(c)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart successfully",
		"data":    line,
	})
}

// UpdateCartLine handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartLine(c *gin.Context) {
	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Zero or negative quantity removes the line
	h.store.UpdateQuantity(c.Param("id"), req.Quantity)
	h.persistSession(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart line updated successfully",
		"data": gin.H{
			"total_items": h.store.TotalItemCount(),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.store.Remove(c.Param("id"))
	h.persistSession(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart line removed successfully",
		"data": gin.H{
			"total_items": h.store.TotalItemCount(),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.store.Clear()
	h.persistSession(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// persistSession saves the current lines to Redis so a terminal restart
// keeps the in-progress cart. A persistence failure never fails the
// cart mutation itself.
func (h *CartHandler) persistSession(c *gin.Context) {
	if h.session == nil {
		return
	}
	if err := h.session.Save(c.Request.Context(), h.store.Lines()); err != nil {
		logrus.WithError(err).Warn("Failed to persist cart session")
	}
}
