// internal/interfaces/http/handlers/deps.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
	"github.com/your-org/pos-terminal/internal/domain/order"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
)

// Dependencies bundles everything the handlers need. The cart store and
// session store are owned by main and passed down explicitly; there is
// no package-level state.
type Dependencies struct {
	Config   *config.Config
	Catalog  *catalog.Client
	Cart     *cart.Store
	Session  *cart.SessionStore
	Checkout *checkout.Service
	Orders   *order.Client
	Receipts *receipt.Service
}

// respondError translates domain errors into HTTP answers
func respondError(c *gin.Context, err error) {
	var apiErr *order.APIError
	switch {
	case errors.As(err, &apiErr):
		c.JSON(apiErr.StatusCode, gin.H{
			"error": apiErr.Error(),
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, catalog.ErrInvalidResponse):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, pricing.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	}
}
