// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

// ProductHandler handles menu browsing endpoints
type ProductHandler struct {
	catalog *catalog.Client
}

// NewProductHandler creates a new product handler
func NewProductHandler(deps *Dependencies) *ProductHandler {
	return &ProductHandler{
		catalog: deps.Catalog,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// Optional client-side category filter
	if category := c.Query("category"); category != "" {
		filtered := make([]catalog.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products":   products,
			"categories": catalog.Categories(products),
		},
	})
}

// GetProductOptions handles GET /products/:id/options
func (h *ProductHandler) GetProductOptions(c *gin.Context) {
	resolved, err := h.catalog.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product options retrieved successfully",
		"data":    resolved,
	})
}

// PreviewPrice handles POST /products/:id/price, the live price display
// for the options modal. It prices a selection without touching the cart.
func (h *ProductHandler) PreviewPrice(c *gin.Context) {
	var sel pricing.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resolved, err := h.catalog.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	lineTotal, err := pricing.LineTotal(resolved, sel)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price computed successfully",
		"data": gin.H{
			"line_total": lineTotal,
		},
	})
}
