// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

// Line represents one customized product in the cart. Two lines may
// reference the same product with identical selections; they are never
// merged because each represents an independent customization.
type Line struct {
	ID        string            `json:"id"`
	Product   catalog.Product   `json:"product"`
	Selection pricing.Selection `json:"selection"`
	AddedAt   time.Time         `json:"added_at"`
}

// Quantity returns the line quantity
func (l *Line) Quantity() int {
	return l.Selection.Quantity
}
