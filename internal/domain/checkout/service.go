// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/order"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

// OrderCreator submits order payloads to the backend
type OrderCreator interface {
	Create(ctx context.Context, submission *order.Submission) (*order.Order, error)
}

// Service converts cart lines into order submissions and drives checkout
type Service struct {
	resolver cart.ProductResolver
	orders   OrderCreator
	channel  string
}

// NewService creates a new checkout service
func NewService(resolver cart.ProductResolver, orders OrderCreator, channel string) *Service {
	return &Service{
		resolver: resolver,
		orders:   orders,
		channel:  channel,
	}
}

// Request carries the checkout parameters beyond the cart itself
type Request struct {
	PaymentMethod order.PaymentMethod `json:"payment_method"`
	CustomerInfo  *order.CustomerInfo `json:"customer_info,omitempty"`
	Note          string              `json:"note,omitempty"`
}

// BuildSubmission re-derives the price breakdown of every cart line and
// assembles the backend-ready order payload. A line whose product cannot
// be resolved fails the whole build: dropping it would silently shrink
// the order total the customer is charged.
func (s *Service) BuildSubmission(ctx context.Context, lines []cart.Line, req *Request) (*order.Submission, error) {
	items := make([]order.Line, 0, len(lines))
	var subtotal int64

	for i := range lines {
		line := &lines[i]

		resolved, err := s.resolver.Resolve(ctx, line.Product.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s for line %s: %w", line.Product.ID, line.ID, err)
		}

		breakdown, err := pricing.Breakdown(resolved, line.Selection)
		if err != nil {
			return nil, fmt.Errorf("failed to price line %s: %w", line.ID, err)
		}

		item := order.Line{
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductImage: line.Product.ImageURL,
			BasePrice:    breakdown.BasePrice,
			Quantity:     breakdown.Quantity,
			Options:      breakdown.Options,
			LineTotal:    breakdown.LineTotal,
		}
		if item.Options == nil {
			item.Options = []pricing.SelectedOption{}
		}
		if breakdown.Variant != nil {
			item.VariantID = breakdown.Variant.ID
			item.VariantName = breakdown.Variant.Name
		}

		items = append(items, item)
		subtotal += breakdown.LineTotal
	}

	return &order.Submission{
		Items:           items,
		Subtotal:        subtotal,
		Discount:        0,
		DiscountPercent: 0,
		Total:           subtotal,
		PaymentMethod:   req.PaymentMethod,
		CustomerInfo:    req.CustomerInfo,
		Channel:         s.channel,
		Note:            req.Note,
	}, nil
}

// PlaceOrder builds the submission from the cart's current lines, creates
// the order on the backend and clears the cart. The cart is only cleared
// after the backend confirms the create; any failure leaves it untouched.
func (s *Service) PlaceOrder(ctx context.Context, store *cart.Store, req *Request) (*order.Order, error) {
	lines := store.Lines()
	if len(lines) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	submission, err := s.BuildSubmission(ctx, lines, req)
	if err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, submission)
	if err != nil {
		return nil, err
	}

	store.Clear()

	logrus.WithFields(logrus.Fields{
		"order_id":   created.ID,
		"order_code": created.OrderCode,
		"total":      created.Total,
		"items":      len(submission.Items),
	}).Info("Order placed")

	return created, nil
}
