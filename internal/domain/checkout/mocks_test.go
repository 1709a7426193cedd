package checkout

import (
	"context"
	"errors"

	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/order"
)

// mockResolver serves canned product data and fails for unknown ids
type mockResolver struct {
	products map[string]*catalog.ProductOptions
}

func (r *mockResolver) Resolve(_ context.Context, productID string) (*catalog.ProductOptions, error) {
	resolved, ok := r.products[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return resolved, nil
}

// mockOrderCreator records submissions and answers with a canned order
// or a configured error
type mockOrderCreator struct {
	submissions []*order.Submission
	created     *order.Order
	err         error
}

func (m *mockOrderCreator) Create(_ context.Context, submission *order.Submission) (*order.Order, error) {
	m.submissions = append(m.submissions, submission)
	if m.err != nil {
		return nil, m.err
	}
	if m.created != nil {
		return m.created, nil
	}
	return &order.Order{
		ID:        "o1",
		OrderCode: "DH-0001",
		Status:    order.StatusPreparing,
		Subtotal:  submission.Subtotal,
		Total:     submission.Total,
	}, nil
}

var errBackendDown = errors.New("backend down")
