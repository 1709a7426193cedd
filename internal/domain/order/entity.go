// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

// Status represents the order status
type Status string

const (
	StatusPreparing Status = "preparing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodApp      PaymentMethod = "app"
)

// Line is one denormalized order line. It snapshots product, variant and
// option names and prices so the record stays valid even if the catalog
// changes later.
type Line struct {
	ProductID    string                   `json:"productId"`
	ProductName  string                   `json:"productName"`
	ProductImage string                   `json:"productImage,omitempty"`
	VariantID    string                   `json:"variantId,omitempty"`
	VariantName  string                   `json:"variantName,omitempty"`
	BasePrice    int64                    `json:"basePrice"`
	Quantity     int                      `json:"quantity"`
	Options      []pricing.SelectedOption `json:"options"`
	LineTotal    int64                    `json:"lineTotal"`
}

// CustomerInfo carries optional customer details on an order
type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Table string `json:"table,omitempty"`
}

// Submission is the payload sent to POST /api/orders
type Submission struct {
	Items           []Line        `json:"items"`
	Subtotal        int64         `json:"subtotal"`
	Discount        int64         `json:"discount"`
	DiscountPercent int64         `json:"discountPercent"`
	Total           int64         `json:"total"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	CustomerInfo    *CustomerInfo `json:"customerInfo,omitempty"`
	Channel         string        `json:"channel"`
	Note            string        `json:"note,omitempty"`
}

// Payment is one payment record attached to an order
type Payment struct {
	Method    PaymentMethod `json:"method"`
	Amount    int64         `json:"amount"`
	TxnID     string        `json:"txnId,omitempty"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Order is an order record as owned by the backend and mirrored locally
type Order struct {
	ID              string        `json:"_id"`
	OrderCode       string        `json:"orderCode"`
	Status          Status        `json:"status"`
	Channel         string        `json:"channel"`
	Items           []Line        `json:"items"`
	Subtotal        int64         `json:"subtotal"`
	Discount        int64         `json:"discount"`
	DiscountPercent int64         `json:"discountPercent"`
	Total           int64         `json:"total"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Payments        []Payment     `json:"payments"`
	IsPaid          bool          `json:"isPaid"`
	PaidAt          *time.Time    `json:"paidAt,omitempty"`
	CustomerInfo    *CustomerInfo `json:"customerInfo,omitempty"`
	StaffID         string        `json:"staffId,omitempty"`
	Note            string        `json:"note,omitempty"`
	TotalItems      int           `json:"totalItems"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// PaymentRequest is the body of POST /api/orders/{id}/payments
type PaymentRequest struct {
	Method PaymentMethod `json:"method"`
	Amount int64         `json:"amount"`
	TxnID  string        `json:"txnId,omitempty"`
	Note   string        `json:"note,omitempty"`
}

// ListFilter narrows a List call
type ListFilter struct {
	Status Status
	Page   int
	Limit  int
	Search string
}

// ListResult is the paginated response of GET /api/orders
type ListResult struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
}

// StatsFilter bounds a Stats call by date
type StatsFilter struct {
	StartDate string
	EndDate   string
}

// Stats is the aggregate response of GET /api/orders/stats
type Stats struct {
	TotalOrders       int            `json:"totalOrders"`
	TotalRevenue      int64          `json:"totalRevenue"`
	AverageOrderValue int64          `json:"averageOrderValue"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
}
