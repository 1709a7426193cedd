// internal/domain/order/display.go
package order

// StatusText returns the customer-facing Vietnamese label for a status
func StatusText(status Status) string {
	switch status {
	case StatusPreparing:
		return "Đang pha chế"
	case StatusCompleted:
		return "Hoàn thành"
	case StatusCancelled:
		return "Đã hủy"
	default:
		return "Không xác định"
	}
}

// PaymentMethodText returns the customer-facing label for a payment method
func PaymentMethodText(method PaymentMethod) string {
	switch method {
	case PaymentMethodTransfer:
		return "Chuyển khoản"
	case PaymentMethodCash:
		return "Tiền mặt"
	case PaymentMethodApp:
		return "App"
	default:
		return "Không xác định"
	}
}

// StatusTransition is one status change the UI may offer
type StatusTransition struct {
	Status Status `json:"status"`
	Text   string `json:"text"`
}

// NextStatusOptions returns the transitions allowed from an order's
// current status. Completed and cancelled orders are terminal.
func NextStatusOptions(o *Order) []StatusTransition {
	if o == nil {
		return nil
	}
	switch o.Status {
	case StatusPreparing:
		return []StatusTransition{
			{Status: StatusCompleted, Text: "Đã hoàn thành"},
			{Status: StatusCancelled, Text: "Hủy đơn"},
		}
	default:
		return nil
	}
}
