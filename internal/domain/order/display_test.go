package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Đang pha chế", StatusText(StatusPreparing))
	assert.Equal(t, "Hoàn thành", StatusText(StatusCompleted))
	assert.Equal(t, "Đã hủy", StatusText(StatusCancelled))
	assert.Equal(t, "Không xác định", StatusText(Status("refunded")))
}

func TestPaymentMethodText(t *testing.T) {
	assert.Equal(t, "Tiền mặt", PaymentMethodText(PaymentMethodCash))
	assert.Equal(t, "Chuyển khoản", PaymentMethodText(PaymentMethodTransfer))
	assert.Equal(t, "App", PaymentMethodText(PaymentMethodApp))
	assert.Equal(t, "Không xác định", PaymentMethodText(PaymentMethod("card")))
}

func TestNextStatusOptions(t *testing.T) {
	transitions := NextStatusOptions(&Order{Status: StatusPreparing})
	require.Len(t, transitions, 2)
	assert.Equal(t, StatusCompleted, transitions[0].Status)
	assert.Equal(t, StatusCancelled, transitions[1].Status)

	// Terminal states offer nothing
	assert.Empty(t, NextStatusOptions(&Order{Status: StatusCompleted}))
	assert.Empty(t, NextStatusOptions(&Order{Status: StatusCancelled}))
	assert.Empty(t, NextStatusOptions(nil))
}
