package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}
	assert.False(t, OrderStatus("returned").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestPaymentStatusIsValid(t *testing.T) {
	for _, s := range []PaymentStatus{
		PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded,
	} {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}
	assert.False(t, PaymentStatus("chargeback").IsValid())
}

func validCreateOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		CustomerName:    "Dana Reyes",
		CustomerEmail:   "dana@example.com",
		ShippingAddress: "1 Main St, Springfield",
		Items: []OrderItemInput{
			{ProductID: 1, ProductName: "Candy Apple Red Kit", Price: 5000, Quantity: 2},
			{ProductID: 2, ProductName: "Clear Coat", Price: 1500, Quantity: 1},
		},
		ShippingCost: 800,
		Tax:          950,
	}
}

func TestCreateOrderRequestValidate(t *testing.T) {
	require.NoError(t, validCreateOrderRequest().Validate())

	r := validCreateOrderRequest()
	r.CustomerName = ""
	require.Error(t, r.Validate())

	r = validCreateOrderRequest()
	r.CustomerEmail = "nope"
	require.Error(t, r.Validate())

	r = validCreateOrderRequest()
	r.ShippingAddress = "  "
	require.Error(t, r.Validate())

	r = validCreateOrderRequest()
	r.Items = nil
	require.Error(t, r.Validate())

	r = validCreateOrderRequest()
	r.Items[0].Quantity = 0
	require.Error(t, r.Validate())

	r = validCreateOrderRequest()
	r.Items[1].ProductName = ""
	require.Error(t, r.Validate())

	r = validCreateOrderRequest()
	r.Discount = -1
	require.Error(t, r.Validate())
}

func TestCreateOrderRequestSubtotal(t *testing.T) {
	r := validCreateOrderRequest()
	// 5000*2 + 1500*1
	assert.Equal(t, int64(11500), r.Subtotal())

	r.Items = nil
	assert.Equal(t, int64(0), r.Subtotal())
}

func TestUpdateOrderRequestValidate(t *testing.T) {
	status := OrderStatusShipped
	require.NoError(t, (&UpdateOrderRequest{ID: 1, Status: &status}).Validate())

	require.Error(t, (&UpdateOrderRequest{ID: 0}).Validate())

	bad := OrderStatus("bogus")
	require.Error(t, (&UpdateOrderRequest{ID: 1, Status: &bad}).Validate())

	badPay := PaymentStatus("bogus")
	require.Error(t, (&UpdateOrderRequest{ID: 1, PaymentStatus: &badPay}).Validate())
}
