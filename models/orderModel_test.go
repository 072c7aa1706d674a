package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, IsOrderStatus(status), status)
	}

	assert.False(t, IsOrderStatus("REFUNDED"))
	assert.False(t, IsOrderStatus("pending"))
	assert.False(t, IsOrderStatus(""))
}

func TestCanTransitionOrderStatus(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusProcessing))
	assert.True(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusDelivered))

	// No moving backwards and no leaving a terminal state.
	assert.False(t, CanTransitionOrderStatus(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(OrderStatusShipped, OrderStatusProcessing))
	assert.False(t, CanTransitionOrderStatus(OrderStatusCancelled, OrderStatusProcessing))
	assert.False(t, CanTransitionOrderStatus(OrderStatusPending, OrderStatusDelivered))
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{Price: MoneyFromFloat(12.99), Quantity: 2},
		{Price: MoneyFromFloat(8.50), Quantity: 1},
		{Price: MoneyFromFloat(0.05), Quantity: 3},
	}

	total := ItemsTotal(items)
	assert.Equal(t, "34.63", total.StringFixed(2))
}

func TestItemsTotalEmpty(t *testing.T) {
	assert.True(t, ItemsTotal(nil).IsZero())
}
