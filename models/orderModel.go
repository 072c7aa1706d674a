package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// orderStatusTransitions fixes the legal forward moves. DELIVERED and
// CANCELLED are terminal.
var orderStatusTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func IsOrderStatus(status string) bool {
	_, ok := orderStatusTransitions[status]
	return ok
}

func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	UserID           int         `json:"userId"`
	Email            string      `json:"email"`
	Status           string      `json:"status"`
	TotalAmount      Money       `json:"totalAmount"`
	ShippingAddress  string      `json:"shippingAddress"`
	PaymentSessionID string      `json:"paymentSessionId" gorm:"uniqueIndex;size:191"`
	OrderItems       []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int    `json:"orderId"`
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// ItemsTotal is the amount an order created from these items must carry.
func ItemsTotal(items []OrderItem) Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return NewMoney(total)
}
