package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                int             `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	UserID            *int            `json:"userId,omitempty"`
	GuestEmail        *string         `json:"guestEmail,omitempty"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	BillingAddressID  *int            `json:"billingAddressId,omitempty"`
	ShippingAddressID *int            `json:"shippingAddressId,omitempty"`
	Items             []OrderItem     `json:"orderItems,omitempty"`
	User              *User           `json:"user,omitempty"`
	BillingAddress    *Address        `json:"billingAddress,omitempty"`
	ShippingAddress   *Address        `json:"shippingAddress,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ID      int `json:"id"`
	OrderID int `json:"orderId"`

	ProductID int      `json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`

	// PriceAtPurchase is the unit price snapshot taken at order creation.
	// Later catalog price changes never touch it.
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}
