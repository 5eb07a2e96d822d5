package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

type RemoveFromCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       *int            `json:"stock" binding:"required"`
	ImageURL    *string         `json:"imageUrl"`
	ImageData   *string         `json:"imageData"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       *int            `json:"stock" binding:"required"`
	ImageURL    *string         `json:"imageUrl"`
	ImageData   *string         `json:"imageData"`
}

type AddressPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// CheckoutProduct carries the product data as claimed by the client. The
// claimed unit price is what gets snapshotted; it is cross-checked against
// the claimed total but not against the catalog.
type CheckoutProduct struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CheckoutLineItem struct {
	Product  CheckoutProduct `json:"product"`
	Quantity int             `json:"quantity"`
}

type CheckoutRequest struct {
	CartItems          []CheckoutLineItem `json:"cartItems"`
	Total              decimal.Decimal    `json:"total"`
	GuestEmail         string             `json:"guestEmail"`
	ShippingAddressID  *int               `json:"shippingAddressId"`
	BillingAddressID   *int               `json:"billingAddressId"`
	NewShippingAddress *AddressPayload    `json:"newShippingAddress"`
	NewBillingAddress  *AddressPayload    `json:"newBillingAddress"`
	UseSameAddress     *bool              `json:"useSameAddress"`
}

func (r *CheckoutRequest) SameAddress() bool {
	if r.UseSameAddress == nil {
		return true
	}
	return *r.UseSameAddress
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkOrderStatusRequest struct {
	OrderID int    `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}
