package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty               = errors.New("cart is empty")
	ErrShippingAddressRequired = errors.New("shipping address is required")
	ErrBillingAddressRequired  = errors.New("missing billing or shipping address")
	ErrTotalMismatch           = errors.New("cart total mismatch")
)

type AddressStore interface {
	Create(ctx context.Context, a *models.Address) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
}

type PaymentSession struct {
	ID  string
	URL string
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, order *models.Order, items []models.CheckoutLineItem, email string) (*PaymentSession, error)
}

type CheckoutResult struct {
	Order       *models.Order
	SessionID   string
	CheckoutURL string
}

// CheckoutService turns a client-supplied cart snapshot plus address choices
// into a persisted pending order and a hosted payment session.
type CheckoutService struct {
	addresses AddressStore
	orders    OrderStore
	payments  PaymentGateway
}

func NewCheckoutService(addresses AddressStore, orders OrderStore, payments PaymentGateway) *CheckoutService {
	return &CheckoutService{addresses: addresses, orders: orders, payments: payments}
}

// Checkout validates fail-fast and mutates nothing before validation passes.
// Line totals are recomputed from the client-claimed unit prices and compared
// to the claimed total with exact decimal equality; the claimed prices are
// the ones snapshotted into order items. A payment-session failure after the
// order is committed leaves it pending with no compensation.
func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest, user *models.User) (*CheckoutResult, error) {
	if len(req.CartItems) == 0 {
		return nil, ErrCartEmpty
	}

	if req.NewShippingAddress == nil && req.ShippingAddressID == nil {
		return nil, ErrShippingAddressRequired
	}

	verifiedTotal := decimal.Zero
	for _, item := range req.CartItems {
		verifiedTotal = verifiedTotal.Add(
			item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !verifiedTotal.Equal(req.Total) {
		return nil, ErrTotalMismatch
	}

	isGuest := user == nil

	email := req.GuestEmail
	if !isGuest {
		email = user.Email
	}

	shippingID := req.ShippingAddressID
	billingID := req.BillingAddressID

	if shippingID == nil && req.NewShippingAddress != nil {
		addr := addressFromPayload(req.NewShippingAddress, email, user)
		if err := s.addresses.Create(ctx, addr); err != nil {
			return nil, fmt.Errorf("failed to save shipping address: %w", err)
		}
		shippingID = &addr.ID
	}

	if billingID == nil && !req.SameAddress() && req.NewBillingAddress != nil {
		addr := addressFromPayload(req.NewBillingAddress, email, user)
		if err := s.addresses.Create(ctx, addr); err != nil {
			return nil, fmt.Errorf("failed to save billing address: %w", err)
		}
		billingID = &addr.ID
	}

	if billingID == nil && req.SameAddress() {
		billingID = shippingID
	}

	if shippingID == nil || billingID == nil {
		return nil, ErrBillingAddressRequired
	}

	order := &models.Order{
		OrderNumber:       newOrderNumber(),
		Total:             req.Total,
		Status:            models.OrderStatusPending,
		ShippingAddressID: shippingID,
		BillingAddressID:  billingID,
	}
	if isGuest {
		if req.GuestEmail != "" {
			order.GuestEmail = &req.GuestEmail
		}
	} else {
		order.UserID = &user.ID
	}

	items := make([]models.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, models.OrderItem{
			ProductID:       item.Product.ID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Product.Price,
		})
	}

	if err := s.orders.Create(ctx, order, items); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order is committed at this point. A gateway failure below leaves it
	// pending indefinitely; there is no rollback.
	session, err := s.payments.CreateSession(ctx, order, req.CartItems, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	return &CheckoutResult{
		Order:       order,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

func addressFromPayload(p *models.AddressPayload, email string, user *models.User) *models.Address {
	addr := &models.Address{
		FullName: p.FullName,
		Email:    email,
		Phone:    p.Phone,
		Address:  p.Address,
		City:     p.City,
		State:    p.State,
		Zip:      p.Zip,
	}
	if user != nil {
		addr.UserID = &user.ID
	}
	return addr
}

func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:12]
}
