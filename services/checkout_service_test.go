package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockAddressStore implements AddressStore for testing
type MockAddressStore struct {
	Created []*models.Address
	Err     error
}

func (m *MockAddressStore) Create(_ context.Context, a *models.Address) error {
	if m.Err != nil {
		return m.Err
	}
	a.ID = len(m.Created) + 1
	m.Created = append(m.Created, a)
	return nil
}

// MockOrderStore implements OrderStore for testing
type MockOrderStore struct {
	Orders []*models.Order
	Items  [][]models.OrderItem
	Err    error
}

func (m *MockOrderStore) Create(_ context.Context, order *models.Order, items []models.OrderItem) error {
	if m.Err != nil {
		return m.Err
	}
	order.ID = len(m.Orders) + 1
	m.Orders = append(m.Orders, order)
	m.Items = append(m.Items, items)
	return nil
}

// MockGateway implements PaymentGateway for testing
type MockGateway struct {
	Session *PaymentSession
	Err     error
	Calls   int
}

func (m *MockGateway) CreateSession(_ context.Context, _ *models.Order, _ []models.CheckoutLineItem, _ string) (*PaymentSession, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

func newCheckoutFixture() (*CheckoutService, *MockAddressStore, *MockOrderStore, *MockGateway) {
	addresses := &MockAddressStore{}
	orders := &MockOrderStore{}
	gateway := &MockGateway{Session: &PaymentSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}}
	return NewCheckoutService(addresses, orders, gateway), addresses, orders, gateway
}

func twoItemRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		CartItems: []models.CheckoutLineItem{
			{
				Product:  models.CheckoutProduct{ID: 1, Name: "Mug", Price: decimal.RequireFromString("10.00")},
				Quantity: 2,
			},
		},
		Total:      decimal.RequireFromString("20.00"),
		GuestEmail: "guest@example.com",
		NewShippingAddress: &models.AddressPayload{
			FullName: "Pat Guest",
			Address:  "1 Main St",
			City:     "Springfield",
		},
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, orders, _ := newCheckoutFixture()

	_, err := svc.Checkout(context.Background(), &models.CheckoutRequest{}, nil)

	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Empty(t, orders.Orders)
}

func TestCheckout_MissingShippingAddress(t *testing.T) {
	svc, _, orders, _ := newCheckoutFixture()

	req := twoItemRequest()
	req.NewShippingAddress = nil
	req.ShippingAddressID = nil

	_, err := svc.Checkout(context.Background(), req, nil)

	assert.ErrorIs(t, err, ErrShippingAddressRequired)
	assert.Empty(t, orders.Orders)
}

func TestCheckout_TotalMismatch(t *testing.T) {
	svc, addresses, orders, gateway := newCheckoutFixture()

	req := twoItemRequest()
	req.Total = decimal.RequireFromString("19.99")

	_, err := svc.Checkout(context.Background(), req, nil)

	assert.ErrorIs(t, err, ErrTotalMismatch)
	assert.Empty(t, addresses.Created)
	assert.Empty(t, orders.Orders)
	assert.Zero(t, gateway.Calls)
}

func TestCheckout_GuestHappyPath(t *testing.T) {
	svc, addresses, orders, _ := newCheckoutFixture()

	result, err := svc.Checkout(context.Background(), twoItemRequest(), nil)

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "cs_test_123", result.SessionID)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_123", result.CheckoutURL)

	require.Len(t, orders.Orders, 1)
	order := orders.Orders[0]
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.UserID)
	require.NotNil(t, order.GuestEmail)
	assert.Equal(t, "guest@example.com", *order.GuestEmail)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	// Same-address default aliases billing onto the shipping row.
	require.Len(t, addresses.Created, 1)
	require.NotNil(t, order.ShippingAddressID)
	require.NotNil(t, order.BillingAddressID)
	assert.Equal(t, *order.ShippingAddressID, *order.BillingAddressID)
	assert.Nil(t, addresses.Created[0].UserID)
	assert.Equal(t, "guest@example.com", addresses.Created[0].Email)

	require.Len(t, orders.Items, 1)
	require.Len(t, orders.Items[0], 1)
	item := orders.Items[0][0]
	assert.Equal(t, 1, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.PriceAtPurchase.Equal(decimal.RequireFromString("10.00")))
}

func TestCheckout_AuthenticatedUserOwnsOrderAndAddress(t *testing.T) {
	svc, addresses, orders, _ := newCheckoutFixture()

	user := &models.User{ID: 42, Email: "pat@example.com"}
	req := twoItemRequest()
	req.GuestEmail = ""

	_, err := svc.Checkout(context.Background(), req, user)

	require.NoError(t, err)
	require.Len(t, orders.Orders, 1)
	order := orders.Orders[0]
	require.NotNil(t, order.UserID)
	assert.Equal(t, 42, *order.UserID)
	assert.Nil(t, order.GuestEmail)

	require.Len(t, addresses.Created, 1)
	require.NotNil(t, addresses.Created[0].UserID)
	assert.Equal(t, 42, *addresses.Created[0].UserID)
	assert.Equal(t, "pat@example.com", addresses.Created[0].Email)
}

func TestCheckout_SeparateBillingAddress(t *testing.T) {
	svc, addresses, orders, _ := newCheckoutFixture()

	same := false
	req := twoItemRequest()
	req.UseSameAddress = &same
	req.NewBillingAddress = &models.AddressPayload{
		FullName: "Pat Guest",
		Address:  "2 Billing Ave",
		City:     "Springfield",
	}

	_, err := svc.Checkout(context.Background(), req, nil)

	require.NoError(t, err)
	require.Len(t, addresses.Created, 2)
	order := orders.Orders[0]
	require.NotNil(t, order.ShippingAddressID)
	require.NotNil(t, order.BillingAddressID)
	assert.NotEqual(t, *order.ShippingAddressID, *order.BillingAddressID)
}

func TestCheckout_MissingBillingWhenNotSameAddress(t *testing.T) {
	svc, _, orders, _ := newCheckoutFixture()

	same := false
	req := twoItemRequest()
	req.UseSameAddress = &same

	_, err := svc.Checkout(context.Background(), req, nil)

	assert.ErrorIs(t, err, ErrBillingAddressRequired)
	assert.Empty(t, orders.Orders)
}

func TestCheckout_GatewayFailureLeavesOrderPending(t *testing.T) {
	svc, _, orders, gateway := newCheckoutFixture()
	gateway.Err = errors.New("stripe unavailable")

	_, err := svc.Checkout(context.Background(), twoItemRequest(), nil)

	require.Error(t, err)
	// The order was already committed; the failure does not roll it back.
	require.Len(t, orders.Orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders.Orders[0].Status)
}

func TestCheckout_ExistingAddressIDsSkipCreation(t *testing.T) {
	svc, addresses, orders, _ := newCheckoutFixture()

	shippingID, billingID := 7, 9
	req := twoItemRequest()
	req.NewShippingAddress = nil
	req.ShippingAddressID = &shippingID
	req.BillingAddressID = &billingID

	_, err := svc.Checkout(context.Background(), req, nil)

	require.NoError(t, err)
	assert.Empty(t, addresses.Created)
	order := orders.Orders[0]
	assert.Equal(t, 7, *order.ShippingAddressID)
	assert.Equal(t, 9, *order.BillingAddressID)
}

func TestNewOrderNumber_Format(t *testing.T) {
	n := newOrderNumber()

	assert.True(t, strings.HasPrefix(n, "ORD-"))
	assert.Len(t, n, len("ORD-")+12)
	assert.NotEqual(t, n, newOrderNumber())
}
