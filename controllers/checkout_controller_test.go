package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockUserFinder implements userFinder for testing
type MockUserFinder struct {
	User *models.User
	Err  error
}

func (m *MockUserFinder) GetByID(_ context.Context, _ int) (*models.User, error) {
	return m.User, m.Err
}

// MockAddressStore implements services.AddressStore for testing
type MockAddressStore struct {
	Created []*models.Address
}

func (m *MockAddressStore) Create(_ context.Context, a *models.Address) error {
	a.ID = len(m.Created) + 1
	m.Created = append(m.Created, a)
	return nil
}

// MockOrderStore implements services.OrderStore for testing
type MockOrderStore struct {
	Orders []*models.Order
}

func (m *MockOrderStore) Create(_ context.Context, order *models.Order, items []models.OrderItem) error {
	order.ID = len(m.Orders) + 1
	m.Orders = append(m.Orders, order)
	return nil
}

// MockGateway implements services.PaymentGateway for testing
type MockGateway struct {
	Calls int
}

func (m *MockGateway) CreateSession(_ context.Context, _ *models.Order, _ []models.CheckoutLineItem, _ string) (*services.PaymentSession, error) {
	m.Calls++
	return &services.PaymentSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}, nil
}

const checkoutBody = `{
	"cartItems": [{"product": {"id": 1, "name": "Mug", "price": "10.00"}, "quantity": 2}],
	"total": "20.00",
	"guestEmail": "guest@example.com",
	"newShippingAddress": {"fullName": "Pat Guest", "address": "1 Main St", "city": "Springfield"}
}`

func checkoutRequestContext(t *testing.T, userID int) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString(checkoutBody))
	c.Request.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		c.Set("user_id", userID)
	}
	return c, w
}

func newCheckoutControllerFixture(users userFinder) (*CheckoutController, *MockOrderStore, *MockGateway) {
	orders := &MockOrderStore{}
	gateway := &MockGateway{}
	ctrl := &CheckoutController{
		checkout: services.NewCheckoutService(&MockAddressStore{}, orders, gateway),
		users:    users,
	}
	return ctrl, orders, gateway
}

func TestCheckout_UserLookupFailureRejects(t *testing.T) {
	ctrl, orders, gateway := newCheckoutControllerFixture(&MockUserFinder{Err: errors.New("connection refused")})

	c, w := checkoutRequestContext(t, 7)
	ctrl.Checkout(c)

	// A store failure must not demote the order to an ownerless guest order.
	assert.Equal(t, 500, w.Code)
	assert.Empty(t, orders.Orders)
	assert.Zero(t, gateway.Calls)
}

func TestCheckout_DeletedAccountChecksOutAsGuest(t *testing.T) {
	ctrl, orders, _ := newCheckoutControllerFixture(&MockUserFinder{Err: repositories.ErrNotFound})

	c, w := checkoutRequestContext(t, 7)
	ctrl.Checkout(c)

	assert.Equal(t, 201, w.Code)
	require.Len(t, orders.Orders, 1)
	order := orders.Orders[0]
	assert.Nil(t, order.UserID)
	require.NotNil(t, order.GuestEmail)
	assert.Equal(t, "guest@example.com", *order.GuestEmail)
}

func TestCheckout_AuthenticatedOrderKeepsOwner(t *testing.T) {
	users := &MockUserFinder{User: &models.User{ID: 7, Email: "pat@example.com"}}
	ctrl, orders, _ := newCheckoutControllerFixture(users)

	c, w := checkoutRequestContext(t, 7)
	ctrl.Checkout(c)

	assert.Equal(t, 201, w.Code)
	require.Len(t, orders.Orders, 1)
	order := orders.Orders[0]
	require.NotNil(t, order.UserID)
	assert.Equal(t, 7, *order.UserID)
	assert.Nil(t, order.GuestEmail)
}

func TestCheckout_GuestSessionSkipsLookup(t *testing.T) {
	ctrl, orders, _ := newCheckoutControllerFixture(&MockUserFinder{Err: errors.New("must not be called")})

	c, w := checkoutRequestContext(t, 0)
	ctrl.Checkout(c)

	assert.Equal(t, 201, w.Code)
	require.Len(t, orders.Orders, 1)
	assert.Nil(t, orders.Orders[0].UserID)
}
