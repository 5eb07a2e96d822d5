package services

import (
	"context"
	"errors"
	"testing"

	"storefront/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockOrderStatusStore implements OrderStatusStore for testing
type MockOrderStatusStore struct {
	Order     *models.Order
	GetErr    error
	UpdateErr error
	Updates   []models.OrderStatus
}

func (m *MockOrderStatusStore) GetByID(_ context.Context, _ int) (*models.Order, error) {
	return m.Order, m.GetErr
}

func (m *MockOrderStatusStore) UpdateStatus(_ context.Context, _ int, status models.OrderStatus) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updates = append(m.Updates, status)
	return nil
}

// MockMailer implements ConfirmationMailer for testing
type MockMailer struct {
	Sent []string
	Err  error
}

func (m *MockMailer) SendOrderConfirmationEmail(toEmail, _ string, _ decimal.Decimal) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, toEmail)
	return nil
}

func guestOrder() *models.Order {
	email := "guest@example.com"
	return &models.Order{
		ID:          1,
		OrderNumber: "ORD-ABC123DEF456",
		GuestEmail:  &email,
		Total:       decimal.RequireFromString("20.00"),
		Status:      models.OrderStatusPending,
	}
}

func TestHandleCheckoutCompleted_MarksPaidAndEmailsGuest(t *testing.T) {
	orders := &MockOrderStatusStore{Order: guestOrder()}
	mailer := &MockMailer{}
	svc := NewPaymentService(orders, mailer)

	err := svc.HandleCheckoutCompleted(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []models.OrderStatus{models.OrderStatusPaid}, orders.Updates)
	assert.Equal(t, []string{"guest@example.com"}, mailer.Sent)
}

func TestHandleCheckoutCompleted_EmailsOrderOwner(t *testing.T) {
	order := guestOrder()
	order.GuestEmail = nil
	order.User = &models.User{ID: 42, Email: "pat@example.com"}

	orders := &MockOrderStatusStore{Order: order}
	mailer := &MockMailer{}
	svc := NewPaymentService(orders, mailer)

	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), 1))
	assert.Equal(t, []string{"pat@example.com"}, mailer.Sent)
}

func TestHandleCheckoutCompleted_DuplicateDeliveryIsHarmless(t *testing.T) {
	orders := &MockOrderStatusStore{Order: guestOrder()}
	svc := NewPaymentService(orders, nil)

	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), 1))
	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), 1))

	assert.Equal(t, []models.OrderStatus{models.OrderStatusPaid, models.OrderStatusPaid}, orders.Updates)
}

func TestHandleCheckoutCompleted_MailFailureIsSwallowed(t *testing.T) {
	orders := &MockOrderStatusStore{Order: guestOrder()}
	mailer := &MockMailer{Err: errors.New("smtp timeout")}
	svc := NewPaymentService(orders, mailer)

	assert.NoError(t, svc.HandleCheckoutCompleted(context.Background(), 1))
	assert.Equal(t, []models.OrderStatus{models.OrderStatusPaid}, orders.Updates)
}

func TestHandleCheckoutCompleted_UnknownOrder(t *testing.T) {
	orders := &MockOrderStatusStore{GetErr: errors.New("record not found")}
	svc := NewPaymentService(orders, nil)

	assert.Error(t, svc.HandleCheckoutCompleted(context.Background(), 99))
	assert.Empty(t, orders.Updates)
}

func TestHandleCheckoutCompleted_UpdateFailurePropagates(t *testing.T) {
	orders := &MockOrderStatusStore{Order: guestOrder(), UpdateErr: errors.New("connection refused")}
	mailer := &MockMailer{}
	svc := NewPaymentService(orders, mailer)

	assert.Error(t, svc.HandleCheckoutCompleted(context.Background(), 1))
	assert.Empty(t, mailer.Sent)
}
