package services

import (
	"context"
	"log"

	"storefront/models"

	"github.com/shopspring/decimal"
)

type OrderStatusStore interface {
	GetByID(ctx context.Context, id int) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error
}

type ConfirmationMailer interface {
	SendOrderConfirmationEmail(toEmail, orderNumber string, total decimal.Decimal) error
}

// PaymentService applies verified payment-completed notifications.
type PaymentService struct {
	orders OrderStatusStore
	mailer ConfirmationMailer
}

// NewPaymentService accepts a nil mailer; confirmation mail is best-effort.
func NewPaymentService(orders OrderStatusStore, mailer ConfirmationMailer) *PaymentService {
	return &PaymentService{orders: orders, mailer: mailer}
}

// HandleCheckoutCompleted marks the order paid. Setting an already-paid order
// to paid again is a no-op, so duplicate deliveries of the same event are
// harmless.
func (s *PaymentService) HandleCheckoutCompleted(ctx context.Context, orderID int) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusPaid); err != nil {
		return err
	}

	if s.mailer != nil {
		if to := recipientFor(order); to != "" {
			if err := s.mailer.SendOrderConfirmationEmail(to, order.OrderNumber, order.Total); err != nil {
				log.Printf("Failed to send order confirmation email for %s: %v", order.OrderNumber, err)
			}
		}
	}

	return nil
}

func recipientFor(order *models.Order) string {
	if order.GuestEmail != nil && *order.GuestEmail != "" {
		return *order.GuestEmail
	}
	if order.User != nil {
		return order.User.Email
	}
	return ""
}
