package services

import (
	"context"
	"fmt"
	"strconv"

	"storefront/config"
	"storefront/models"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// StripeGateway creates hosted checkout sessions. The order id rides along in
// the session metadata so the webhook can find its way back.
type StripeGateway struct {
	siteURL string
}

func NewStripeGateway() *StripeGateway {
	stripe.Key = config.AppConfig.StripeSecretKey
	return &StripeGateway{siteURL: config.AppConfig.SiteURL}
}

func (g *StripeGateway) CreateSession(ctx context.Context, order *models.Order, items []models.CheckoutLineItem, email string) (*PaymentSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	cents := decimal.NewFromInt(100)
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Product.Name),
				},
				UnitAmount: stripe.Int64(item.Product.Price.Mul(cents).Round(0).IntPart()),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(fmt.Sprintf("%s/confirmation?orderId=%d", g.siteURL, order.ID)),
		CancelURL:          stripe.String(g.siteURL + "/checkout"),
	}
	params.Context = ctx
	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}
	params.AddMetadata("orderId", strconv.Itoa(order.ID))

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &PaymentSession{ID: sess.ID, URL: sess.URL}, nil
}
