package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strconv"

	"storefront/config"
	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

type WebhookController struct {
	payments *services.PaymentService
}

func NewWebhookController() *WebhookController {
	var mailer services.ConfirmationMailer
	if emailService, err := models.NewEmailService(); err == nil {
		mailer = emailService
	} else {
		log.Println("Email service disabled:", err)
	}

	return &WebhookController{
		payments: services.NewPaymentService(repositories.NewOrderRepository(), mailer),
	}
}

// HandleStripeWebhook godoc
// @Summary Stripe webhook
// @Description Receive payment notifications; the signature header is verified against the webhook secret
// @Tags Webhook
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /webhook [post]
func (ctrl *WebhookController) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Failed to read request body"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if sig == "" {
		c.JSON(400, gin.H{"success": false, "message": "Missing signature"})
		return
	}

	event, err := webhook.ConstructEvent(payload, sig, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		log.Println("Webhook signature verification failed:", err)
		c.JSON(400, gin.H{"success": false, "message": "Webhook verification failed"})
		return
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Malformed event payload"})
			return
		}

		orderID, err := strconv.Atoi(session.Metadata["orderId"])
		if err != nil {
			log.Println("No order ID found in session metadata")
			break
		}

		if err := ctrl.payments.HandleCheckoutCompleted(context.Background(), orderID); err != nil {
			log.Printf("Failed to mark order %d paid: %v", orderID, err)
		}
	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	c.JSON(200, gin.H{"success": true, "message": "received"})
}
