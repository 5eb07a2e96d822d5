package controllers

import (
	"context"
	"errors"
	"log"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type userFinder interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type CheckoutController struct {
	checkout *services.CheckoutService
	users    userFinder
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{
		checkout: services.NewCheckoutService(
			repositories.NewAddressRepository(),
			repositories.NewOrderRepository(),
			services.NewStripeGateway(),
		),
		users: repositories.NewUserRepository(),
	}
}

// Checkout godoc
// @Summary Checkout
// @Description Validate the cart snapshot, persist a pending order and start a hosted payment session
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctx := context.Background()

	var user *models.User
	if userID := c.GetInt("user_id"); userID > 0 {
		u, err := ctrl.users.GetByID(ctx, userID)
		switch {
		case err == nil:
			user = u
		case errors.Is(err, repositories.ErrNotFound):
			// A stale token for a deleted account checks out as a guest.
		default:
			log.Println("Checkout user lookup failed:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to process checkout"})
			return
		}
	}

	result, err := ctrl.checkout.Checkout(ctx, &req, user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		case errors.Is(err, services.ErrShippingAddressRequired):
			c.JSON(400, gin.H{"success": false, "message": "Shipping address is required."})
		case errors.Is(err, services.ErrBillingAddressRequired):
			c.JSON(400, gin.H{"success": false, "message": "Missing billing or shipping address."})
		case errors.Is(err, services.ErrTotalMismatch):
			c.JSON(400, gin.H{"success": false, "message": "Cart total mismatch. Please try again."})
		default:
			log.Println("Checkout error:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to process checkout"})
		}
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Checkout session created",
		"data": gin.H{
			"orderId":     result.Order.ID,
			"orderNumber": result.Order.OrderNumber,
			"sessionId":   result.SessionID,
			"checkoutUrl": result.CheckoutURL,
		},
	})
}
