package controllers

import (
	"context"
	"errors"
	"strconv"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	products *repositories.ProductRepository
}

func NewCartController() *CartController {
	return &CartController{products: repositories.NewProductRepository()}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the cart for the current session, guest or authenticated
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store := services.CartStoreFor(c)

	lines, subtotal, err := store.Read(context.Background())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"items":    lines,
			"subtotal": subtotal,
		},
	})
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add a product to the cart; repeated adds increment quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Cart item"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctx := context.Background()

	if _, err := ctrl.products.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to validate product"})
		return
	}

	store := services.CartStoreFor(c)
	if err := store.Add(ctx, req.ProductID, req.Quantity); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add item"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Added to cart"})
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove a product from the cart; removing an absent item succeeds
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.RemoveFromCartRequest true "Product to remove"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	var req models.RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctrl.removeItem(c, req.ProductID)
}

// RemoveFromCartByID godoc
// @Summary Remove item from cart by path
// @Description Remove a product from the cart using the product id in the path
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveFromCartByID(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	ctrl.removeItem(c, productID)
}

func (ctrl *CartController) removeItem(c *gin.Context, productID int) {
	store := services.CartStoreFor(c)
	if err := store.Remove(context.Background(), productID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove item"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed"})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every item from the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/clear [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store := services.CartStoreFor(c)
	if err := store.Clear(context.Background()); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared"})
}
