package controllers

import (
	"context"
	"errors"
	"strconv"

	"storefront/models"
	"storefront/repositories"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{orders: repositories.NewOrderRepository()}
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// GetMyOrders godoc
// @Summary Get own orders
// @Description Get the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orders.ListByUser(context.Background(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)
	status := c.Query("status")

	orders, total, err := ctrl.orders.List(context.Background(), page, limit, status)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch orders"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get order details with items and addresses (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orders.GetByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Update an order's status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Order status is required"})
		return
	}

	ctrl.updateStatus(c, id, req.Status)
}

// BulkUpdateOrderStatus godoc
// @Summary Update order status by body
// @Description Update an order's status with the order id in the body (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BulkOrderStatusRequest true "Order id and new status"
// @Success 200 {object} models.Response
// @Router /admin/orders/status [patch]
func (ctrl *OrderController) BulkUpdateOrderStatus(c *gin.Context) {
	var req models.BulkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Order ID and status are required"})
		return
	}

	ctrl.updateStatus(c, req.OrderID, req.Status)
}

func (ctrl *OrderController) updateStatus(c *gin.Context, id int, rawStatus string) {
	status := models.OrderStatus(rawStatus)
	if !status.Valid() {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order status"})
		return
	}

	if err := ctrl.orders.UpdateStatus(context.Background(), id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated",
		"data":    gin.H{"id": id, "status": status},
	})
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Delete an order and its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	if err := ctrl.orders.Delete(context.Background(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted", "data": gin.H{"id": id}})
}
