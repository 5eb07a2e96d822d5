package controllers

import (
	"context"

	"storefront/models"
	"storefront/repositories"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	addresses *repositories.AddressRepository
}

func NewAddressController() *AddressController {
	return &AddressController{addresses: repositories.NewAddressRepository()}
}

// GetAddresses godoc
// @Summary Get saved addresses
// @Description Get the authenticated user's saved addresses
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /addresses [get]
func (ctrl *AddressController) GetAddresses(c *gin.Context) {
	userID := c.GetInt("user_id")

	addresses, err := ctrl.addresses.ListByUser(context.Background(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch addresses"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Addresses retrieved", "data": addresses})
}

// CreateAddress godoc
// @Summary Save an address
// @Description Create a saved address owned by the authenticated user
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddressPayload true "Address"
// @Success 201 {object} models.Response
// @Router /addresses [post]
func (ctrl *AddressController) CreateAddress(c *gin.Context) {
	userID := c.GetInt("user_id")
	email := c.GetString("user_email")

	var req models.AddressPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	addr := &models.Address{
		UserID:   &userID,
		FullName: req.FullName,
		Email:    email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
	}

	if err := ctrl.addresses.Create(context.Background(), addr); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save address"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Address saved", "data": addr})
}
