package controllers

import (
	"context"
	"errors"

	"storefront/config"
	"storefront/middleware"
	"storefront/models"
	"storefront/repositories"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{users: repositories.NewUserRepository()}
}

func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string) {
	secure := config.AppConfig.AppEnv == "production"
	c.SetCookie(middleware.AuthCookieName, token, 7*24*60*60, "/", "", secure, true)
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	ctx := context.Background()

	exists, err := ctrl.users.EmailExists(ctx, req.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}
	if exists {
		c.JSON(400, gin.H{"success": false, "message": "Email already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     "customer",
	}
	if err := ctrl.users.Create(ctx, user); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Email, user.Role)
	ctrl.setAuthCookie(c, token)

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password; sets the auth cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.users.GetByEmail(context.Background(), req.Email)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	ok, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Email, user.Role)
	ctrl.setAuthCookie(c, token)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// Logout godoc
// @Summary User logout
// @Description Expire the auth cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	secure := config.AppConfig.AppEnv == "production"
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", secure, true)
	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// Me godoc
// @Summary Current user
// @Description Get the authenticated user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.users.GetByID(context.Background(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch user"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User retrieved", "data": user})
}
