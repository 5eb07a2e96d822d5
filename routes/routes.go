package routes

import (
	"storefront/controllers"
	"storefront/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()
	checkoutCtrl := controllers.NewCheckoutController()
	webhookCtrl := controllers.NewWebhookController()
	orderCtrl := controllers.NewOrderController()
	addressCtrl := controllers.NewAddressController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.POST("/webhook", webhookCtrl.HandleStripeWebhook)

	// Cart and checkout work for guests and signed-in users alike; the cart
	// backend is picked per request from the session identity.
	guest := router.Group("/")
	guest.Use(middleware.OptionalAuthMiddleware())
	{
		guest.GET("/cart", cartCtrl.GetCart)
		guest.POST("/cart", cartCtrl.AddToCart)
		guest.DELETE("/cart", cartCtrl.RemoveFromCart)
		guest.DELETE("/cart/items/:id", cartCtrl.RemoveFromCartByID)
		guest.DELETE("/cart/clear", cartCtrl.ClearCart)

		guest.POST("/checkout", checkoutCtrl.Checkout)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/me", authCtrl.Me)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/addresses", addressCtrl.GetAddresses)
		auth.POST("/addresses", addressCtrl.CreateAddress)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.POST("/products/:id/image", productCtrl.UploadProductImage)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		admin.PATCH("/orders/status", orderCtrl.BulkUpdateOrderStatus)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}
}
