package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"storefront/libs"
	"storefront/models"
	"storefront/repositories"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{products: repositories.NewProductRepository()}
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

// deleteHostedImage destroys a no-longer-referenced Cloudinary asset.
// Best-effort: the row is already updated, a leak only costs storage.
func deleteHostedImage(imageURL *string) {
	if imageURL == nil {
		return
	}
	publicID := libs.PublicIDFromURL(*imageURL)
	if publicID == "" {
		return
	}
	go func() {
		if err := libs.DeleteImage(publicID); err != nil {
			log.Printf("Failed to delete replaced image %s: %v", publicID, err)
		}
	}()
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := getProductCacheKey(page, limit)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, total, err := ctrl.products.GetAll(ctx, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	response := models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.products.GetByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Missing required fields", "error": err.Error()})
		return
	}

	if req.Price.IsNegative() || *req.Stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Price and stock must not be negative"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       *req.Stock,
		ImageURL:    req.ImageURL,
		ImageData:   req.ImageData,
	}

	if err := ctrl.products.Create(context.Background(), product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add product"})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created", "data": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update an existing product (Admin). Omitted image fields keep their previous values.
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields are required", "error": err.Error()})
		return
	}

	if req.Price.IsNegative() || *req.Stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Price and stock must not be negative"})
		return
	}

	ctx := context.Background()

	product, err := ctrl.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = *req.Stock
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.ImageData != nil {
		product.ImageData = req.ImageData
	}

	if err := ctrl.products.Update(ctx, product); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated", "data": product})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload a product image file (Admin); the stored image becomes a URL
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	ctx := context.Background()
	product, err := ctrl.products.GetByID(ctx, id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	tmpPath, err := utils.SaveTempUpload(c, file)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	imageURL, err := libs.UploadProductImage(tmpPath)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image upload failed", "error": err.Error()})
		return
	}

	if err := ctrl.products.UpdateImageURL(ctx, id, imageURL); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product image"})
		return
	}

	deleteHostedImage(product.ImageURL)

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Image uploaded", "data": gin.H{"imageUrl": imageURL}})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, _ := ctrl.products.GetByID(context.Background(), id)

	if err := ctrl.products.Delete(context.Background(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	if product != nil {
		deleteHostedImage(product.ImageURL)
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted", "data": gin.H{"id": id}})
}
