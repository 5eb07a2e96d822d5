package repositories

import (
	"context"
	"time"

	"storefront/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// List joins cart rows with current product data. Prices reflect the catalog
// as of now, not a snapshot.
func (r *CartRepository) List(ctx context.Context, userID int) ([]models.CartLine, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT ci.product_id, ci.quantity,
		        p.id, p.name, p.description, p.price, p.stock, p.image_url, p.image_data, p.created_at, p.updated_at
		 FROM cart_items ci
		 JOIN products p ON ci.product_id = p.id
		 WHERE ci.user_id = $1
		 ORDER BY ci.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		var p models.Product
		err := rows.Scan(&line.ProductID, &line.Quantity,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.ImageData, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		p.Image = models.NewImageSource(p.ImageURL, p.ImageData)
		line.Product = &p
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// Upsert adds quantity to an existing row or inserts a new one. The store's
// atomic conflict handling is the only concurrency control: two concurrent
// adds for the same user+product both land and compound. A row whose quantity
// drops to zero or below is deleted.
func (r *CartRepository) Upsert(ctx context.Context, userID, productID, quantity int) error {
	now := time.Now()
	var newQuantity int
	err := models.DB.QueryRow(ctx,
		`INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = $4
		 RETURNING quantity`,
		userID, productID, quantity, now).Scan(&newQuantity)
	if err != nil {
		return err
	}

	if newQuantity <= 0 {
		_, err = models.DB.Exec(ctx,
			"DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2", userID, productID)
	}
	return err
}

// Remove is idempotent: deleting an absent row succeeds.
func (r *CartRepository) Remove(ctx context.Context, userID, productID int) error {
	_, err := models.DB.Exec(ctx,
		"DELETE FROM cart_items WHERE user_id=$1 AND product_id=$2", userID, productID)
	return err
}

func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	_, err := models.DB.Exec(ctx, "DELETE FROM cart_items WHERE user_id=$1", userID)
	return err
}
