package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and its items in one transaction. Each item's
// price_at_purchase is written exactly once here and never updated.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, guest_email, total, status, billing_address_id, shipping_address_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		order.OrderNumber, order.UserID, order.GuestEmail, order.Total, order.Status,
		order.BillingAddressID, order.ShippingAddressID, now, now).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			order.ID, items[i].ProductID, items[i].Quantity, items[i].PriceAtPurchase).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	order.Items = items
	return nil
}

const orderColumns = `id, order_number, user_id, guest_email, total, status, billing_address_id, shipping_address_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.GuestEmail, &o.Total, &o.Status,
		&o.BillingAddressID, &o.ShippingAddressID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	o, err := scanOrder(models.DB.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := models.DB.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price_at_purchase,
		        p.id, p.name, p.description, p.price, p.stock, p.image_url, p.image_data, p.created_at, p.updated_at
		 FROM order_items oi
		 LEFT JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var itemProductID *int
		var pid, pStock *int
		var pName, pDesc, pImageURL, pImageData *string
		var pPrice *decimal.Decimal
		var pCreated, pUpdated *time.Time
		err := rows.Scan(&item.ID, &item.OrderID, &itemProductID, &item.Quantity, &item.PriceAtPurchase,
			&pid, &pName, &pDesc, &pPrice, &pStock, &pImageURL, &pImageData, &pCreated, &pUpdated)
		if err != nil {
			return nil, err
		}
		if itemProductID != nil {
			item.ProductID = *itemProductID
		}
		if pid != nil {
			item.Product = &models.Product{
				ID:          *pid,
				Name:        *pName,
				Description: *pDesc,
				Price:       *pPrice,
				Stock:       *pStock,
				Image:       models.NewImageSource(pImageURL, pImageData),
				ImageURL:    pImageURL,
				ImageData:   pImageData,
				CreatedAt:   *pCreated,
				UpdatedAt:   *pUpdated,
			}
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	addrRepo := NewAddressRepository()
	if o.BillingAddressID != nil {
		if addr, err := addrRepo.GetByID(ctx, *o.BillingAddressID); err == nil {
			o.BillingAddress = addr
		}
	}
	if o.ShippingAddressID != nil {
		if addr, err := addrRepo.GetByID(ctx, *o.ShippingAddressID); err == nil {
			o.ShippingAddress = addr
		}
	}

	if o.UserID != nil {
		var u models.User
		err := models.DB.QueryRow(ctx,
			"SELECT id, name, email FROM users WHERE id = $1", *o.UserID).
			Scan(&u.ID, &u.Name, &u.Email)
		if err == nil {
			o.User = &u
		}
	}

	return o, nil
}

func (r *OrderRepository) List(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	where := ""
	countArgs := []interface{}{}
	if status != "" && status != "All" {
		where = " WHERE status = $1"
		countArgs = append(countArgs, status)
	}

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	args := append(countArgs, limit, offset)
	query := fmt.Sprintf(
		"SELECT "+orderColumns+" FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(countArgs)+1, len(countArgs)+2)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}

	return orders, total, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error {
	tag, err := models.DB.Exec(ctx,
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3",
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "DELETE FROM order_items WHERE order_id=$1", id)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, "DELETE FROM orders WHERE id=$1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
