package repositories

import (
	"context"
	"errors"
	"time"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type AddressRepository struct{}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{}
}

func (r *AddressRepository) Create(ctx context.Context, a *models.Address) error {
	a.CreatedAt = time.Now()
	return models.DB.QueryRow(ctx,
		`INSERT INTO addresses (user_id, full_name, email, phone, address, city, state, zip, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		a.UserID, a.FullName, a.Email, a.Phone, a.Address, a.City, a.State, a.Zip, a.CreatedAt).Scan(&a.ID)
}

func (r *AddressRepository) GetByID(ctx context.Context, id int) (*models.Address, error) {
	var a models.Address
	err := models.DB.QueryRow(ctx,
		`SELECT id, user_id, full_name, email, phone, address, city, state, zip, created_at
		 FROM addresses WHERE id = $1`, id).
		Scan(&a.ID, &a.UserID, &a.FullName, &a.Email, &a.Phone, &a.Address, &a.City, &a.State, &a.Zip, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID int) ([]models.Address, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, user_id, full_name, email, phone, address, city, state, zip, created_at
		 FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		err := rows.Scan(&a.ID, &a.UserID, &a.FullName, &a.Email, &a.Phone, &a.Address, &a.City, &a.State, &a.Zip, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, rows.Err()
}
