package repositories

import (
	"context"
	"errors"
	"time"

	"storefront/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, price, stock, image_url, image_data, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.ImageURL, &p.ImageData, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Image = models.NewImageSource(p.ImageURL, p.ImageData)
	return &p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := models.DB.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}

	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, err := scanProduct(models.DB.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	err := models.DB.QueryRow(ctx,
		`INSERT INTO products (name, description, price, stock, image_url, image_data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		p.Name, p.Description, p.Price, p.Stock, p.ImageURL, p.ImageData, now, now).Scan(&p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Image = models.NewImageSource(p.ImageURL, p.ImageData)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now()
	tag, err := models.DB.Exec(ctx,
		`UPDATE products SET name=$1, description=$2, price=$3, stock=$4,
		 image_url=$5, image_data=$6, updated_at=$7 WHERE id=$8`,
		p.Name, p.Description, p.Price, p.Stock, p.ImageURL, p.ImageData, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	p.Image = models.NewImageSource(p.ImageURL, p.ImageData)
	return nil
}

func (r *ProductRepository) UpdateImageURL(ctx context.Context, id int, imageURL string) error {
	tag, err := models.DB.Exec(ctx,
		"UPDATE products SET image_url=$1, image_data=NULL, updated_at=$2 WHERE id=$3",
		imageURL, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
