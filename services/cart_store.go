package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repositories"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CartStore unifies the two cart backings behind one contract. The persisted
// cart (authenticated users) and the cookie cart (guests) implement the same
// four operations; call sites never branch on session identity.
type CartStore interface {
	Read(ctx context.Context) ([]models.CartLine, decimal.Decimal, error)
	Add(ctx context.Context, productID, quantity int) error
	Remove(ctx context.Context, productID int) error
	Clear(ctx context.Context) error
}

type cartBackend interface {
	List(ctx context.Context, userID int) ([]models.CartLine, error)
	Upsert(ctx context.Context, userID, productID, quantity int) error
	Remove(ctx context.Context, userID, productID int) error
	Clear(ctx context.Context, userID int) error
}

type productFinder interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

// CartStoreFor picks the backing store by session identity.
func CartStoreFor(c *gin.Context) CartStore {
	if userID := c.GetInt("user_id"); userID > 0 {
		return NewUserCartStore(userID)
	}
	return NewGuestCartStore(c)
}

func subtotal(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// UserCartStore backs the cart with cart_items rows keyed (user_id, product_id).
type UserCartStore struct {
	userID  int
	backend cartBackend
}

func NewUserCartStore(userID int) *UserCartStore {
	return &UserCartStore{userID: userID, backend: repositories.NewCartRepository()}
}

func (s *UserCartStore) Read(ctx context.Context) ([]models.CartLine, decimal.Decimal, error) {
	lines, err := s.backend.List(ctx, s.userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return lines, subtotal(lines), nil
}

func (s *UserCartStore) Add(ctx context.Context, productID, quantity int) error {
	return s.backend.Upsert(ctx, s.userID, productID, quantity)
}

func (s *UserCartStore) Remove(ctx context.Context, productID int) error {
	return s.backend.Remove(ctx, s.userID, productID)
}

func (s *UserCartStore) Clear(ctx context.Context) error {
	return s.backend.Clear(ctx, s.userID)
}

// GuestCartStore backs the cart with the guest cart cookie. Reads resolve each
// entry against the current catalog; entries whose product has been deleted
// resolve to a nil product and never contribute to the subtotal.
type GuestCartStore struct {
	c        *gin.Context
	products productFinder
}

func NewGuestCartStore(c *gin.Context) *GuestCartStore {
	return &GuestCartStore{c: c, products: repositories.NewProductRepository()}
}

func (s *GuestCartStore) Read(ctx context.Context) ([]models.CartLine, decimal.Decimal, error) {
	entries := ReadGuestCart(s.c)

	lines := make([]models.CartLine, 0, len(entries))
	for _, entry := range entries {
		line := models.CartLine{ProductID: entry.ProductID, Quantity: entry.Quantity}
		product, err := s.products.GetByID(ctx, entry.ProductID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, decimal.Zero, err
		}
		line.Product = product
		lines = append(lines, line)
	}

	return lines, subtotal(lines), nil
}

func (s *GuestCartStore) Add(ctx context.Context, productID, quantity int) error {
	entries := ReadGuestCart(s.c)

	found := false
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity += quantity
			if entries[i].Quantity <= 0 {
				entries = append(entries[:i], entries[i+1:]...)
			}
			found = true
			break
		}
	}
	if !found && quantity > 0 {
		entries = append(entries, models.GuestCartEntry{ProductID: productID, Quantity: quantity})
	}

	WriteGuestCart(s.c, entries)
	return nil
}

func (s *GuestCartStore) Remove(ctx context.Context, productID int) error {
	entries := ReadGuestCart(s.c)

	filtered := entries[:0]
	for _, entry := range entries {
		if entry.ProductID != productID {
			filtered = append(filtered, entry)
		}
	}

	WriteGuestCart(s.c, filtered)
	return nil
}

func (s *GuestCartStore) Clear(ctx context.Context) error {
	ExpireGuestCart(s.c)
	return nil
}
