package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"
	"storefront/repositories"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCartBackend implements cartBackend for testing
type MockCartBackend struct {
	Lines      []models.CartLine
	ListErr    error
	Upserted   [][3]int
	Removed    [][2]int
	ClearedFor []int
}

func (m *MockCartBackend) List(_ context.Context, _ int) ([]models.CartLine, error) {
	return m.Lines, m.ListErr
}

func (m *MockCartBackend) Upsert(_ context.Context, userID, productID, quantity int) error {
	m.Upserted = append(m.Upserted, [3]int{userID, productID, quantity})
	return nil
}

func (m *MockCartBackend) Remove(_ context.Context, userID, productID int) error {
	m.Removed = append(m.Removed, [2]int{userID, productID})
	return nil
}

func (m *MockCartBackend) Clear(_ context.Context, userID int) error {
	m.ClearedFor = append(m.ClearedFor, userID)
	return nil
}

// MockProductFinder implements productFinder for testing
type MockProductFinder struct {
	Products map[int]*models.Product
	Err      error
}

func (m *MockProductFinder) GetByID(_ context.Context, id int) (*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if p, ok := m.Products[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

func testProduct(id int, price string) *models.Product {
	return &models.Product{ID: id, Name: "Product", Price: decimal.RequireFromString(price)}
}

func TestCartStoreFor_PicksBackendBySession(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, isGuest := CartStoreFor(c).(*GuestCartStore)
	assert.True(t, isGuest)

	c.Set("user_id", 7)
	_, isUser := CartStoreFor(c).(*UserCartStore)
	assert.True(t, isUser)
}

func TestUserCartStore_ReadComputesSubtotal(t *testing.T) {
	backend := &MockCartBackend{
		Lines: []models.CartLine{
			{ProductID: 1, Quantity: 2, Product: testProduct(1, "10.00")},
			{ProductID: 2, Quantity: 1, Product: testProduct(2, "4.50")},
		},
	}
	store := &UserCartStore{userID: 7, backend: backend}

	lines, total, err := store.Read(context.Background())

	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.True(t, total.Equal(decimal.RequireFromString("24.50")))
}

func TestUserCartStore_ReadExcludesDeletedProducts(t *testing.T) {
	backend := &MockCartBackend{
		Lines: []models.CartLine{
			{ProductID: 1, Quantity: 2, Product: testProduct(1, "10.00")},
			{ProductID: 9, Quantity: 3, Product: nil},
		},
	}
	store := &UserCartStore{userID: 7, backend: backend}

	lines, total, err := store.Read(context.Background())

	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.True(t, total.Equal(decimal.RequireFromString("20.00")))
}

func TestUserCartStore_OperationsTargetSessionUser(t *testing.T) {
	backend := &MockCartBackend{}
	store := &UserCartStore{userID: 7, backend: backend}

	require.NoError(t, store.Add(context.Background(), 3, 2))
	require.NoError(t, store.Remove(context.Background(), 3))
	require.NoError(t, store.Clear(context.Background()))

	assert.Equal(t, [][3]int{{7, 3, 2}}, backend.Upserted)
	assert.Equal(t, [][2]int{{7, 3}}, backend.Removed)
	assert.Equal(t, []int{7}, backend.ClearedFor)
}

func TestUserCartStore_ReadPropagatesBackendError(t *testing.T) {
	backend := &MockCartBackend{ListErr: errors.New("connection refused")}
	store := &UserCartStore{userID: 7, backend: backend}

	_, _, err := store.Read(context.Background())

	assert.Error(t, err)
}

func TestGuestCartStore_ReadResolvesCurrentPrices(t *testing.T) {
	c, _ := guestCartContext(t, []models.GuestCartEntry{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	store := &GuestCartStore{c: c, products: &MockProductFinder{Products: map[int]*models.Product{
		1: testProduct(1, "10.00"),
		2: testProduct(2, "5.25"),
	}}}

	lines, total, err := store.Read(context.Background())

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, total.Equal(decimal.RequireFromString("25.25")))
}

func TestGuestCartStore_ReadKeepsLinesForDeletedProducts(t *testing.T) {
	c, _ := guestCartContext(t, []models.GuestCartEntry{
		{ProductID: 1, Quantity: 2},
		{ProductID: 99, Quantity: 5},
	})
	store := &GuestCartStore{c: c, products: &MockProductFinder{Products: map[int]*models.Product{
		1: testProduct(1, "10.00"),
	}}}

	lines, total, err := store.Read(context.Background())

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Nil(t, lines[1].Product)
	assert.True(t, total.Equal(decimal.RequireFromString("20.00")))
}

func TestGuestCartStore_ReadPropagatesLookupError(t *testing.T) {
	c, _ := guestCartContext(t, []models.GuestCartEntry{{ProductID: 1, Quantity: 1}})
	store := &GuestCartStore{c: c, products: &MockProductFinder{Err: errors.New("connection refused")}}

	_, _, err := store.Read(context.Background())

	assert.Error(t, err)
}
