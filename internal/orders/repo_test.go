package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-boutique/storefront/internal/catalog"
	"github.com/mia-boutique/storefront/internal/storage"
	"github.com/mia-boutique/storefront/internal/validate"
)

func newRepo(t *testing.T) (*Repo, catalog.Product) {
	t.Helper()
	backend := storage.NewJSONFiles(t.TempDir())
	cat := &catalog.Repo{Backend: backend}
	p, err := cat.CreateProduct(context.Background(), catalog.NewProduct{
		Name:     "Teddy Bear Coat",
		Brand:    "Max Mara",
		Category: "coats",
		Gender:   "women",
		Price:    12990,
		IsActive: true,
	})
	require.NoError(t, err)
	return &Repo{Backend: backend, Catalog: cat}, p
}

func checkout(p catalog.Product, qty int) NewOrder {
	return NewOrder{
		Customer: Customer{Name: "Анна Иванова", Phone: "+7 912 345 67 89"},
		Items:    []NewItem{{ProductID: p.ID, ColorID: "camel", Size: "M", Quantity: qty}},
		Delivery: "pickup",
		Payment:  "card",
		StoreID:  "store-1",
	}
}

func TestCreateOrder(t *testing.T) {
	r, p := newRepo(t)
	ctx := context.Background()

	o, err := r.CreateOrder(ctx, checkout(p, 2))
	require.NoError(t, err)

	year := time.Now().UTC().Year()
	assert.Equal(t, fmt.Sprintf("MIA-%d-0001", year), o.Number)
	assert.Equal(t, StatusNew, o.Status)
	assert.Equal(t, 2*12990, o.TotalAmount)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 12990, o.Items[0].Price)

	second, err := r.CreateOrder(ctx, checkout(p, 1))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("MIA-%d-0002", year), second.Number)

	// newest first
	os, err := r.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, os, 2)
	assert.Equal(t, second.ID, os[0].ID)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	r, p := newRepo(t)
	in := checkout(p, 1)
	in.Items[0].ProductID = "missing"

	_, err := r.CreateOrder(context.Background(), in)
	require.Error(t, err)
	verr, ok := err.(*validate.Error)
	require.True(t, ok)
	assert.Contains(t, verr.Issues, "items.0.productId: Unknown product")
}

func TestUpdateStatus(t *testing.T) {
	r, p := newRepo(t)
	ctx := context.Background()

	o, err := r.CreateOrder(ctx, checkout(p, 1))
	require.NoError(t, err)

	updated, old, err := r.UpdateStatus(ctx, o.ID, StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, old)
	assert.Equal(t, StatusProcessing, updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	// any status is reachable from any other
	_, _, err = r.UpdateStatus(ctx, o.ID, StatusNew)
	require.NoError(t, err)

	_, _, err = r.UpdateStatus(ctx, "missing", StatusCompleted)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	r, p := newRepo(t)
	ctx := context.Background()

	o, err := r.CreateOrder(ctx, checkout(p, 1))
	require.NoError(t, err)
	require.NoError(t, r.DeleteOrder(ctx, o.ID))
	assert.ErrorIs(t, r.DeleteOrder(ctx, o.ID), storage.ErrNotFound)
}

func TestValidateNewOrder(t *testing.T) {
	var in NewOrder
	err := ValidateNewOrder(in)
	require.Error(t, err)
	issues := err.(*validate.Error).Issues
	assert.Contains(t, issues, "customer.name: Required")
	assert.Contains(t, issues, "items: Array must contain at least 1 element(s)")

	in = NewOrder{
		Customer: Customer{Name: "Анна", Phone: "+7 912 345 67 89"},
		Items:    []NewItem{{ProductID: "p1", Size: "M", Quantity: 1}},
		Delivery: "courier",
		Payment:  "cash",
	}
	err = ValidateNewOrder(in)
	require.Error(t, err)
	assert.Contains(t, err.(*validate.Error).Issues, "customer.address: Required")

	in.Customer.Address = "Москва, ул. Арбат, 1"
	assert.NoError(t, ValidateNewOrder(in))
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, ValidateStatus("processing"))

	err := ValidateStatus("shipped")
	require.Error(t, err)
	assert.Equal(t,
		"status: Invalid enum value. Expected 'new' | 'processing' | 'completed' | 'cancelled', received 'shipped'",
		err.(*validate.Error).Issues[0])
}
