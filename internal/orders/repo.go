package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mia-boutique/storefront/internal/catalog"
	"github.com/mia-boutique/storefront/internal/storage"
	"github.com/mia-boutique/storefront/internal/validate"
)

type Repo struct {
	Backend storage.Backend
	Catalog *catalog.Repo
}

func (r *Repo) Orders(ctx context.Context) ([]Order, error) {
	var os []Order
	if err := storage.LoadJSON(ctx, r.Backend, storage.Orders, &os); err != nil {
		return nil, err
	}
	return os, nil
}

func (r *Repo) OrderByID(ctx context.Context, id string) (Order, error) {
	os, err := r.Orders(ctx)
	if err != nil {
		return Order{}, err
	}
	for _, o := range os {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, storage.ErrNotFound
}

// CreateOrder resolves unit prices from the catalog, computes the total,
// assigns the next order number, and prepends the order to the collection.
// An unknown productId in items surfaces as a validation error.
func (r *Repo) CreateOrder(ctx context.Context, in NewOrder) (Order, error) {
	products, err := r.Catalog.Products(ctx)
	if err != nil {
		return Order{}, err
	}
	prices := make(map[string]int, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	var is validate.Issues
	items := make([]Item, 0, len(in.Items))
	total := 0
	for i, it := range in.Items {
		price, ok := prices[it.ProductID]
		if !ok {
			is.Add(fmt.Sprintf("items.%d.productId", i), "Unknown product")
			continue
		}
		items = append(items, Item{
			ProductID: it.ProductID,
			ColorID:   it.ColorID,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Price:     price,
		})
		total += price * it.Quantity
	}
	if err := is.Err(); err != nil {
		return Order{}, err
	}

	os, err := r.Orders(ctx)
	if err != nil {
		return Order{}, err
	}
	now := time.Now().UTC()
	o := Order{
		ID:          uuid.NewString(),
		Number:      nextNumber(os, now),
		Customer:    in.Customer,
		Items:       items,
		TotalAmount: total,
		Delivery:    in.Delivery,
		Payment:     in.Payment,
		StoreID:     in.StoreID,
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	os = append([]Order{o}, os...)
	if err := storage.SaveJSON(ctx, r.Backend, storage.Orders, os); err != nil {
		return Order{}, err
	}
	return o, nil
}

// UpdateStatus sets the status and returns the order with its previous
// status, so callers can publish the transition.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status Status) (Order, Status, error) {
	os, err := r.Orders(ctx)
	if err != nil {
		return Order{}, "", err
	}
	for i := range os {
		if os[i].ID != id {
			continue
		}
		old := os[i].Status
		os[i].Status = status
		os[i].UpdatedAt = time.Now().UTC()
		if err := storage.SaveJSON(ctx, r.Backend, storage.Orders, os); err != nil {
			return Order{}, "", err
		}
		return os[i], old, nil
	}
	return Order{}, "", storage.ErrNotFound
}

func (r *Repo) DeleteOrder(ctx context.Context, id string) error {
	os, err := r.Orders(ctx)
	if err != nil {
		return err
	}
	kept := os[:0]
	for _, o := range os {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(os) {
		return storage.ErrNotFound
	}
	return storage.SaveJSON(ctx, r.Backend, storage.Orders, kept)
}

// nextNumber derives the serial from the collection length. Serials stay
// unique only while orders are never deleted; accepted at boutique scale.
func nextNumber(existing []Order, now time.Time) string {
	return fmt.Sprintf("MIA-%d-%04d", now.UTC().Year(), len(existing)+1)
}
