package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mia-boutique/storefront/internal/format"
	"github.com/mia-boutique/storefront/internal/storage"
)

type Repo struct {
	Backend storage.Backend
}

// ---- products ----

func (r *Repo) Products(ctx context.Context) ([]Product, error) {
	var ps []Product
	if err := storage.LoadJSON(ctx, r.Backend, storage.Products, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// ProductByID looks a product up by id, falling back to slug so storefront
// pages can use either.
func (r *Repo) ProductByID(ctx context.Context, id string) (Product, error) {
	ps, err := r.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range ps {
		if p.ID == id || p.Slug == id {
			return p, nil
		}
	}
	return Product{}, storage.ErrNotFound
}

func (r *Repo) CreateProduct(ctx context.Context, in NewProduct) (Product, error) {
	ps, err := r.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	now := time.Now().UTC()
	p := Product{
		ID:          uuid.NewString(),
		SKU:         in.SKU,
		Slug:        uniqueSlug(ps, format.Slugify(in.Name), ""),
		Name:        in.Name,
		Brand:       in.Brand,
		Description: in.Description,
		Composition: in.Composition,
		Care:        in.Care,
		Category:    in.Category,
		Gender:      in.Gender,
		Price:       in.Price,
		OldPrice:    in.OldPrice,
		Colors:      in.Colors,
		Stores:      in.Stores,
		IsNew:       in.IsNew,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Colors == nil {
		p.Colors = []Color{}
	}
	if p.Stores == nil {
		p.Stores = []string{}
	}
	// newest first, matching the admin listing
	ps = append([]Product{p}, ps...)
	if err := storage.SaveJSON(ctx, r.Backend, storage.Products, ps); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error) {
	ps, err := r.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	for i := range ps {
		if ps[i].ID != id {
			continue
		}
		p := &ps[i]
		applyString(&p.SKU, patch.SKU)
		applyString(&p.Brand, patch.Brand)
		applyString(&p.Description, patch.Description)
		applyString(&p.Composition, patch.Composition)
		applyString(&p.Care, patch.Care)
		applyString(&p.Category, patch.Category)
		applyString(&p.Gender, patch.Gender)
		if patch.Name != nil {
			p.Name = *patch.Name
			p.Slug = uniqueSlug(ps, format.Slugify(p.Name), id)
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.OldPrice != nil {
			p.OldPrice = patch.OldPrice
		}
		if patch.Colors != nil {
			p.Colors = *patch.Colors
		}
		if patch.Stores != nil {
			p.Stores = *patch.Stores
		}
		if patch.IsNew != nil {
			p.IsNew = *patch.IsNew
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		p.UpdatedAt = time.Now().UTC()
		if err := storage.SaveJSON(ctx, r.Backend, storage.Products, ps); err != nil {
			return Product{}, err
		}
		return *p, nil
	}
	return Product{}, storage.ErrNotFound
}

func (r *Repo) DeleteProduct(ctx context.Context, id string) error {
	ps, err := r.Products(ctx)
	if err != nil {
		return err
	}
	kept := ps[:0]
	for _, p := range ps {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(ps) {
		return storage.ErrNotFound
	}
	return storage.SaveJSON(ctx, r.Backend, storage.Products, kept)
}

// uniqueSlug probes base, base-1, base-2, ... against the snapshot until no
// other product holds the candidate. excludeID skips the record being updated.
func uniqueSlug(ps []Product, base string, excludeID string) string {
	if base == "" {
		base = "product"
	}
	taken := func(s string) bool {
		for _, p := range ps {
			if p.Slug == s && p.ID != excludeID {
				return true
			}
		}
		return false
	}
	slug := base
	for n := 1; taken(slug); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ---- stores ----

func (r *Repo) Stores(ctx context.Context) ([]Store, error) {
	var ss []Store
	if err := storage.LoadJSON(ctx, r.Backend, storage.Stores, &ss); err != nil {
		return nil, err
	}
	return ss, nil
}

func (r *Repo) CreateStore(ctx context.Context, s Store) (Store, error) {
	ss, err := r.Stores(ctx)
	if err != nil {
		return Store{}, err
	}
	s.ID = uuid.NewString()
	ss = append(ss, s)
	if err := storage.SaveJSON(ctx, r.Backend, storage.Stores, ss); err != nil {
		return Store{}, err
	}
	return s, nil
}

func (r *Repo) UpdateStore(ctx context.Context, id string, patch Store) (Store, error) {
	ss, err := r.Stores(ctx)
	if err != nil {
		return Store{}, err
	}
	for i := range ss {
		if ss[i].ID != id {
			continue
		}
		patch.ID = id
		ss[i] = patch
		if err := storage.SaveJSON(ctx, r.Backend, storage.Stores, ss); err != nil {
			return Store{}, err
		}
		return ss[i], nil
	}
	return Store{}, storage.ErrNotFound
}

func (r *Repo) DeleteStore(ctx context.Context, id string) error {
	ss, err := r.Stores(ctx)
	if err != nil {
		return err
	}
	kept := ss[:0]
	for _, s := range ss {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(ss) {
		return storage.ErrNotFound
	}
	return storage.SaveJSON(ctx, r.Backend, storage.Stores, kept)
}

// ---- categories ----

func (r *Repo) Categories(ctx context.Context) ([]Category, error) {
	var cs []Category
	if err := storage.LoadJSON(ctx, r.Backend, storage.Categories, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *Repo) CreateCategory(ctx context.Context, c Category) (Category, error) {
	cs, err := r.Categories(ctx)
	if err != nil {
		return Category{}, err
	}
	c.ID = uuid.NewString()
	if c.Slug == "" {
		c.Slug = format.Slugify(c.Label)
	}
	if c.Slug == "" {
		c.Slug = "category"
	}
	cs = append(cs, c)
	if err := storage.SaveJSON(ctx, r.Backend, storage.Categories, cs); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *Repo) UpdateCategory(ctx context.Context, id string, patch Category) (Category, error) {
	cs, err := r.Categories(ctx)
	if err != nil {
		return Category{}, err
	}
	for i := range cs {
		if cs[i].ID != id {
			continue
		}
		patch.ID = id
		if patch.Slug == "" {
			patch.Slug = cs[i].Slug
		}
		cs[i] = patch
		if err := storage.SaveJSON(ctx, r.Backend, storage.Categories, cs); err != nil {
			return Category{}, err
		}
		return cs[i], nil
	}
	return Category{}, storage.ErrNotFound
}

func (r *Repo) DeleteCategory(ctx context.Context, id string) error {
	cs, err := r.Categories(ctx)
	if err != nil {
		return err
	}
	kept := cs[:0]
	for _, c := range cs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cs) {
		return storage.ErrNotFound
	}
	return storage.SaveJSON(ctx, r.Backend, storage.Categories, kept)
}
