// Package catalog is the data-access layer for products, stores, and
// categories. Every operation reloads its collection from the backend,
// applies the change, and writes the whole collection back.
package catalog

import "time"

// Gender values accepted on products.
var Genders = []string{"women", "men", "unisex"}

type Product struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Description string    `json:"description,omitempty"`
	Composition string    `json:"composition,omitempty"`
	Care        string    `json:"care,omitempty"`
	Category    string    `json:"category"`
	Gender      string    `json:"gender"`
	Price       int       `json:"price"`
	OldPrice    *int      `json:"oldPrice,omitempty"`
	Colors      []Color   `json:"colors"`
	Stores      []string  `json:"stores"`
	IsNew       bool      `json:"isNew"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Color struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Hex    string      `json:"hex"`
	Images []string    `json:"images"`
	Sizes  []SizeStock `json:"sizes"`
}

type SizeStock struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// Store is a physical boutique location; static reference data.
type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
	Phone   string `json:"phone"`
}

// Category is a catalog navigation entry. Products reference it by slug.
type Category struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// NewProduct is the validated create payload. Identity, slug, and timestamps
// are assigned by the repo.
type NewProduct struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Composition string   `json:"composition"`
	Care        string   `json:"care"`
	Category    string   `json:"category"`
	Gender      string   `json:"gender"`
	Price       int      `json:"price"`
	OldPrice    *int     `json:"oldPrice"`
	Colors      []Color  `json:"colors"`
	Stores      []string `json:"stores"`
	IsNew       bool     `json:"isNew"`
	IsActive    bool     `json:"isActive"`
}

// ProductPatch is a partial update; nil fields are left untouched. A name
// change re-derives the slug.
type ProductPatch struct {
	SKU         *string   `json:"sku"`
	Name        *string   `json:"name"`
	Brand       *string   `json:"brand"`
	Description *string   `json:"description"`
	Composition *string   `json:"composition"`
	Care        *string   `json:"care"`
	Category    *string   `json:"category"`
	Gender      *string   `json:"gender"`
	Price       *int      `json:"price"`
	OldPrice    *int      `json:"oldPrice"`
	Colors      *[]Color  `json:"colors"`
	Stores      *[]string `json:"stores"`
	IsNew       *bool     `json:"isNew"`
	IsActive    *bool     `json:"isActive"`
}
