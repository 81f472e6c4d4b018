package catalog

import (
	"fmt"

	"github.com/mia-boutique/storefront/internal/validate"
)

func ValidateNewProduct(in NewProduct) error {
	var is validate.Issues
	is.MinString("name", in.Name, 2)
	is.MaxString("name", in.Name, 200)
	is.MinString("brand", in.Brand, 1)
	is.MinString("category", in.Category, 1)
	is.Enum("gender", in.Gender, Genders)
	is.Positive("price", in.Price)
	if in.OldPrice != nil {
		is.Positive("oldPrice", *in.OldPrice)
	}
	validateColors("colors", in.Colors, &is)
	return is.Err()
}

func ValidateProductPatch(patch ProductPatch) error {
	var is validate.Issues
	if patch.Name != nil {
		is.MinString("name", *patch.Name, 2)
		is.MaxString("name", *patch.Name, 200)
	}
	if patch.Brand != nil {
		is.MinString("brand", *patch.Brand, 1)
	}
	if patch.Category != nil {
		is.MinString("category", *patch.Category, 1)
	}
	if patch.Gender != nil {
		is.Enum("gender", *patch.Gender, Genders)
	}
	if patch.Price != nil {
		is.Positive("price", *patch.Price)
	}
	if patch.OldPrice != nil {
		is.Positive("oldPrice", *patch.OldPrice)
	}
	if patch.Colors != nil {
		validateColors("colors", *patch.Colors, &is)
	}
	return is.Err()
}

func validateColors(path string, colors []Color, is *validate.Issues) {
	for i, c := range colors {
		is.MinString(fmt.Sprintf("%s.%d.name", path, i), c.Name, 1)
		for j, sz := range c.Sizes {
			is.MinString(fmt.Sprintf("%s.%d.sizes.%d.size", path, i, j), sz.Size, 1)
			is.NonNegative(fmt.Sprintf("%s.%d.sizes.%d.stock", path, i, j), sz.Stock)
		}
	}
}

func ValidateStore(s Store) error {
	var is validate.Issues
	is.MinString("name", s.Name, 1)
	is.MinString("city", s.City, 1)
	is.MinString("address", s.Address, 1)
	return is.Err()
}

func ValidateCategory(c Category) error {
	var is validate.Issues
	is.MinString("label", c.Label, 1)
	return is.Err()
}
