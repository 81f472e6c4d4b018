package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-boutique/storefront/internal/validate"
)

func TestValidateNewProductOK(t *testing.T) {
	assert.NoError(t, ValidateNewProduct(sampleProduct("Product")))
}

func TestValidateNewProductMissingBrand(t *testing.T) {
	in := sampleProduct("Product")
	in.Brand = ""
	err := ValidateNewProduct(in)
	require.Error(t, err)
	verr := err.(*validate.Error)
	assert.Contains(t, verr.Issues, "brand: Required")
}

func TestValidateNewProductBadGender(t *testing.T) {
	in := sampleProduct("Product")
	in.Gender = "kids"
	err := ValidateNewProduct(in)
	require.Error(t, err)
	assert.Contains(t, err.(*validate.Error).Issues[0], "gender: Invalid enum value")
}

func TestValidateNewProductColorSizes(t *testing.T) {
	in := sampleProduct("Product")
	in.Colors = []Color{{Name: "Camel", Hex: "#c19a6b", Sizes: []SizeStock{{Size: "", Stock: -2}}}}
	err := ValidateNewProduct(in)
	require.Error(t, err)
	issues := err.(*validate.Error).Issues
	assert.Contains(t, issues, "colors.0.sizes.0.size: Required")
	assert.Contains(t, issues, "colors.0.sizes.0.stock: Number must be greater than or equal to 0")
}

func TestValidateProductPatch(t *testing.T) {
	price := -5
	err := ValidateProductPatch(ProductPatch{Price: &price})
	require.Error(t, err)
	assert.Contains(t, err.(*validate.Error).Issues, "price: Number must be greater than 0")

	assert.NoError(t, ValidateProductPatch(ProductPatch{}))
}
