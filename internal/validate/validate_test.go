package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuesEmpty(t *testing.T) {
	var is Issues
	is.MinString("name", "Coat", 2)
	is.Positive("price", 100)
	is.Enum("gender", "women", []string{"women", "men"})
	assert.NoError(t, is.Err())
}

func TestRequired(t *testing.T) {
	var is Issues
	is.MinString("brand", "", 1)
	err := is.Err()
	require.Error(t, err)
	verr := err.(*Error)
	assert.Equal(t, "Validation error", verr.Message)
	assert.Equal(t, []string{"brand: Required"}, verr.Issues)
}

func TestEnumMessage(t *testing.T) {
	var is Issues
	is.Enum("status", "shipped", []string{"new", "processing", "completed", "cancelled"})
	err := is.Err()
	require.Error(t, err)
	assert.Equal(t,
		"status: Invalid enum value. Expected 'new' | 'processing' | 'completed' | 'cancelled', received 'shipped'",
		err.(*Error).Issues[0])
}

func TestMinString(t *testing.T) {
	var is Issues
	is.MinString("name", "x", 2)
	require.Error(t, is.Err())
	assert.Equal(t, "name: String must contain at least 2 character(s)", is[0])
}

func TestPositive(t *testing.T) {
	var is Issues
	is.Positive("price", 0)
	is.NonNegative("stock", -1)
	require.Len(t, is, 2)
	assert.Equal(t, "price: Number must be greater than 0", is[0])
	assert.Equal(t, "stock: Number must be greater than or equal to 0", is[1])
}
