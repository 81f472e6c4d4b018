package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "0 ₽", Price(0))
	assert.Equal(t, "990 ₽", Price(990))
	assert.Equal(t, "12 990 ₽", Price(12990))
}

func TestPriceMillions(t *testing.T) {
	assert.Equal(t, "1 250 000 ₽", Price(1250000))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+7 (912) 345-67-89", Phone("89123456789"))
	assert.Equal(t, "+7 (912) 345-67-89", Phone("+7 912 345 67 89"))
	assert.Equal(t, "+7 (912) 345-67-89", Phone("+7 (912) 345-67-89"))
	// foreign or malformed numbers pass through untouched
	assert.Equal(t, "+39 02 1234 567", Phone("+39 02 1234 567"))
	assert.Equal(t, "12345", Phone("12345"))
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, time.March, 8, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "08.03.2026", Date(ts))
	assert.Equal(t, "08.03.2026 14:30", DateTime(ts))
}
