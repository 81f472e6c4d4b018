package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyLatin(t *testing.T) {
	assert.Equal(t, "wool-coat", Slugify("Wool Coat"))
	assert.Equal(t, "max-mara-teddy-bear", Slugify("Max Mara — Teddy Bear"))
	assert.Equal(t, "dress-2024", Slugify("  Dress 2024!  "))
}

func TestSlugifyCyrillic(t *testing.T) {
	assert.Equal(t, "plate-vechernee", Slugify("Платье вечернее"))
	assert.Equal(t, "shchyotka", Slugify("Щётка"))
	assert.Equal(t, "zhaket-iz-shersti", Slugify("Жакет из шерсти"))
	assert.Equal(t, "obekt", Slugify("объект"))
	assert.Equal(t, "chay-matcha", Slugify("Чай матча"))
}

func TestSlugifyDiacritics(t *testing.T) {
	assert.Equal(t, "creme-brulee", Slugify("Crème Brûlée"))
	assert.Equal(t, "elegance", Slugify("Élégance"))
}

func TestSlugifyEmpty(t *testing.T) {
	assert.Equal(t, "", Slugify(""))
	assert.Equal(t, "", Slugify("---"))
}
