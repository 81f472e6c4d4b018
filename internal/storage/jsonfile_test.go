package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFilesMissingCollection(t *testing.T) {
	s := NewJSONFiles(t.TempDir())
	data, err := s.Load(context.Background(), Products)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONFiles(dir)
	ctx := context.Background()

	type row struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []row{{ID: "1", Name: "Milano"}, {ID: "2", Name: "Roma"}}
	require.NoError(t, SaveJSON(ctx, s, Stores, in))

	var out []row
	require.NoError(t, LoadJSON(ctx, s, Stores, &out))
	assert.Equal(t, in, out)

	// files stay human-editable: 2-space indented JSON
	raw, err := os.ReadFile(filepath.Join(dir, "stores.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[\n  {\n    \"id\": \"1\"")
}

func TestJSONFilesCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := NewJSONFiles(dir)
	require.NoError(t, s.Save(context.Background(), Categories, []byte("[]")))
	_, err := os.Stat(filepath.Join(dir, "categories.json"))
	assert.NoError(t, err)
}
