package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caprest/clearance-catalog/internal/domain/product"
)

func TestLoadFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1","name":"Chair","price":10}]`), 0o644))

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestWriteLoadRoundTripGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json.gz")
	in := New([]product.Product{
		{ID: "1", Name: "Chair", Price: d("10")},
		{ID: "2", Name: "Sofa", Price: d("20.50")},
	})

	require.NoError(t, WriteFile(path, in))

	out, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())

	p, ok := out.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Sofa", p.Name)
	assert.True(t, d("20.50").Equal(p.Price))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
