package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := NewFileSlot(filepath.Join(t.TempDir(), "cart.json"))

	_, err := slot.Load(ctx)
	assert.True(t, IsNotFound(err))

	require.NoError(t, slot.Save(ctx, []byte(`[{"id":"1"}]`)))

	data, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	// Saves replace, not append.
	require.NoError(t, slot.Save(ctx, []byte(`[]`)))
	data, err = slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFileSlotCreatesParentDir(t *testing.T) {
	ctx := context.Background()
	slot := NewFileSlot(filepath.Join(t.TempDir(), "nested", "dir", "cart.json"))

	require.NoError(t, slot.Save(ctx, []byte("x")))

	data, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemorySlot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	_, err := slot.Load(ctx)
	assert.True(t, IsNotFound(err))

	require.NoError(t, slot.Save(ctx, []byte("abc")))
	data, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))

	slot.FailSave = errors.New("quota exceeded")
	assert.Error(t, slot.Save(ctx, []byte("xyz")))

	// The previous contents survive a failed save.
	data, err = slot.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
