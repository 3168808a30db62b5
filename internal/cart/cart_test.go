package cart

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/domain/product"
	"github.com/caprest/clearance-catalog/pkg/kv"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testCatalog() *catalog.Store {
	return catalog.New([]product.Product{
		{ID: "1", Name: "A", Price: d("10")},
		{ID: "2", Name: "B", Price: d("20.5")},
		{ID: "3", Name: "C", Price: d("0")},
	})
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, testCatalog(), kv.NewMemorySlot())

	assert.True(t, s.Add(ctx, "1"))
	assert.False(t, s.Add(ctx, "1"))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("1"))
}

func TestAddUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, testCatalog(), kv.NewMemorySlot())

	assert.False(t, s.Add(ctx, "missing"))
	assert.Equal(t, 0, s.Len())
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, testCatalog(), kv.NewMemorySlot())

	require.True(t, s.Add(ctx, "2"))
	require.True(t, s.Remove(ctx, "2"))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("2"))

	// Removing again is a no-op.
	assert.False(t, s.Remove(ctx, "2"))
}

func TestRemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, testCatalog(), kv.NewMemorySlot())
	s.Add(ctx, "1")
	s.Add(ctx, "2")
	s.Add(ctx, "3")

	require.True(t, s.Remove(ctx, "2"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, testCatalog(), kv.NewMemorySlot())

	assert.True(t, s.Total().IsZero())

	s.Add(ctx, "1")
	s.Add(ctx, "2")
	s.Add(ctx, "3")
	assert.True(t, d("30.50").Equal(s.Total()))
}

func TestPersistLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := kv.NewMemorySlot()
	cat := testCatalog()

	s := New(ctx, cat, slot)
	s.Add(ctx, "2")
	s.Add(ctx, "1")

	// A fresh store over the same slot simulates a reload.
	reloaded := New(ctx, cat, slot)
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "B", items[0].Name)
	assert.True(t, d("20.5").Equal(items[0].Price))
}

func TestCorruptSnapshotYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	slot := kv.NewMemorySlot()
	require.NoError(t, slot.Save(ctx, []byte(`{"oops": true}`)))

	s := New(ctx, testCatalog(), slot)
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotDuplicatesCollapsedOnLoad(t *testing.T) {
	ctx := context.Background()
	slot := kv.NewMemorySlot()
	require.NoError(t, slot.Save(ctx, []byte(`[{"id":"1","name":"A"},{"id":"1","name":"A again"}]`)))

	s := New(ctx, testCatalog(), slot)
	assert.Equal(t, 1, s.Len())
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	slot := kv.NewMemorySlot()
	slot.FailSave = errors.New("quota exceeded")

	s := New(ctx, testCatalog(), slot)

	// The in-memory cart stays authoritative even though nothing was
	// persisted.
	assert.True(t, s.Add(ctx, "1"))
	assert.True(t, s.Has("1"))
	assert.Equal(t, 1, s.Len())
}

func TestItemsAreValueCopies(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()
	s := New(ctx, cat, kv.NewMemorySlot())
	s.Add(ctx, "1")

	items := s.Items()
	items[0].Name = "mutated"

	fresh := s.Items()
	assert.Equal(t, "A", fresh[0].Name)
}
