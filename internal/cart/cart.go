// Package cart implements the persistent inquiry list: an ordered set of
// product value copies keyed by id, snapshotted to a durable slot after
// every mutation. Persistence is best effort; the in-memory state stays
// authoritative for the session when the slot misbehaves.
package cart

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/domain/product"
	"github.com/caprest/clearance-catalog/pkg/kv"
)

// Store holds the inquiry list for one session.
type Store struct {
	catalog *catalog.Store
	slot    kv.Slot
	lg      *zap.Logger

	items []product.Product
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report swallowed persistence
// failures. The default is a no-op logger.
func WithLogger(lg *zap.Logger) Option {
	return func(s *Store) { s.lg = lg }
}

// New creates a Store over the given catalog, loading any previously
// persisted snapshot from slot. A missing, corrupt, or mis-typed
// snapshot yields an empty cart; it is never an error.
func New(ctx context.Context, cat *catalog.Store, slot kv.Slot, opts ...Option) *Store {
	s := &Store{
		catalog: cat,
		slot:    slot,
		lg:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.slot.Load(ctx)
	if err != nil {
		if !kv.IsNotFound(err) {
			s.lg.Warn("Cart snapshot unreadable, starting empty", zap.Error(err))
		}
		return
	}

	records, err := catalog.DecodeProducts(data)
	if err != nil {
		s.lg.Warn("Cart snapshot corrupt, starting empty", zap.Error(err))
		return
	}

	seen := make(map[string]struct{}, len(records))
	for _, p := range records {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		s.items = append(s.items, p)
	}
}

// Add looks the product up in the catalog and appends a value copy if it
// is not in the cart yet. It reports whether the cart changed; adding an
// unknown id or a product already present is a no-op.
func (s *Store) Add(ctx context.Context, id string) bool {
	if s.Has(id) {
		return false
	}
	p, ok := s.catalog.Get(id)
	if !ok {
		return false
	}
	s.items = append(s.items, p.Clone())
	s.persist(ctx)
	return true
}

// Remove deletes the product with the given id, preserving the order of
// the rest. It reports whether the cart changed.
func (s *Store) Remove(ctx context.Context, id string) bool {
	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// Has reports whether a product is in the cart.
func (s *Store) Has(id string) bool {
	for _, p := range s.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of items in the cart.
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns the cart contents in insertion order. The returned slice
// is a copy.
func (s *Store) Items() []product.Product {
	out := make([]product.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of item prices, zero for an empty cart.
func (s *Store) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s.items {
		sum = sum.Add(p.Price)
	}
	return sum
}

// persist snapshots the cart to the durable slot. Failures are logged
// and swallowed: a full or unavailable slot must not block the session.
func (s *Store) persist(ctx context.Context) {
	data := catalog.EncodeProducts(s.items)
	if err := s.slot.Save(ctx, data); err != nil {
		s.lg.Warn("Cart snapshot not persisted", zap.Error(err))
	}
}
