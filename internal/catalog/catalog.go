// Package catalog holds the immutable product catalog for a browsing
// session. The store is built once from the scraped listing and is the
// source of truth for all product data afterwards.
package catalog

import (
	"github.com/google/uuid"

	"github.com/caprest/clearance-catalog/internal/domain/product"
)

// Store is an immutable ordered collection of products, unique by id.
type Store struct {
	products []product.Product
	byID     map[string]int
}

// New builds a Store from the given records. Each record is normalized
// (placeholder name, non-negative price, non-nil images); a record with an
// empty id gets a generated one, and a duplicate id keeps the first
// occurrence and drops the rest.
func New(records []product.Product) *Store {
	s := &Store{
		products: make([]product.Product, 0, len(records)),
		byID:     make(map[string]int, len(records)),
	}
	for _, p := range records {
		p = p.Normalize()
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if _, ok := s.byID[p.ID]; ok {
			continue
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// All returns the products in catalog order. The returned slice is a copy.
func (s *Store) All() []product.Product {
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (product.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return product.Product{}, false
	}
	return s.products[i], true
}
