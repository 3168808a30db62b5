// Package browse is the catalog interaction engine: it wires the catalog,
// the filtered view, the inquiry cart, and the mail composer behind a
// single session facade, and projects the current state into view models
// a presentation layer can render. Every projection is recomputed from
// current state on each call; nothing render-related is cached.
package browse

import (
	"context"

	"github.com/caprest/clearance-catalog/internal/cart"
	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/inquiry"
	"github.com/caprest/clearance-catalog/internal/view"
)

// Session holds all interaction state for one browsing session.
type Session struct {
	catalog   *catalog.Store
	view      *view.Engine
	cart      *cart.Store
	recipient string

	detail   detailState
	cartOpen bool
}

// detailState is the product detail modal: closed, or open on a product
// addressed by its position in the filtered view, with one active image.
type detailState struct {
	open          bool
	filteredIndex int
	imageIndex    int
}

// NewSession wires a session over an already-loaded catalog and cart.
func NewSession(cat *catalog.Store, eng *view.Engine, crt *cart.Store, recipient string) *Session {
	if recipient == "" {
		recipient = inquiry.DefaultRecipient
	}
	return &Session{
		catalog:   cat,
		view:      eng,
		cart:      crt,
		recipient: recipient,
	}
}

// Search replaces the query, which returns the view to page 1. It also
// closes the detail modal: the filtered ordering the modal was opened
// against no longer exists.
func (s *Session) Search(text string) {
	s.view.SetQuery(text)
	s.detail = detailState{}
}

// SetPage navigates to the given page, clamped.
func (s *Session) SetPage(n int) {
	s.view.SetPage(n)
}

// GoToPage navigates to a page entered as text. Non-numeric input is
// ignored; numeric input is clamped. Reports whether the page changed.
func (s *Session) GoToPage(raw string) bool {
	return s.view.GoToPage(raw)
}

// AddToCart adds a catalog product to the inquiry list by id, reporting
// whether the cart changed.
func (s *Session) AddToCart(ctx context.Context, id string) bool {
	return s.cart.Add(ctx, id)
}

// RemoveFromCart removes a product from the inquiry list by id,
// reporting whether the cart changed.
func (s *Session) RemoveFromCart(ctx context.Context, id string) bool {
	return s.cart.Remove(ctx, id)
}

// OpenCart opens the cart modal.
func (s *Session) OpenCart() { s.cartOpen = true }

// CloseCart closes the cart modal ("continue shopping").
func (s *Session) CloseCart() { s.cartOpen = false }

// CartOpen reports whether the cart modal is open.
func (s *Session) CartOpen() bool { return s.cartOpen }

// View exposes the underlying view engine.
func (s *Session) View() *view.Engine { return s.view }

// Cart exposes the underlying cart store.
func (s *Session) Cart() *cart.Store { return s.cart }
