package browse

import (
	"context"
	"fmt"

	"github.com/caprest/clearance-catalog/internal/domain/product"
	"github.com/caprest/clearance-catalog/internal/inquiry"
)

// Cart button labels shown in the detail modal.
const (
	AddToCartLabel = "Add to Inquiry List"
	InCartLabel    = "In Inquiry List"
)

// DetailView is the rendered state of the product detail modal.
type DetailView struct {
	ID          string
	Name        string
	PriceLabel  string
	Description string
	Images      []string
	ImageIndex  int
	// ImageLabel reads "Image i of n"; a product without images shows
	// "Image 0 of 0".
	ImageLabel      string
	CartButtonLabel string
}

// OpenDetail opens the detail modal on the product at the given position
// in the current filtered view, starting at its first image. An
// out-of-range index is a no-op; it reports whether the modal opened.
func (s *Session) OpenDetail(filteredIndex int) bool {
	if filteredIndex < 0 || filteredIndex >= s.view.FilteredCount() {
		return false
	}
	s.detail = detailState{open: true, filteredIndex: filteredIndex}
	return true
}

// CloseDetail closes the detail modal. Cart and view state are untouched.
func (s *Session) CloseDetail() {
	s.detail = detailState{}
}

// DetailOpen reports whether the detail modal is open.
func (s *Session) DetailOpen() bool {
	return s.detail.open
}

// NextImage advances the active image, wrapping past the last one back
// to the first. No-op when the modal is closed or the product has no
// images.
func (s *Session) NextImage() {
	s.stepImage(1)
}

// PrevImage steps the active image backwards, wrapping from the first
// image to the last.
func (s *Session) PrevImage() {
	s.stepImage(-1)
}

func (s *Session) stepImage(delta int) {
	p, ok := s.openProduct()
	if !ok {
		return
	}
	n := len(p.ImageURLs)
	if n == 0 {
		return
	}
	s.detail.imageIndex = ((s.detail.imageIndex+delta)%n + n) % n
}

// AddOpenToCart adds the open product to the inquiry list, reporting
// whether the cart changed. The next Detail projection picks up the new
// button label.
func (s *Session) AddOpenToCart(ctx context.Context) bool {
	p, ok := s.openProduct()
	if !ok {
		return false
	}
	return s.cart.Add(ctx, p.ID)
}

// EmailOpenInquiry adds the open product to the inquiry list (a no-op if
// it is already there) and composes the mail deep link over the entire
// cart. An inquiry always covers everything the user has expressed
// interest in, not just the product in view.
func (s *Session) EmailOpenInquiry(ctx context.Context) (string, bool) {
	p, ok := s.openProduct()
	if !ok {
		return "", false
	}
	s.cart.Add(ctx, p.ID)
	return inquiry.ComposeLink(s.cart.Items(), s.recipient), true
}

// Detail projects the detail modal's current state. The second return is
// false when the modal is closed.
func (s *Session) Detail() (DetailView, bool) {
	p, ok := s.openProduct()
	if !ok {
		return DetailView{}, false
	}

	label := AddToCartLabel
	if s.cart.Has(p.ID) {
		label = InCartLabel
	}

	shown := 0
	if len(p.ImageURLs) > 0 {
		shown = s.detail.imageIndex + 1
	}

	return DetailView{
		ID:              p.ID,
		Name:            p.Name,
		PriceLabel:      "$" + product.FormatMoney(p.Price),
		Description:     p.Description,
		Images:          p.ImageURLs,
		ImageIndex:      s.detail.imageIndex,
		ImageLabel:      fmt.Sprintf("Image %d of %d", shown, len(p.ImageURLs)),
		CartButtonLabel: label,
	}, true
}

func (s *Session) openProduct() (product.Product, bool) {
	if !s.detail.open {
		return product.Product{}, false
	}
	filtered := s.view.Filtered()
	if s.detail.filteredIndex >= len(filtered) {
		return product.Product{}, false
	}
	return filtered[s.detail.filteredIndex], true
}
