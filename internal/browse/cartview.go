package browse

import (
	"github.com/caprest/clearance-catalog/internal/domain/product"
	"github.com/caprest/clearance-catalog/internal/inquiry"
)

// CartItem is one row of the cart modal.
type CartItem struct {
	ID         string
	Name       string
	PriceLabel string
	ImageURL   string
}

// CartView is the rendered state of the cart modal. It is recomputed on
// every call, so it always reflects the latest mutation.
type CartView struct {
	Items      []CartItem
	TotalLabel string
	Empty      bool
	// MailtoLink emails exactly what is in the cart; unlike the detail
	// modal action it adds nothing first.
	MailtoLink string
}

// CartModal projects the cart contents for the cart modal.
func (s *Session) CartModal() CartView {
	items := s.cart.Items()

	rows := make([]CartItem, len(items))
	for i, p := range items {
		rows[i] = CartItem{
			ID:         p.ID,
			Name:       p.Name,
			PriceLabel: "$" + product.FormatMoney(p.Price),
			ImageURL:   p.FirstImage(PlaceholderImage),
		}
	}

	return CartView{
		Items:      rows,
		TotalLabel: "$" + product.FormatMoney(s.cart.Total()),
		Empty:      len(items) == 0,
		MailtoLink: inquiry.ComposeLink(items, s.recipient),
	}
}
