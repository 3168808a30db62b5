package browse

import (
	"github.com/caprest/clearance-catalog/internal/domain/product"
	"github.com/caprest/clearance-catalog/internal/view"
)

// PlaceholderImage is shown for products the source listed without
// photos (a transparent single-pixel GIF).
const PlaceholderImage = "data:image/gif;base64,R0lGODlhAQABAAAAACH5BAEKAAEALAAAAAABAAEAAAICTAEAOw=="

// Card is one gallery tile.
type Card struct {
	// FilteredIndex addresses the product within the filtered view, the
	// coordinate OpenDetail expects. Positions shift as the filter
	// changes, which is why the card also carries the stable ID for
	// cart operations.
	FilteredIndex int
	ID            string
	Name          string
	PriceLabel    string
	ImageURL      string
	InCart        bool
}

// GalleryView is the full rendered state of the gallery screen.
type GalleryView struct {
	Query      string
	Cards      []Card
	Pagination view.Pagination
	CartCount  int
	// Empty is set when the filter matched nothing; the gallery renders
	// an explicit empty page rather than an error.
	Empty bool
}

// Gallery projects the current page of the filtered view into cards.
func (s *Session) Gallery() GalleryView {
	items := s.view.PageItems()
	offset := s.view.PageOffset()

	cards := make([]Card, len(items))
	for i, p := range items {
		cards[i] = Card{
			FilteredIndex: offset + i,
			ID:            p.ID,
			Name:          p.Name,
			PriceLabel:    "$" + product.FormatMoney(p.Price),
			ImageURL:      p.FirstImage(PlaceholderImage),
			InCart:        s.cart.Has(p.ID),
		}
	}

	return GalleryView{
		Query:      s.view.Query(),
		Cards:      cards,
		Pagination: view.Paginate(s.view.PageCount(), s.view.Page(), view.DefaultWindowWidth),
		CartCount:  s.cart.Len(),
		Empty:      s.view.FilteredCount() == 0,
	}
}
