package product

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// PlaceholderName is substituted when the source listing omits a title.
const PlaceholderName = "Untitled"

// Product represents a single clearance listing item. Identity is ID;
// every downstream structure references products by id or by value copy,
// never by position.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	ImageURLs   []string
	Description string
}

// Normalize applies the safe defaults for fields the source may omit:
// an empty name becomes PlaceholderName, a negative price becomes zero,
// a nil image list becomes an empty one.
func (p Product) Normalize() Product {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = PlaceholderName
	}
	if p.Price.IsNegative() {
		p.Price = decimal.Zero
	}
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return p
}

// FirstImage returns the first image URL, or fallback when the product
// has no images.
func (p Product) FirstImage(fallback string) string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return fallback
}

// Clone returns a deep value copy, so cart entries cannot alias the
// catalog's image slice.
func (p Product) Clone() Product {
	images := make([]string, len(p.ImageURLs))
	copy(images, p.ImageURLs)
	p.ImageURLs = images
	return p
}
