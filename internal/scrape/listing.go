package scrape

import (
	"strings"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// listingEntry is one product as it appears in the collection feed,
// before normalization into a catalog record.
type listingEntry struct {
	id     string
	title  string
	handle string
	price  decimal.Decimal
	images []string
}

// decodeListing parses a products.json feed page. Records with missing
// or malformed fields are kept with defaults; only a structurally broken
// payload is an error.
func decodeListing(data []byte) ([]listingEntry, error) {
	var entries []listingEntry

	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "products" {
			return d.Skip()
		}
		return d.Arr(func(d *jx.Decoder) error {
			entry, err := decodeListingEntry(d)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeListingEntry(d *jx.Decoder) (listingEntry, error) {
	var (
		entry          listingEntry
		price, compare decimal.Decimal
	)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			id, err := decodeScalarString(d)
			if err != nil {
				return err
			}
			entry.id = id
			return nil
		case "title":
			title, err := decodeScalarString(d)
			if err != nil {
				return err
			}
			entry.title = title
			return nil
		case "handle":
			handle, err := decodeScalarString(d)
			if err != nil {
				return err
			}
			entry.handle = handle
			return nil
		case "variants":
			return decodeFirstVariant(d, &price, &compare)
		case "images":
			return d.Arr(func(d *jx.Decoder) error {
				return d.Obj(func(d *jx.Decoder, key string) error {
					if key != "src" {
						return d.Skip()
					}
					src, err := decodeScalarString(d)
					if err != nil {
						return err
					}
					if src != "" {
						entry.images = append(entry.images, src)
					}
					return nil
				})
			})
		default:
			return d.Skip()
		}
	}); err != nil {
		return listingEntry{}, err
	}

	// Prefer the current (discounted) price; compare_at_price is the
	// pre-clearance figure and only a fallback.
	entry.price = price
	if entry.price.IsZero() && !compare.IsZero() {
		entry.price = compare
	}
	return entry, nil
}

// decodeFirstVariant reads the variants array, keeping prices from the
// first variant only.
func decodeFirstVariant(d *jx.Decoder, price, compare *decimal.Decimal) error {
	first := true
	return d.Arr(func(d *jx.Decoder) error {
		if !first {
			return d.Skip()
		}
		first = false
		return d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "price":
				*price = decodeListingPrice(d)
				return nil
			case "compare_at_price":
				*compare = decodeListingPrice(d)
				return nil
			default:
				return d.Skip()
			}
		})
	})
}

// decodeListingPrice reads a price given as a number, a numeric string,
// or null; anything unparsable becomes zero.
func decodeListingPrice(d *jx.Decoder) decimal.Decimal {
	s, err := decodeScalarString(d)
	if err != nil {
		return decimal.Zero
	}
	dec, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || dec.IsNegative() {
		return decimal.Zero
	}
	return dec
}

// decodeScalarString reads a value that should be a string but may
// arrive as a bare number or null.
func decodeScalarString(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	case jx.Null:
		return "", d.Null()
	default:
		return "", d.Skip()
	}
}
