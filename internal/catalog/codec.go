package catalog

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/caprest/clearance-catalog/internal/domain/product"
)

// DecodeProducts parses a JSON array of product records. The top-level
// value must be an array; anything else is an error. Within a record,
// malformed or missing fields degrade to safe defaults rather than
// failing the whole load: unparsable prices become zero, missing names
// get the placeholder, unknown keys are skipped.
func DecodeProducts(data []byte) ([]product.Product, error) {
	d := jx.DecodeBytes(data)

	var records []product.Product
	if err := d.Arr(func(d *jx.Decoder) error {
		p, err := decodeProduct(d)
		if err != nil {
			return err
		}
		records = append(records, p)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode product array")
	}
	return records, nil
}

// EncodeProducts renders products as a JSON array in the same shape
// DecodeProducts accepts, so persisted snapshots round-trip.
func EncodeProducts(records []product.Product) []byte {
	e := &jx.Encoder{}
	e.ArrStart()
	for _, p := range records {
		encodeProduct(e, p)
	}
	e.ArrEnd()
	return e.Bytes()
}

func decodeProduct(d *jx.Decoder) (product.Product, error) {
	var p product.Product
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			id, err := decodeStringy(d)
			if err != nil {
				return err
			}
			p.ID = id
			return nil
		case "name", "title":
			name, err := decodeStringy(d)
			if err != nil {
				return err
			}
			p.Name = name
			return nil
		// The scraper historically wrote clearance_price and
		// retail_price; all three spellings are accepted.
		case "price", "clearance_price", "retail_price":
			price, err := decodePrice(d)
			if err != nil {
				return err
			}
			p.Price = price
			return nil
		case "image_urls", "imageUrls":
			urls, err := decodeImageURLs(d)
			if err != nil {
				return err
			}
			p.ImageURLs = urls
			return nil
		case "description":
			desc, err := decodeStringy(d)
			if err != nil {
				return err
			}
			p.Description = desc
			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return product.Product{}, err
	}
	return p.Normalize(), nil
}

// decodeStringy reads a string field, tolerating a bare number (numeric
// ids from the source listing) and null.
func decodeStringy(d *jx.Decoder) (string, error) {
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

// decodePrice reads a price that may be a number, a numeric string, or
// null. Values that do not parse as a decimal become zero.
func decodePrice(d *jx.Decoder) (decimal.Decimal, error) {
	switch d.Next() {
	case jx.Number:
		raw, err := d.Raw()
		if err != nil {
			return decimal.Zero, err
		}
		return parseDecimal(string(raw)), nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return decimal.Zero, err
		}
		return parseDecimal(s), nil
	case jx.Null:
		return decimal.Zero, d.Null()
	default:
		return decimal.Zero, d.Skip()
	}
}

func parseDecimal(s string) decimal.Decimal {
	dec, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || dec.IsNegative() {
		return decimal.Zero
	}
	return dec
}

func decodeImageURLs(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	var urls []string
	if err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.String {
			return d.Skip()
		}
		u, err := d.Str()
		if err != nil {
			return err
		}
		if u != "" {
			urls = append(urls, u)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return urls, nil
}

func encodeProduct(e *jx.Encoder, p product.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(p.ID)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("price")
	e.RawStr(p.Price.String())
	e.FieldStart("image_urls")
	e.ArrStart()
	for _, u := range p.ImageURLs {
		e.Str(u)
	}
	e.ArrEnd()
	e.FieldStart("description")
	e.Str(p.Description)
	e.ObjEnd()
}
