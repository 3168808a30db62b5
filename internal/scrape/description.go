package scrape

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// fetchDescription loads the product page and extracts the description
// from its ld+json structured data block, filtered through the
// description filter. Any miss along the way yields an empty string.
func (s *Scraper) fetchDescription(ctx context.Context, handle string) (string, error) {
	if handle == "" {
		return "", nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	url := s.cfg.BaseURL + "/products/" + handle
	res, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", errors.Wrap(err, "get product page")
	}
	if res.StatusCode() != 200 {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return "", errors.Wrap(err, "parse product page")
	}

	desc := ""
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if d := descriptionFromLDJSON([]byte(sel.Text())); d != "" {
			desc = d
			return false
		}
		return true
	})

	desc = strings.TrimSpace(desc)
	if s.filter != nil {
		desc = s.filter.Clean(desc)
	}
	return desc, nil
}

// descriptionFromLDJSON pulls the top-level description field out of an
// ld+json payload. Some pages embed a single object, others a list of
// them; both forms are handled, non-JSON blocks yield "".
func descriptionFromLDJSON(raw []byte) string {
	d := jx.DecodeBytes(raw)
	switch d.Next() {
	case jx.Object:
		return descriptionFromObject(d)
	case jx.Array:
		var found string
		_ = d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.Object {
				return d.Skip()
			}
			if s := descriptionFromObject(d); s != "" && found == "" {
				found = s
			}
			return nil
		})
		return found
	default:
		return ""
	}
}

func descriptionFromObject(d *jx.Decoder) string {
	var desc string
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		if key != "description" || d.Next() != jx.String {
			return d.Skip()
		}
		s, err := d.Str()
		if err != nil {
			return err
		}
		desc = s
		return nil
	})
	return desc
}
