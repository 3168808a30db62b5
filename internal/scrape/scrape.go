// Package scrape fetches a storefront's clearance collection and
// normalizes the listing into catalog product records. It pages through
// the collection's products.json feed, then visits each product page for
// a sanitized description.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/caprest/clearance-catalog/internal/domain/product"
)

// Config controls the scraper's target and politeness settings.
type Config struct {
	// BaseURL is the storefront root, e.g. https://franceandson.com.
	BaseURL string
	// Collection is the collection handle to scrape, e.g. "clearance".
	Collection string
	// Concurrency bounds the parallel description fetches per listing page.
	Concurrency int
	// Timeout applies per request.
	Timeout time.Duration
	// RetryCount is how many times a failed request is retried.
	RetryCount int
	// RequestsPerSecond throttles all outbound requests combined.
	RequestsPerSecond float64
}

// Scraper pulls one collection from one storefront.
type Scraper struct {
	client  *resty.Client
	limiter *rate.Limiter
	filter  *DescriptionFilter
	cfg     Config
	lg      *zap.Logger
}

// New creates a Scraper. The description filter may be nil, in which
// case descriptions pass through unfiltered.
func New(cfg Config, filter *DescriptionFilter, lg *zap.Logger) *Scraper {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if lg == nil {
		lg = zap.NewNop()
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount)

	return &Scraper{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		filter:  filter,
		cfg:     cfg,
		lg:      lg,
	}
}

// Run scrapes the whole collection: listing pages until the feed runs
// dry, descriptions in parallel per page. It returns the normalized
// records in listing order.
func (s *Scraper) Run(ctx context.Context) ([]product.Product, error) {
	var all []product.Product

	for page := 1; ; page++ {
		entries, err := s.fetchListingPage(ctx, page)
		if err != nil {
			return nil, errors.Wrapf(err, "listing page %d", page)
		}
		if len(entries) == 0 {
			break
		}

		s.lg.Info("Listing page scraped",
			zap.Int("page", page),
			zap.Int("products", len(entries)))

		descriptions := make([]string, len(entries))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.Concurrency)
		for i, entry := range entries {
			i, entry := i, entry
			g.Go(func() error {
				desc, err := s.fetchDescription(gctx, entry.handle)
				if err != nil {
					// A product without a description is still a
					// valid record.
					s.lg.Debug("Description fetch failed",
						zap.String("handle", entry.handle),
						zap.Error(err))
					return nil
				}
				descriptions[i] = desc
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, errors.Wrap(err, "fetch descriptions")
		}

		for i, entry := range entries {
			p := product.Product{
				ID:          entry.id,
				Name:        entry.title,
				Price:       entry.price,
				ImageURLs:   entry.images,
				Description: descriptions[i],
			}
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			all = append(all, p.Normalize())
		}
	}

	s.lg.Info("Scrape finished", zap.Int("products", len(all)))
	return all, nil
}

func (s *Scraper) fetchListingPage(ctx context.Context, page int) ([]listingEntry, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/collections/%s/products.json?page=%d",
		s.cfg.BaseURL, s.cfg.Collection, page)
	res, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "get listing")
	}
	// The feed answers non-200 past its last page; treat it as the end
	// rather than a failure.
	if res.StatusCode() != 200 {
		return nil, nil
	}

	entries, err := decodeListing(res.Body())
	if err != nil {
		return nil, errors.Wrap(err, "decode listing")
	}
	return entries, nil
}
