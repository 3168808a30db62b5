// Package app wires configuration, logging, and the domain packages into
// the three command-line tools.
package app

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/scrape"
)

// RunScrape scrapes the configured collection and writes the catalog
// file.
func RunScrape(ctx context.Context, lg *zap.Logger, cfg ScrapeConfig) error {
	lg.Info("Scraping storefront",
		zap.String("base_url", cfg.BaseURL),
		zap.String("collection", cfg.Collection))

	filter, err := scrape.NewDescriptionFilter(cfg.SellerPattern)
	if err != nil {
		return errors.Wrap(err, "description filter")
	}

	scraper := scrape.New(scrape.Config{
		BaseURL:           cfg.BaseURL,
		Collection:        cfg.Collection,
		Concurrency:       cfg.Concurrency,
		Timeout:           cfg.Timeout,
		RetryCount:        cfg.RetryCount,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, filter, lg)

	records, err := scraper.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "scrape collection")
	}

	store := catalog.New(records)
	if err := catalog.WriteFile(cfg.Output, store); err != nil {
		return errors.Wrap(err, "write catalog")
	}

	lg.Info("Catalog written",
		zap.String("path", cfg.Output),
		zap.Int("products", store.Len()))
	return nil
}
