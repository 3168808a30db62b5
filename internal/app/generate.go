package app

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/sitegen"
)

// RunGenerate renders the catalog file into the self-contained HTML
// page.
func RunGenerate(_ context.Context, lg *zap.Logger, cfg GenerateConfig) error {
	store, err := catalog.LoadFile(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}

	err = sitegen.GenerateFile(store, sitegen.Config{
		Title:     cfg.Title,
		Recipient: cfg.Recipient,
		PageSize:  cfg.PageSize,
	}, cfg.Output)
	if err != nil {
		return errors.Wrap(err, "generate page")
	}

	lg.Info("Page generated",
		zap.String("path", cfg.Output),
		zap.Int("products", store.Len()))
	return nil
}
