// Package sitegen renders the catalog into a single self-contained HTML
// page: markup, stylesheet, client script, and the catalog data are all
// inlined, so the artifact works from a file:// URL with no server.
package sitegen

import (
	"bytes"
	_ "embed"
	"html/template"
	"os"

	"github.com/go-faster/errors"

	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/inquiry"
	"github.com/caprest/clearance-catalog/internal/view"
)

//go:embed assets/page.html.tmpl
var pageTemplate string

//go:embed assets/style.css
var stylesheet string

//go:embed assets/app.js
var clientScript string

// Config controls the generated page.
type Config struct {
	// Title is the page and header title.
	Title string
	// Recipient receives the inquiry emails.
	Recipient string
	// PageSize is the number of cards per gallery page.
	PageSize int
}

type pageData struct {
	Title       string
	Recipient   string
	PageSize    int
	CatalogJSON template.JS
	Stylesheet  template.CSS
	Script      template.JS
}

// Generate renders the page for the given catalog.
func Generate(store *catalog.Store, cfg Config) ([]byte, error) {
	if cfg.Title == "" {
		cfg.Title = "Capital Restoration Catalog"
	}
	if cfg.Recipient == "" {
		cfg.Recipient = inquiry.DefaultRecipient
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = view.DefaultPageSize
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parse page template")
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, pageData{
		Title:       cfg.Title,
		Recipient:   cfg.Recipient,
		PageSize:    cfg.PageSize,
		CatalogJSON: template.JS(catalog.EncodeProducts(store.All())),
		Stylesheet:  template.CSS(stylesheet),
		Script:      template.JS(clientScript),
	})
	if err != nil {
		return nil, errors.Wrap(err, "execute page template")
	}
	return buf.Bytes(), nil
}

// GenerateFile renders the page and writes it to path.
func GenerateFile(store *catalog.Store, cfg Config, path string) error {
	page, err := Generate(store, cfg)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, page, 0o644), "write page file")
}
