package app

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the configuration for all three tools, loadable from
// environment variables (CATALOG_ prefix), flags, or YAML config files.
type Config struct {
	Scrape   ScrapeConfig
	Generate GenerateConfig
	Browse   BrowseConfig
}

// ScrapeConfig controls the storefront scraper.
type ScrapeConfig struct {
	BaseURL           string        `default:"https://franceandson.com" usage:"Storefront root URL" flag:"base-url"`
	Collection        string        `default:"clearance" usage:"Collection handle to scrape"`
	Concurrency       int           `default:"10" usage:"Parallel description fetches"`
	Timeout           time.Duration `default:"20s" usage:"Per-request timeout"`
	RetryCount        int           `default:"2" usage:"Retries per failed request" flag:"retry-count"`
	RequestsPerSecond float64       `default:"5" usage:"Outbound request rate limit" flag:"rps"`
	SellerPattern     string        `default:"" usage:"Regexp for seller-name sentences to strip from descriptions" flag:"seller-pattern"`
	Output            string        `default:"catalog.json" usage:"Catalog output path (.gz compresses)"`
}

// GenerateConfig controls the static page generator.
type GenerateConfig struct {
	Input     string `default:"catalog.json" usage:"Catalog input path (.gz supported)"`
	Output    string `default:"catalog.html" usage:"HTML output path"`
	Title     string `default:"Capital Restoration Catalog" usage:"Page title"`
	Recipient string `default:"CapitalRestorationNewYork@gmail.com" usage:"Inquiry email recipient"`
	PageSize  int    `default:"20" usage:"Products per gallery page" flag:"page-size"`
}

// BrowseConfig controls the terminal browser.
type BrowseConfig struct {
	Input     string `default:"catalog.json" usage:"Catalog input path (.gz supported)"`
	CartPath  string `default:"" usage:"Cart snapshot file; in-memory only when empty" flag:"cart-path"`
	Recipient string `default:"CapitalRestorationNewYork@gmail.com" usage:"Inquiry email recipient"`
	PageSize  int    `default:"20" usage:"Products per gallery page" flag:"page-size"`
}

// LoadConfig loads configuration from environment variables, flags, and
// YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CATALOG",
		Files:     []string{"config.yaml", "/etc/clearance-catalog/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
