package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/collections/clearance/products.json", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `{"products":[
				{"id":1,"title":"Oak Chair","handle":"oak-chair",
				 "variants":[{"price":"129.00"}],
				 "images":[{"src":"https://cdn.example.com/a.jpg"}]},
				{"id":2,"title":"Walnut Table","handle":"walnut-table",
				 "variants":[{"price":"250.00"}],"images":[]}
			]}`)
		case "2":
			fmt.Fprint(w, `{"products":[]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	mux.HandleFunc("/products/oak-chair", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head>
			<script type="application/ld+json">
			{"@type":"Product","description":"A fine chair. Buy at France and Son today. Solid oak."}
			</script>
			</head><body></body></html>`)
	})
	mux.HandleFunc("/products/walnut-table", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestScraperRun(t *testing.T) {
	ts := testServer(t)

	filter, err := NewDescriptionFilter("")
	require.NoError(t, err)

	s := New(Config{
		BaseURL:           ts.URL,
		Collection:        "clearance",
		Concurrency:       2,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
	}, filter, nil)

	records, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	chair := records[0]
	assert.Equal(t, "1", chair.ID)
	assert.Equal(t, "Oak Chair", chair.Name)
	assert.True(t, decimal.RequireFromString("129.00").Equal(chair.Price))
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, chair.ImageURLs)
	// The seller-name sentence is stripped on the way in.
	assert.Equal(t, "A fine chair. Solid oak.", chair.Description)

	table := records[1]
	assert.Equal(t, "Walnut Table", table.Name)
	// A 404 product page just means no description.
	assert.Equal(t, "", table.Description)
	assert.Empty(t, table.ImageURLs)
}

func TestScraperStopsOnNon200Listing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/collections/clearance/products.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	s := New(Config{BaseURL: ts.URL, Collection: "clearance", RequestsPerSecond: 1000}, nil, nil)

	records, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
