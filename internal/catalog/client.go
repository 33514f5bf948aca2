// =============================================================================
// Sales Analytics System - Product Catalog Client
// =============================================================================
//
// This package talks to the remote product catalog (a DummyJSON-compatible
// endpoint) and builds the id -> product mapping used by the enrichment
// stage.
//
// FAILURE POLICY:
//   The catalog is best-effort. Any transport failure, timeout, non-2xx
//   status or undecodable body degrades to an empty product list - the
//   pipeline then runs with zero enrichment coverage instead of failing.
//   There are no retries.
//
// =============================================================================

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds the single catalog request.
const DefaultTimeout = 10 * time.Second

// Product is one raw catalog record as returned by the remote service.
// Every field is optional on the wire; entries without an id are skipped
// when the mapping is built.
type Product struct {
	ID       *int     `json:"id"`
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Brand    *string  `json:"brand"`
	Rating   *float64 `json:"rating"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// Client fetches products from the remote catalog.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a catalog client.
//
// PARAMETERS:
//   - baseURL: the catalog base URL, e.g. "https://dummyjson.com".
//   - limit: the page size requested from the service.
//   - timeout: the request timeout; <= 0 falls back to DefaultTimeout.
//   - logger: used to record (not surface) fetch failures.
func NewClient(baseURL string, limit int, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchAllProducts fetches the product list. On any failure it logs the
// cause and returns an empty slice; the caller cannot distinguish "catalog
// empty" from "catalog unreachable", and does not need to.
func (c *Client) FetchAllProducts() []Product {
	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Msg("catalog fetch failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("catalog fetch returned non-2xx status")
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn().Err(err).Str("url", url).Msg("catalog response decode failed")
		return nil
	}

	return payload.Products
}
