// Package catalog fetches the listing collection from its fixed origin
// document.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/luxurydeals/catalog-console/internal/api/metrics"
	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

const defaultFetchTimeout = 15 * time.Second

// HTTPSource reads the catalog document from a well-known URL, once per
// process. Every failure mode — transport, status, malformed JSON — is
// reported as domain.ErrCatalogLoad so callers can render an empty state.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: defaultFetchTimeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.fetch(ctx)
	if err != nil {
		metrics.CatalogLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.CatalogLoadsTotal.WithLabelValues("ok").Inc()
	return listings, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]domain.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrCatalogLoad, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", domain.ErrCatalogLoad, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch %s: status %d", domain.ErrCatalogLoad, s.url, resp.StatusCode)
	}

	var listings []domain.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("%w: decode document: %v", domain.ErrCatalogLoad, err)
	}
	return listings, nil
}
