package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

const catalogDoc = `[
  {"id": 1, "title": "Submariner", "brand": "Rolex", "category": "Luxury Watches",
   "original_price": 12000, "final_price": 9000, "discount_percentage": 25, "featured": true},
  {"id": 2, "title": "Classic Flap", "brand": "Chanel", "category": "Designer Handbags",
   "original_price": 9000, "final_price": 7200, "discount_percentage": 20}
]`

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogDoc))
	}))
	defer srv.Close()

	listings, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	first := listings[0]
	if first.ID != 1 || first.Brand != "Rolex" || first.OriginalPrice != 12000 || !first.Featured {
		t.Fatalf("unexpected listing: %+v", first)
	}
}

func TestHTTPSource_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	if !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("expected ErrCatalogLoad, got %v", err)
	}
}

func TestHTTPSource_MalformedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"this is": "not a listing array"`))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	if !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("expected ErrCatalogLoad, got %v", err)
	}
}

func TestHTTPSource_ConnectionRefused(t *testing.T) {
	// A server that is already closed guarantees a transport error.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	if !errors.Is(err, domain.ErrCatalogLoad) {
		t.Fatalf("expected ErrCatalogLoad, got %v", err)
	}
}
