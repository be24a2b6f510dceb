package trendyol

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const variantsPayload = `{
	"12345": [
		{
			"id": 111,
			"name": "Shirt Red",
			"barcode": "8680000000011",
			"url": "/shirt-red-p-111",
			"image": "https://cdn.example/shirt-red.jpg",
			"labels": ["Bestseller"],
			"price": {"current": 199.99, "currentText": "199,99 TL", "currency": "TRY"},
			"ratingScore": {"averageRating": 4.4, "totalCount": 120}
		},
		{
			"id": 112,
			"name": "Shirt Blue",
			"mpn": "MPN-112",
			"url": "https://www.trendyol.com/shirt-blue-p-112",
			"price": {"current": 189.99, "currentText": "189,99 TL", "currency": "TRY"}
		}
	],
	"meta": {"not": "a list"}
}`

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(5*time.Second, ConfigFor("TR"))
}

func TestFetchVariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-Source"); got != "single-search-result" {
			t.Fatalf("unexpected x-request-source header %q", got)
		}
		if got := r.Header.Get("Origin"); got != "https://www.trendyol.com" {
			t.Fatalf("unexpected origin header %q", got)
		}
		cookie, err := r.Cookie("storefrontId")
		if err != nil || cookie.Value != "1" {
			t.Fatalf("expected storefrontId=1 cookie, got %v (%v)", cookie, err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(variantsPayload))
	}))
	defer srv.Close()

	service := newTestService(t)
	defer service.Close()

	products, err := service.FetchVariants(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchVariants error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	for _, p := range products {
		if p.GroupID != "12345" {
			t.Fatalf("unexpected group id %q", p.GroupID)
		}
	}
	if products[0].ProductID != "111" || products[1].ProductID != "112" {
		t.Fatalf("payload order not preserved: %s, %s", products[0].ProductID, products[1].ProductID)
	}

	red := products[0]
	if red.Name != "Shirt Red" || red.Barcode != "8680000000011" {
		t.Fatalf("unexpected product 111: %+v", red)
	}
	if red.URL != "https://www.trendyol.com/shirt-red-p-111" {
		t.Fatalf("expected relative url to be absolutized, got %q", red.URL)
	}
	if red.Price != 199.99 || red.Currency != "TRY" || red.Rating != 4.4 || red.ReviewCount != 120 {
		t.Fatalf("unexpected price/rating fields: %+v", red)
	}

	blue := products[1]
	if blue.Barcode != "MPN-112" {
		t.Fatalf("expected mpn fallback for barcode, got %q", blue.Barcode)
	}
	if blue.URL != "https://www.trendyol.com/shirt-blue-p-112" {
		t.Fatalf("absolute url should be kept as is, got %q", blue.URL)
	}
}

func TestFetchVariantsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	service := newTestService(t)
	defer service.Close()

	_, err := service.FetchVariants(context.Background(), srv.URL)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", httpErr.StatusCode)
	}
}

func TestFetchVariantsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["not", "an", "object"]`))
	}))
	defer srv.Close()

	service := newTestService(t)
	defer service.Close()

	_, err := service.FetchVariants(context.Background(), srv.URL)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestFetchVariantsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	service := newTestService(t)
	defer service.Close()

	_, err := service.FetchVariants(context.Background(), srv.URL)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
}

func TestFetchVariantsEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	service := newTestService(t)
	defer service.Close()

	products, err := service.FetchVariants(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("empty payload should not error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
}

func TestFetchVariantsAfterClose(t *testing.T) {
	service := newTestService(t)
	service.Close()
	service.Close() // idempotent

	_, err := service.FetchVariants(context.Background(), "http://127.0.0.1:0")
	if !errors.Is(err, ErrServiceClosed) {
		t.Fatalf("expected ErrServiceClosed, got %v", err)
	}
}
