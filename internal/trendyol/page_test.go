package trendyol

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const productPage = `<!DOCTYPE html>
<html>
<head><title>Shirt - Trendyol</title></head>
<body>
<script>window.__SEARCH_APP_INITIAL_STATE__ = {"unrelated": true};</script>
<script>
window.__PRODUCT_DETAIL_APP_INITIAL_STATE__ = {
	"product": {
		"productGroupId": 98765,
		"colors": [
			{"id": 201, "name": "Dress Green", "barcode": "8680000000201", "url": "/dress-green-p-201",
			 "price": {"current": 349.5, "currentText": "349,50 TL", "currency": "TRY"}},
			{"id": 202, "name": "Dress Black", "barcode": "8680000000202", "url": "/dress-black-p-202",
			 "price": {"current": 349.5, "currentText": "349,50 TL", "currency": "TRY"}}
		]
	}
};
</script>
</body>
</html>`

func TestFetchVariantsProductPageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(productPage))
	}))
	defer srv.Close()

	service := NewService(5*time.Second, ConfigFor("TR"))
	defer service.Close()

	products, err := service.FetchVariants(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchVariants error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 color variants, got %d", len(products))
	}
	for _, p := range products {
		if p.GroupID != "98765" {
			t.Fatalf("unexpected group id %q", p.GroupID)
		}
	}
	if products[0].Name != "Dress Green" || products[1].Name != "Dress Black" {
		t.Fatalf("unexpected order or names: %+v", products)
	}
	if products[0].URL != "https://www.trendyol.com/dress-green-p-201" {
		t.Fatalf("unexpected url %q", products[0].URL)
	}
}

func TestParseProductPageNoState(t *testing.T) {
	page := []byte(`<html><body><script>var x = 1;</script></body></html>`)
	_, err := parseProductPage(page, ConfigFor("TR"), time.Now())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestExtractAssignedJSON(t *testing.T) {
	script := `window.__PRODUCT_DETAIL_APP_INITIAL_STATE__ = {"product": {"colors": []}};`
	got := extractAssignedJSON(script)
	if got != `{"product": {"colors": []}}` {
		t.Fatalf("unexpected extraction: %q", got)
	}

	if got := extractAssignedJSON(`window.__PRODUCT_DETAIL_APP_INITIAL_STATE__;`); got != "" {
		t.Fatalf("expected empty result for non-assignment, got %q", got)
	}
}
