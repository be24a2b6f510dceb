package trendyol

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Product is one flattened color-variant entry as returned by the API.
type Product struct {
	GroupID     string
	ProductID   string
	Barcode     string
	Name        string
	Price       float64
	PriceText   string
	Currency    string
	Rating      float64
	ReviewCount int
	URL         string
	Image       string
	BigImage    string
	Labels      []string
	FetchedAt   time.Time
}

type variantItem struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Barcode  string      `json:"barcode"`
	MPN      string      `json:"mpn"`
	URL      string      `json:"url"`
	Image    string      `json:"image"`
	BigImage string      `json:"bigImage"`
	Labels   []string    `json:"labels"`
	Price    struct {
		Current     float64 `json:"current"`
		CurrentText string  `json:"currentText"`
		Currency    string  `json:"currency"`
	} `json:"price"`
	RatingScore struct {
		AverageRating float64 `json:"averageRating"`
		TotalCount    int     `json:"totalCount"`
	} `json:"ratingScore"`
}

// parseColorVariants flattens the color-variants payload, a JSON object
// keyed by product-group id where each value is a list of variant entries.
// Groups are emitted in payload order so merges stay deterministic. Values
// that are not lists are skipped. An empty result is not an error; a top
// level that is not an object is.
func parseColorVariants(body []byte, cfg Storefront, fetchedAt time.Time) ([]Product, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, &ParseError{Reason: "expected a JSON object keyed by product group", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &ParseError{Reason: "expected a JSON object keyed by product group"}
	}

	products := []Product{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Reason: "read product group key", Err: err}
		}
		groupID, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Reason: "read product group value", Err: err}
		}

		var items []variantItem
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		for _, item := range items {
			products = append(products, item.toProduct(groupID, cfg, fetchedAt))
		}
	}
	return products, nil
}

func (v variantItem) toProduct(groupID string, cfg Storefront, fetchedAt time.Time) Product {
	barcode := v.Barcode
	if barcode == "" {
		barcode = v.MPN
	}
	return Product{
		GroupID:     groupID,
		ProductID:   v.ID.String(),
		Barcode:     barcode,
		Name:        v.Name,
		Price:       v.Price.Current,
		PriceText:   v.Price.CurrentText,
		Currency:    v.Price.Currency,
		Rating:      v.RatingScore.AverageRating,
		ReviewCount: v.RatingScore.TotalCount,
		URL:         absoluteURL(cfg, v.URL),
		Image:       v.Image,
		BigImage:    v.BigImage,
		Labels:      v.Labels,
		FetchedAt:   fetchedAt,
	}
}

func absoluteURL(cfg Storefront, path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return cfg.BaseURL + path
}
