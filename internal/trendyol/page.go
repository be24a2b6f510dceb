package trendyol

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// stateMarker is the global the Trendyol product page assigns its detail
// state to. The color variants live inside that JSON blob.
const stateMarker = "__PRODUCT_DETAIL_APP_INITIAL_STATE__"

type pageState struct {
	Product struct {
		ProductGroupID json.Number   `json:"productGroupId"`
		Colors         []variantItem `json:"colors"`
	} `json:"product"`
}

// parseProductPage extracts color variants from an HTML product page by
// locating the embedded detail-state script. This lets users paste a plain
// product URL instead of the API endpoint.
func parseProductPage(body []byte, cfg Storefront, fetchedAt time.Time) ([]Product, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Reason: "read product page", Err: err}
	}

	var stateJSON string
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := sel.Text()
		if !strings.Contains(text, stateMarker) {
			return true
		}
		stateJSON = extractAssignedJSON(text)
		return stateJSON == ""
	})

	if stateJSON == "" {
		return nil, &ParseError{Reason: "product page carries no detail state"}
	}

	var state pageState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, &ParseError{Reason: "decode detail state", Err: err}
	}

	groupID := state.Product.ProductGroupID.String()
	products := make([]Product, 0, len(state.Product.Colors))
	for _, item := range state.Product.Colors {
		products = append(products, item.toProduct(groupID, cfg, fetchedAt))
	}
	return products, nil
}

// extractAssignedJSON returns the JSON object assigned in a
// "window.NAME = {...};" script, or "" when the script holds no assignment.
func extractAssignedJSON(script string) string {
	idx := strings.Index(script, stateMarker)
	if idx < 0 {
		return ""
	}
	rest := script[idx+len(stateMarker):]
	eq := strings.Index(rest, "=")
	if eq < 0 {
		return ""
	}
	rest = strings.TrimSpace(rest[eq+1:])
	if !strings.HasPrefix(rest, "{") {
		return ""
	}
	end := strings.LastIndex(rest, "}")
	if end < 0 {
		return ""
	}
	return rest[:end+1]
}
