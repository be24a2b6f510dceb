package trendyol

import "strings"

// Storefront represents the configuration for a supported Trendyol storefront.
type Storefront struct {
	Code           string
	Country        string
	Currency       string
	BaseURL        string
	StorefrontID   string
	Language       string
	AcceptLanguage string
}

// storefrontConfigs is the curated set of Trendyol storefronts the viewer
// supports. The cookie values mirror what the web frontend sends so the
// public API answers with the same payload a browser would receive.
var storefrontConfigs = map[string]Storefront{
	"TR": {Code: "TR", Country: "Türkiye", Currency: "TRY", BaseURL: "https://www.trendyol.com", StorefrontID: "1", Language: "tr", AcceptLanguage: "tr-TR,tr;q=0.9,en-US;q=0.8,en;q=0.7"},
	"DE": {Code: "DE", Country: "Germany", Currency: "EUR", BaseURL: "https://www.trendyol.de", StorefrontID: "26", Language: "de", AcceptLanguage: "de-DE,de;q=0.9,en;q=0.8"},
	"AZ": {Code: "AZ", Country: "Azerbaijan", Currency: "AZN", BaseURL: "https://www.trendyol.az", StorefrontID: "33", Language: "az", AcceptLanguage: "az-AZ,az;q=0.9,tr;q=0.8,en;q=0.7"},
}

// Storefronts returns the list of supported storefront codes.
func Storefronts() []string {
	codes := make([]string, 0, len(storefrontConfigs))
	for code := range storefrontConfigs {
		codes = append(codes, code)
	}
	return codes
}

// ConfigFor returns the storefront configuration for the provided country
// code. Unknown codes fall back to the Turkish storefront.
func ConfigFor(country string) Storefront {
	normalized := strings.ToUpper(strings.TrimSpace(country))
	if cfg, ok := storefrontConfigs[normalized]; ok {
		return cfg
	}
	return storefrontConfigs["TR"]
}

// Cookies returns the static cookie set sent with every request against
// this storefront.
func (s Storefront) Cookies() map[string]string {
	return map[string]string{
		"platform":     "web",
		"storefrontId": s.StorefrontID,
		"countryCode":  s.Code,
		"language":     s.Language,
	}
}
