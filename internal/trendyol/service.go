package trendyol

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Service encapsulates HTTP access to the Trendyol color-variants API.
type Service struct {
	client     *http.Client
	storefront Storefront
	closed     chan struct{}
	closeOnce  sync.Once
	userAgents []string
}

// NewService creates a service for the given storefront with a bounded
// request timeout and a pool of realistic user agents.
func NewService(timeout time.Duration, storefront Storefront) *Service {
	if timeout <= 0 {
		timeout = 40 * time.Second
	}
	return &Service{
		client:     &http.Client{Timeout: timeout},
		storefront: storefront,
		closed:     make(chan struct{}),
		userAgents: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
			"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/141.0.0.0 Safari/537.36",
		},
	}
}

// Storefront returns the storefront this service targets.
func (s *Service) Storefront() Storefront { return s.storefront }

// Close unblocks any pending fetch and marks the service unusable.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}

// FetchVariants performs one GET against the supplied endpoint and returns
// the flattened variant list. The endpoint is expected to answer with the
// color-variants JSON payload; an HTML product page is accepted as well, in
// which case the variants are read from the embedded page state. There are
// no retries: a failed call surfaces immediately.
func (s *Service) FetchVariants(ctx context.Context, endpoint string) ([]Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.closed:
		return nil, ErrServiceClosed
	default:
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{URL: endpoint, Err: err}
	}
	s.decorateRequest(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: endpoint, Err: err}
	}

	fetchedAt := time.Now()
	if looksLikeHTML(resp.Header.Get("Content-Type"), body) {
		return parseProductPage(body, s.storefront, fetchedAt)
	}
	return parseColorVariants(body, s.storefront, fetchedAt)
}

// decorateRequest applies the browser-like header and cookie set the web
// frontend sends. Without these the API answers 400 or 403.
func (s *Service) decorateRequest(req *http.Request) {
	cfg := s.storefront

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", cfg.AcceptLanguage)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", cfg.BaseURL)
	req.Header.Set("Priority", "u=1, i")
	req.Header.Set("Referer", cfg.BaseURL+"/")
	req.Header.Set("Sec-Ch-Ua", `"Chromium";v="142", "Google Chrome";v="142", "Not_A Brand";v="99"`)
	req.Header.Set("Sec-Ch-Ua-Mobile", "?0")
	req.Header.Set("Sec-Ch-Ua-Platform", `"Windows"`)
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-site")
	req.Header.Set("User-Agent", s.userAgents[int(time.Now().UnixNano())%len(s.userAgents)])
	req.Header.Set("X-Request-Source", "single-search-result")

	for name, value := range cfg.Cookies() {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func looksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	trimmed := strings.TrimSpace(string(body[:min(len(body), 64)]))
	return strings.HasPrefix(trimmed, "<!") || strings.HasPrefix(trimmed, "<html")
}
