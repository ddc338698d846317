package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gobwas/glob"
)

// TemplateFetcher retrieves README templates from raw HTTP(S) URLs, typically
// GitHub raw links. Hosts are checked against an allowlist of glob patterns;
// an empty allowlist permits any host.
type TemplateFetcher struct {
	client  *http.Client
	allowed []glob.Glob
}

// FetcherOption configures a TemplateFetcher.
type FetcherOption func(*TemplateFetcher)

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *TemplateFetcher) {
		f.client = client
	}
}

// NewTemplateFetcher compiles the allowed host patterns (e.g.
// "raw.githubusercontent.com", "*.example.com") and returns a fetcher.
func NewTemplateFetcher(allowedHosts []string, opts ...FetcherOption) (*TemplateFetcher, error) {
	fetcher := &TemplateFetcher{
		client: &http.Client{},
	}

	for _, pattern := range allowedHosts {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid host pattern %q: %w", pattern, err)
		}
		fetcher.allowed = append(fetcher.allowed, g)
	}

	for _, opt := range opts {
		opt(fetcher)
	}
	return fetcher, nil
}

// Fetch downloads the template at rawURL and returns its content. Non-2xx
// responses and disallowed hosts are errors.
func (f *TemplateFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid template URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	if !f.hostAllowed(parsed.Hostname()) {
		return "", fmt.Errorf("host %q is not in the fetch allowlist", parsed.Hostname())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch template, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read template body: %w", err)
	}
	return string(body), nil
}

func (f *TemplateFetcher) hostAllowed(host string) bool {
	if len(f.allowed) == 0 {
		return true
	}
	for _, g := range f.allowed {
		if g.Match(host) {
			return true
		}
	}
	return false
}
