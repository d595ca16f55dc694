// Package network provides the HTTP fetcher shared by every scraping provider.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/util"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every request issued by a Client.
const DefaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response is read into memory.
const maxBodySize = 16 << 20

// Options configures a Client.
type Options struct {
	// Referer is sent with every request, usually the site origin.
	Referer string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// RatePerSecond limits outbound requests. Zero or less disables the limiter.
	RatePerSecond float64
	// TLSFingerprint routes requests through a Chrome-like TLS handshake.
	TLSFingerprint bool
}

// Client performs GET requests with a fixed header set. It never retries.
type Client struct {
	http    *http.Client
	header  http.Header
	limiter *rate.Limiter
}

// New builds a Client from explicit options.
func New(options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = newTransport()
	if options.TLSFingerprint {
		transport = newFingerprintTransport(timeout)
	}

	limit := rate.Inf
	if options.RatePerSecond > 0 {
		limit = rate.Limit(options.RatePerSecond)
	}

	header := make(http.Header)
	header.Set("User-Agent", constant.UserAgent)
	if options.Referer != "" {
		header.Set("Referer", options.Referer)
	}

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		header:  header,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// FromConfig builds a Client from the global configuration.
func FromConfig() *Client {
	return New(Options{
		Referer:        viper.GetString(key.SiteBaseURL),
		Timeout:        time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		RatePerSecond:  viper.GetFloat64(key.NetworkRatePerSecond),
		TLSFingerprint: viper.GetBool(key.NetworkTLSFingerprint),
	})
}

// Get fetches url and returns the raw body.
// Network errors, timeouts and non-2xx statuses are reported as source.ErrTransport.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("get %s: %w: %v", url, source.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %v", url, source.ErrTransport, err)
	}
	req.Header = c.header.Clone()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %v", url, source.ErrTransport, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: %w: status %s", url, source.ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", url, source.ErrTransport, err)
	}

	return body, nil
}

// newTransport initializes a tuned http.Transport for a handful of sequential requests to one host.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = DefaultTimeout
	return t
}
