// Package ipfs resolves content references carried in transaction remarks.
package ipfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/ratelimit"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidContent reports content that is not a JSON document.
var ErrInvalidContent = errors.New("ipfs content is not json")

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const (
	// maxContentSize bounds a single fetched document.
	maxContentSize = 4 << 20

	defaultCacheTTL  = 10 * time.Minute
	defaultCacheSize = 10_000
	defaultRPS       = 20
	defaultTimeout   = 10 * time.Second
)

// Config configures the IPFS HTTP API client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RPS       int
	CacheTTL  time.Duration
	CacheSize uint64
}

// Client fetches JSON documents through the IPFS HTTP API.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	timeout time.Duration
	limiter ratelimit.Limiter
	cache   *ttlcache.Cache[string, []byte]
	metrics Metrics
}

func NewClient(cfg Config, client *http.Client, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ipfs url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("ipfs url scheme %q not supported", parsed.Scheme)
	}
	if metrics == nil {
		return nil, errors.New("ipfs metrics is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = defaultCacheSize
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/v0/cat"

	cache := ttlcache.New[string, []byte](
		ttlcache.WithTTL[string, []byte](cfg.CacheTTL),
		ttlcache.WithCapacity[string, []byte](cfg.CacheSize),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go cache.Start()

	return &Client{
		baseURL: parsed,
		client:  client,
		timeout: cfg.Timeout,
		limiter: ratelimit.New(cfg.RPS),
		cache:   cache,
		metrics: metrics,
	}, nil
}

// Close stops the cache cleanup loop.
func (c *Client) Close() {
	c.cache.Stop()
}

// Fetch returns the JSON document addressed by ref.
func (c *Client) Fetch(ctx context.Context, ref string) (doc []byte, err error) {
	if item := c.cache.Get(ref); item != nil {
		return item.Value(), nil
	}

	started := time.Now()
	defer func() {
		c.metrics.Observe("cat", err, started)
	}()

	c.limiter.Take()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := *c.baseURL
	endpoint.RawQuery = url.Values{"arg": {ref}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build cat request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cat %s: %w", ref, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cat %s: unexpected status %d", ref, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	if len(body) > maxContentSize {
		return nil, fmt.Errorf("cat %s: content exceeds %d bytes", ref, maxContentSize)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("cat %s: %w", ref, ErrInvalidContent)
	}

	c.cache.Set(ref, body, ttlcache.DefaultTTL)
	return body, nil
}
