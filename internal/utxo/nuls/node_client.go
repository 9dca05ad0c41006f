package nuls

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// RPCMetrics records metrics for node API calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// maxResponseSize bounds a single node API response.
const maxResponseSize = 64 << 20

// ErrResponseTooLarge reports a node API response over the size limit.
var ErrResponseTooLarge = errors.New("node response too large")

// NodeClient talks to the REST API of a NULS 1.x node.
type NodeClient struct {
	baseURL *url.URL
	client  *http.Client
	metrics RPCMetrics
	maxBody int
}

type nodeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Value jsoniter.RawMessage `json:"value"`
		Code  string              `json:"code"`
		Msg   string              `json:"msg"`
	} `json:"data"`
}

// NewNodeClient builds a client for the API rooted at baseURL, e.g. http://127.0.0.1:8001/api/.
func NewNodeClient(baseURL string, client *http.Client, metrics RPCMetrics) (*NodeClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("node url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("node url missing host")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if metrics == nil {
		return nil, errors.New("node client metrics is required")
	}
	return &NodeClient{baseURL: parsed, client: client, metrics: metrics, maxBody: maxResponseSize}, nil
}

// LatestHeight returns the height of the node's newest block.
func (c *NodeClient) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("newest_height", err, started)
	}()

	value, err := c.get(ctx, "block/newest/height", nil)
	if err != nil {
		return 0, err
	}
	if err = json.Unmarshal(value, &height); err != nil {
		return 0, fmt.Errorf("decode newest height: %w", err)
	}
	return height, nil
}

// BlockBytes returns the raw serialized block at height.
func (c *NodeClient) BlockBytes(ctx context.Context, height uint64) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_bytes", err, started)
	}()

	value, err := c.get(ctx, "block/bytes", url.Values{"height": {strconv.FormatUint(height, 10)}})
	if err != nil {
		return nil, err
	}
	var encoded string
	if err = json.Unmarshal(value, &encoded); err != nil {
		return nil, fmt.Errorf("decode block bytes at height %d: %w", height, err)
	}
	raw, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64 block at height %d: %w", height, err)
	}
	return raw, nil
}

func (c *NodeClient) get(ctx context.Context, path string, query url.Values) (jsoniter.RawMessage, error) {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path})
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.maxBody)+1))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	if len(body) > c.maxBody {
		return nil, fmt.Errorf("request %s: %w: exceeds %d bytes", path, ErrResponseTooLarge, c.maxBody)
	}

	var parsed nodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("node rejected %s: %s %s", path, parsed.Data.Code, parsed.Data.Msg)
	}
	return parsed.Data.Value, nil
}
