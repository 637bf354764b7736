/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma fetches variables, styles and nodes from the Figma REST API
// and turns them into transform records.
package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/tokman/internal/logger"
	"bennypowers.dev/tokman/internal/version"
	"bennypowers.dev/tokman/transform"
)

const (
	// DefaultBaseURL is the Figma REST API root.
	DefaultBaseURL = "https://api.figma.com"

	// DefaultTimeout is the maximum time to wait for one request.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed response size (50 MB).
	DefaultMaxSize int64 = 50 * 1024 * 1024

	// DefaultBatchSize is the number of node ids requested at once.
	DefaultBatchSize = 50

	// DefaultCacheSize is the number of nodes kept between requests.
	DefaultCacheSize = 1024

	// TokenHeader carries the personal access token.
	TokenHeader = "X-Figma-Token"
)

// Client is a Figma REST API client.
type Client struct {
	baseURL   string
	token     string
	maxSize   int64
	batchSize int
	client    *http.Client
	nodes     *lru.Cache[string, *transform.Node]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithMaxSize sets the maximum response size in bytes.
func WithMaxSize(n int64) Option {
	return func(c *Client) { c.maxSize = n }
}

// WithBatchSize sets how many node ids are requested at once.
func WithBatchSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// NewClient creates a client authenticated with a personal access token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	cache, err := lru.New[string, *transform.Node](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating node cache: %w", err)
	}
	c := &Client{
		baseURL:   DefaultBaseURL,
		token:     token,
		maxSize:   DefaultMaxSize,
		batchSize: DefaultBatchSize,
		client:    &http.Client{Timeout: DefaultTimeout},
		nodes:     cache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Variables fetches the file's local variables and collections.
func (c *Client) Variables(ctx context.Context, fileKey string) (*VariablesResponse, error) {
	var resp VariablesResponse
	if err := c.get(ctx, fileKey, "variables/local", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Styles fetches the file's published styles.
func (c *Client) Styles(ctx context.Context, fileKey string) (*StylesResponse, error) {
	var resp StylesResponse
	if err := c.get(ctx, fileKey, "styles", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Nodes fetches document nodes by id, in batches, reusing cached nodes.
// Ids the API reports as missing map to nil.
func (c *Client) Nodes(ctx context.Context, fileKey string, ids []string) (map[string]*transform.Node, error) {
	result := make(map[string]*transform.Node, len(ids))
	var missing []string
	for _, id := range ids {
		if _, seen := result[id]; seen || slices.Contains(missing, id) {
			continue
		}
		if node, ok := c.nodes.Get(cacheKey(fileKey, id)); ok {
			result[id] = node
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) > 0 {
		logger.Debug("figma: %d cached nodes, fetching %d", len(result), len(missing))
	}

	for batch := range slices.Chunk(missing, c.batchSize) {
		var resp NodesResponse
		query := url.Values{"ids": {strings.Join(batch, ",")}}
		if err := c.get(ctx, fileKey, "nodes", query, &resp); err != nil {
			return nil, err
		}
		for _, id := range batch {
			entry := resp.Nodes[id]
			if entry == nil {
				result[id] = nil
				continue
			}
			node := &entry.Document
			c.nodes.Add(cacheKey(fileKey, id), node)
			result[id] = node
		}
	}
	return result, nil
}

func cacheKey(fileKey, id string) string {
	return fileKey + "/" + id
}

// get requests {base}/v1/files/{fileKey}/{endpoint} and decodes the body into v.
func (c *Client) get(ctx context.Context, fileKey, endpoint string, query url.Values, v any) error {
	if fileKey == "" {
		return ErrMissingFileKey
	}
	u := fmt.Sprintf("%s/v1/files/%s/%s", c.baseURL, url.PathEscape(fileKey), endpoint)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", u, err)
	}
	req.Header.Set(TokenHeader, c.token)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")

	logger.Debug("figma: GET %s", u)
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("timeout fetching %s: %w", u, err)
		}
		return fmt.Errorf("fetching %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	content, err := io.ReadAll(io.LimitReader(resp.Body, c.maxSize+1))
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", u, err)
	}
	if int64(len(content)) > c.maxSize {
		return fmt.Errorf("response from %s exceeds maximum size of %d bytes", u, c.maxSize)
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(u, resp.StatusCode, content)
	}

	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("%w from %s: %w", ErrInvalidResponse, u, err)
	}
	return nil
}
