// Package remote is the client of the e-commerce REST API. The remote API
// is the single source of truth; this package only forwards calls, caches
// tagged reads and turns failures into APIError.
package remote

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/cache"
	"github.com/imrishuroy/go-ecom-admin/internal/metrics"
)

// APIError is a failed remote call. Status is 0 when the request never got
// a response.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// Request describes one remote call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// JSON is marshalled as the body when set.
	JSON interface{}
	// Form is sent as multipart/form-data when set.
	Form *Multipart
	// Tags are the invalidation tags of a read. A GET with tags is cached
	// unless NoStore is set.
	Tags    []string
	NoStore bool
	// Fail is the message used when the response carries none.
	Fail string
}

// Client calls the remote API.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.TagCache
}

// New returns a Client. A nil cache disables read caching.
func New(baseURL string, timeout time.Duration, c *cache.TagCache) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   c,
	}
}

// Invalidate marks every cached read carrying tag as stale.
func (c *Client) Invalidate(tag string) {
	if c.cache == nil {
		return
	}
	if n := c.cache.Invalidate(tag); n > 0 {
		zap.S().Debugw("cache invalidated", "tag", tag, "entries", n)
	}
}

// Do performs req and returns the raw JSON response body. Every failure is
// an *APIError.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	target := req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	cacheable := c.cache != nil && req.Method == http.MethodGet && len(req.Tags) > 0 && !req.NoStore
	var epoch uint64
	key := cacheKey(TokenFrom(ctx), target)
	if cacheable {
		if body, ok := c.cache.Get(key); ok {
			return body, nil
		}
		epoch = c.cache.Epoch()
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, &APIError{Message: req.Fail, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+target, body)
	if err != nil {
		return nil, &APIError{Message: req.Fail, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := TokenFrom(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := RequestIDFrom(ctx); rid != "" {
		httpReq.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.ObserveRemote(req.Method, 0, time.Since(start))
		return nil, &APIError{Message: req.Fail, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	metrics.ObserveRemote(req.Method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: req.Fail, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: messageOr(raw, req.Fail)}
	}
	if !json.Valid(raw) {
		return nil, &APIError{Status: resp.StatusCode, Message: req.Fail, Err: fmt.Errorf("%s %s: response is not JSON", req.Method, req.Path)}
	}

	if cacheable {
		c.cache.Set(key, req.Tags, raw, epoch)
	}
	return raw, nil
}

// pathID escapes one path segment. Dot segments are escaped too, since
// PathEscape leaves them alone and servers resolve them.
func pathID(id string) string {
	if id == "." || id == ".." {
		return strings.ReplaceAll(id, ".", "%2E")
	}
	return url.PathEscape(id)
}

// cacheKey scopes a cached read to the session token that made it.
func cacheKey(token, target string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8]) + " " + target
}

// messageOr returns the envelope's message, or fallback when the body is
// not JSON or has no message.
func messageOr(body []byte, fallback string) string {
	if !gjson.ValidBytes(body) {
		return fallback
	}
	if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String && msg.String() != "" {
		return msg.String()
	}
	return fallback
}

func encodeBody(req Request) (io.Reader, string, error) {
	switch {
	case req.Form != nil:
		return req.Form.encode()
	case req.JSON != nil:
		b, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("marshal body: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	default:
		return nil, "", nil
	}
}

// Field returns the value at path in body, e.g. "categories". Missing
// paths yield nil.
func Field(body json.RawMessage, path string) json.RawMessage {
	r := gjson.GetBytes(body, path)
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	return json.RawMessage(r.Raw)
}

// DecodeField unmarshals the value at path into out. A missing path leaves
// out untouched.
func DecodeField(body json.RawMessage, path string, out interface{}) error {
	raw := Field(body, path)
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
