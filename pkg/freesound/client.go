package freesound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Searcher defines the read operations of the Freesound API.
// This interface is implemented by *Client and can be used for testing.
type Searcher interface {
	Search(ctx context.Context, query *SearchQuery) (SearchResponse, error)
	FetchPage(ctx context.Context, link string) (SearchResponse, error)
	GetSound(ctx context.Context, id int64, query SoundQuery) (Sound, error)
	ValidateKey(ctx context.Context) error
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// DefaultBaseURL is the public Freesound API v2 root.
const DefaultBaseURL = "https://freesound.org/apiv2"

const (
	defaultUserAgent = "freesound-go/0.1"
	requestTimeout   = 30 * time.Second

	searchPath = "search/text/"
	// probeSoundID is a long-lived public sound used to check credentials.
	probeSoundID = 794253

	tokenParam = "token"
)

// Client talks to the Freesound HTTP API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

type options struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// Option customises a Client.
type Option func(*options)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(raw string) Option {
	return func(o *options) { o.baseURL = raw }
}

// WithHTTPClient sets the underlying HTTP client, e.g. to install a logging
// transport or a different timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.http = client }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// NewClient builds a Client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("api key is empty")
	}
	o := options{userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}
	base, err := parseBaseURL(o.baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := o.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	ua := strings.TrimSpace(o.userAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:   base,
		apiKey:    key,
		http:      httpClient,
		userAgent: ua,
	}, nil
}

// APIKey returns the credential the client authenticates with.
func (c *Client) APIKey() string {
	return c.apiKey
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search runs a text search.
func (c *Client) Search(ctx context.Context, query *SearchQuery) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	return c.searchURL(ctx, c.endpoint(searchPath, query.Params()))
}

// FetchPage retrieves the page behind a next or previous link from an
// earlier SearchResponse. The link must point at the client's API host.
func (c *Client) FetchPage(ctx context.Context, link string) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return SearchResponse{}, fmt.Errorf("parse page link: %w", err)
	}
	if !u.IsAbs() || u.Scheme != c.baseURL.Scheme || u.Host != c.baseURL.Host {
		return SearchResponse{}, fmt.Errorf("page link %q is not on %s", link, c.baseURL.Host)
	}
	values := u.Query()
	values.Set(tokenParam, c.apiKey)
	u.RawQuery = values.Encode()
	u.Fragment = ""
	return c.searchURL(ctx, u)
}

// GetSound retrieves a single sound by id.
func (c *Client) GetSound(ctx context.Context, id int64, query SoundQuery) (Sound, error) {
	if c == nil {
		return Sound{}, fmt.Errorf("client is nil")
	}
	status, body, err := c.fetch(ctx, c.endpoint(soundPath(id), query.Params()))
	if err != nil {
		return Sound{}, err
	}
	sound, err := DecodeSound(body)
	if err != nil {
		return Sound{}, decodeError(status, body, err)
	}
	return sound, nil
}

// ValidateKey probes the API with a known sound. It returns nil when the
// key is accepted, *AuthError when the server answers 401, *APIError for
// any other failure status or an unexpected body, and *RequestError when
// the request could not complete.
func (c *Client) ValidateKey(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	status, body, err := c.get(ctx, c.endpoint(soundPath(probeSoundID), nil))
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		msg := errorMessage(body)
		if msg == "" {
			msg = "invalid API key"
		}
		return &AuthError{StatusCode: status, Message: msg}
	}
	if !isSuccess(status) {
		return statusError(status, body)
	}
	if err := requireObject(body); err != nil {
		return decodeError(status, body, err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return decodeError(status, body, err)
	}
	if id, ok := payload["id"]; !ok || isJSONNull(id) {
		return &APIError{StatusCode: status, Message: "response missing sound id", Body: string(body)}
	}
	return nil
}

func (c *Client) searchURL(ctx context.Context, reqURL *url.URL) (SearchResponse, error) {
	status, body, err := c.fetch(ctx, reqURL)
	if err != nil {
		return SearchResponse{}, err
	}
	resp, err := DecodeSearchResponse(body)
	if err != nil {
		return SearchResponse{}, decodeError(status, body, err)
	}
	return resp, nil
}

// fetch performs a GET and converts failure statuses into *APIError.
func (c *Client) fetch(ctx context.Context, reqURL *url.URL) (int, []byte, error) {
	status, body, err := c.get(ctx, reqURL)
	if err != nil {
		return 0, nil, err
	}
	if !isSuccess(status) {
		return status, nil, statusError(status, body)
	}
	return status, body, nil
}

func (c *Client) get(ctx context.Context, reqURL *url.URL) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, nil, &RequestError{Op: "create request", Err: redact(err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &RequestError{Op: "execute request", Err: redact(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &RequestError{Op: "read response", Err: redact(err)}
	}
	return resp.StatusCode, body, nil
}

// endpoint resolves path under the base URL. The token always comes first,
// followed by params in their given order.
func (c *Client) endpoint(path string, params []Param) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	u.RawPath = ""
	pairs := make([]Param, 0, len(params)+1)
	pairs = append(pairs, Param{Key: tokenParam, Value: c.apiKey})
	pairs = append(pairs, params...)
	u.RawQuery = encodeParams(pairs)
	return &u
}

// encodeParams keeps the given order, which url.Values.Encode would sort.
func encodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func soundPath(id int64) string {
	return "sounds/" + strconv.FormatInt(id, 10) + "/"
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func statusError(status int, body []byte) *APIError {
	msg := errorMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "request failed"
	}
	return &APIError{StatusCode: status, Message: msg, Body: string(body)}
}

func decodeError(status int, body []byte, err error) *APIError {
	return &APIError{StatusCode: status, Message: "decode response", Body: string(body), Err: err}
}

// redact strips the token from URLs embedded in net/http errors.
func redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		values := u.Query()
		if values.Has(tokenParam) {
			values.Set(tokenParam, "REDACTED")
			u.RawQuery = values.Encode()
			urlErr.URL = u.String()
		}
	}
	return err
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
