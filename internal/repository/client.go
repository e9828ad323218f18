package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vvka-141/metsgen/internal/logging"
	"github.com/vvka-141/metsgen/internal/retry"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

// Client performs GET requests against one repository.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials metsgen.Credentials
	executor    *retry.Executor
	logger      metsgen.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCredentials sets the basic-auth credentials used by Node and Members.
func WithCredentials(creds metsgen.Credentials) Option {
	return func(c *Client) {
		c.credentials = creds
	}
}

// WithRetries retries transient failures up to attempts times.
func WithRetries(attempts int) Option {
	return func(c *Client) {
		c.executor = retry.NewExecutor(
			retry.NewHTTPErrorClassifier(),
			retry.NewExponentialBackoff(attempts),
		)
	}
}

// WithExecutor sets the retry executor directly.
func WithExecutor(e *retry.Executor) Option {
	return func(c *Client) {
		c.executor = e
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l metsgen.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Client for the repository at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.executor == nil {
		c.executor = retry.NewExecutor(
			retry.NewHTTPErrorClassifier(),
			retry.NewExponentialBackoff(metsgen.DefaultRetryMaxAttempts),
		)
	}
	return c
}

// URL returns the JSON URL for a repository path such as "/node/3".
// Absolute URLs are kept as they are.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path + metsgen.JSONFormatQuery
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path + metsgen.JSONFormatQuery
}

// Get fetches the JSON document at path. Authenticated requests carry the
// client's basic-auth credentials.
func (c *Client) Get(ctx context.Context, path string, authenticated bool) ([]byte, error) {
	url := c.URL(path)
	var body []byte

	executor := c.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		c.logger.Warn("GET %s failed (%v), retry %d in %s", url, err, attempt+1, delay)
	})
	err := executor.Execute(ctx, func(ctx context.Context) error {
		var err error
		body, err = c.get(ctx, url, authenticated)
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string, authenticated bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	if authenticated && !c.credentials.IsZero() {
		req.SetBasicAuth(c.credentials.Username, c.credentials.Password)
	}

	c.logger.Verbose("GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", url, metsgen.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, metsgen.MaxErrorBodyPreview))
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(preview)),
			Wait:       parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", url, metsgen.ErrFetchFailed, err)
	}
	return body, nil
}

// Node fetches /node/{id} with credentials.
func (c *Client) Node(ctx context.Context, id string) ([]byte, error) {
	return c.Get(ctx, "/node/"+id, true)
}

// Members fetches /node/{id}/members with credentials.
func (c *Client) Members(ctx context.Context, id string) ([]byte, error) {
	return c.Get(ctx, "/node/"+id+"/members", true)
}

// Parent fetches a parent node document by its repository path, anonymously.
func (c *Client) Parent(ctx context.Context, path string) ([]byte, error) {
	return c.Get(ctx, path, false)
}
