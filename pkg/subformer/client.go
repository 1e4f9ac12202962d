package subformer

import (
	"net/http"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the default Subformer API base URL.
	DefaultBaseURL = "https://api.subformer.com/v1"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the Subformer API client.
type Client struct {
	// Dubbing provides video dubbing operations.
	Dubbing *DubbingService

	// Jobs provides job query, deletion and completion-wait operations.
	Jobs *JobsService

	// Voices provides voice cloning, synthesis and voice library operations.
	Voices *VoicesService

	// Billing provides usage and billing queries.
	Billing *BillingService

	// Users provides profile and rate limit queries.
	Users *UsersService

	config    *clientConfig
	http      *httpClient
	closeOnce sync.Once
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	// ownsTransport is true when the client created its own transport
	// and is responsible for releasing it in Close.
	ownsTransport bool
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The caller keeps ownership of
// the client's transport; Close becomes a no-op.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// NewClient creates a new Subformer API client.
//
// The apiKey is required and can be obtained from the Subformer dashboard.
//
// Example:
//
//	client := subformer.NewClient("sk_subformer_...")
//	defer client.Close()
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout:   cfg.timeout,
			Transport: &http.Transport{},
		}
		cfg.ownsTransport = true
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	c.Dubbing = newDubbingService(c)
	c.Jobs = newJobsService(c)
	c.Voices = newVoicesService(c)
	c.Billing = newBillingService(c)
	c.Users = newUsersService(c)

	return c
}

// Close releases the connection pool owned by the client. It is safe to
// call multiple times; only the first call has an effect. When the client
// was built with WithHTTPClient, Close does nothing.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.config.ownsTransport {
			c.config.httpClient.CloseIdleConnections()
		}
	})
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}
