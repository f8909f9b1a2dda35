package joke

import (
	"context"
	"io"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the public random-joke endpoint.
const DefaultEndpoint = "https://official-joke-api.appspot.com/jokes/random"

// maxErrorBody caps how much of a failed response is kept in an HTTPError.
const maxErrorBody = 200

// Fetcher retrieves one random joke.
type Fetcher interface {
	Fetch(ctx context.Context) (Joke, error)
}

// Client is a Fetcher backed by a resty HTTP client. It makes exactly one
// attempt per call; retries are left to the user.
type Client struct {
	http     *resty.Client
	endpoint string
	log      logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client for endpoint. An empty endpoint means
// DefaultEndpoint; a zero timeout means 10 seconds.
func NewClient(endpoint string, timeout time.Duration, userAgent string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = "jester"
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", userAgent),
		endpoint: endpoint,
		log:      discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch issues one GET to the endpoint and decodes the joke. Errors are
// always one of *NetworkError, *HTTPError or *ParseError.
func (c *Client) Fetch(ctx context.Context) (Joke, error) {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.endpoint)
	if err != nil {
		return Joke{}, &NetworkError{URL: c.endpoint, Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"status":   resp.StatusCode(),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("joke endpoint responded")

	if !resp.IsSuccess() {
		return Joke{}, &HTTPError{StatusCode: resp.StatusCode(), Body: truncateBody(resp.Body(), maxErrorBody)}
	}

	return Decode(resp.Body())
}

// truncateBody keeps at most n bytes of body, cut back to a rune boundary.
func truncateBody(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	for n > 0 && !utf8.RuneStart(body[n]) {
		n--
	}
	return string(body[:n])
}
