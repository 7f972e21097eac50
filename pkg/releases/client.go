package releases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/updatebot/update-dotnet-sdk/pkg/buildversion"
	"github.com/updatebot/update-dotnet-sdk/pkg/logger"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases/types"
)

const (
	defaultReleasesEndpoint = "https://builds.dotnet.microsoft.com/dotnet/release-metadata"
	defaultQualityEndpoint  = "https://aka.ms/dotnet"

	defaultMaxRetries    = 3
	defaultRetryInterval = 2 * time.Second
)

// APIError is a non-success response from the release-metadata feed.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d from release feed", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d from release feed: %s", e.StatusCode, e.Body)
}

// Client fetches channel release documents from the .NET release-metadata
// feed. Requests retry automatically on transport errors and 5xx responses,
// bounded by the configured retry count.
type Client struct {
	endpoint        string
	qualityEndpoint string
	httpClient      *http.Client
	maxRetries      uint64
	retryInterval   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the release-metadata endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithQualityEndpoint overrides the daily-build host used for build-quality
// version lookups.
func WithQualityEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.qualityEndpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient sets a custom http.Client for feed requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxRetries bounds the automatic retry count for a single fetch.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryInterval sets the delay between retry attempts.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		c.retryInterval = d
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:        defaultReleasesEndpoint,
		qualityEndpoint: defaultQualityEndpoint,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		maxRetries:      defaultMaxRetries,
		retryInterval:   defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetChannel fetches and shape-checks the releases document for a channel.
func (c *Client) GetChannel(ctx context.Context, channel string) (*types.Channel, error) {
	url := fmt.Sprintf("%s/%s/releases.json", c.endpoint, channel)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch releases for channel %s", channel)
	}

	var doc types.Channel
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal releases document for channel %s", channel)
	}
	if doc.ChannelVersion == "" || doc.LatestSDK == "" || len(doc.Releases) == 0 {
		return nil, errors.Errorf("releases document for channel %s is incomplete", channel)
	}
	return &doc, nil
}

// GetQualityVersion fetches the SDK product version currently published for
// a channel at a build quality (daily, signed, validated, preview, GA).
func (c *Client) GetQualityVersion(ctx context.Context, channel string, quality string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/sdk-productVersion.txt", c.qualityEndpoint, channel, strings.ToLower(quality))

	body, err := c.get(ctx, url)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s product version for channel %s", quality, channel)
	}

	// The published text file starts with a BOM and ends with a CRLF.
	version := strings.TrimSpace(strings.TrimPrefix(strings.SplitN(string(body), "\n", 2)[0], "\ufeff"))
	if version == "" {
		return "", errors.Errorf("empty %s product version for channel %s", quality, channel)
	}
	return version, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to create request"))
		}
		req.Header.Set("User-Agent", buildversion.GetUserAgent())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.Wrap(err, "failed to execute request")
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read response body")
		}

		if resp.StatusCode >= 500 {
			return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(&APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))})
		}

		body = b
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries), ctx)
	err := backoff.RetryNotify(op, policy, func(err error, d time.Duration) {
		logger.Debugf("release feed request failed, retrying in %s: %v", d, err)
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
