package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/updatebot/update-dotnet-sdk/pkg/buildversion"
)

const defaultAPIEndpoint = "https://api.github.com"

// Client is an HTTP client for the GitHub REST API, covering the two calls
// an update run needs: opening a pull request and labeling it.
type Client struct {
	apiEndpoint string
	token       string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIEndpoint overrides the API endpoint, e.g. a GitHub Enterprise
// Server's "https://ghe.example.com/api/v3".
func WithAPIEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.apiEndpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient sets a custom http.Client for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a GitHub API client authenticating with token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		apiEndpoint: defaultAPIEndpoint,
		token:       token,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned when the API responds with a non-2xx status code.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: HTTP %d: %s", e.StatusCode, e.Body)
}

// NewPullRequest describes the pull request to open. The created pull
// request is never a draft and always allows maintainer edits.
type NewPullRequest struct {
	Title string
	Head  string
	Base  string
	Body  string
}

// PullRequest is the created pull request.
type PullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// CreatePullRequest opens a pull request on "owner/name" from pr.Head into
// pr.Base.
func (c *Client) CreatePullRequest(ctx context.Context, repo string, pr NewPullRequest) (*PullRequest, error) {
	payload := struct {
		Title               string `json:"title"`
		Head                string `json:"head"`
		Base                string `json:"base"`
		Body                string `json:"body"`
		MaintainerCanModify bool   `json:"maintainer_can_modify"`
		Draft               bool   `json:"draft"`
	}{
		Title:               pr.Title,
		Head:                pr.Head,
		Base:                pr.Base,
		Body:                pr.Body,
		MaintainerCanModify: true,
		Draft:               false,
	}

	created := PullRequest{}
	if err := c.doSend(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/pulls", repo), payload, &created); err != nil {
		return nil, errors.Wrapf(err, "failed to create pull request on %s", repo)
	}
	return &created, nil
}

// AddLabels attaches labels to an issue or pull request.
func (c *Client) AddLabels(ctx context.Context, repo string, number int, labels []string) error {
	payload := struct {
		Labels []string `json:"labels"`
	}{
		Labels: labels,
	}

	if err := c.doSend(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/issues/%d/labels", repo, number), payload, nil); err != nil {
		return errors.Wrapf(err, "failed to add labels to %s#%d", repo, number)
	}
	return nil
}

// doSend performs a request with a JSON body and decodes the JSON response
// into dest when dest is non-nil.
func (c *Client) doSend(ctx context.Context, method string, path string, payload interface{}, dest interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiEndpoint+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", buildversion.GetUserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}
	}
	return nil
}

// readAPIError reads the response body and returns an *APIError.
func readAPIError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(bodyBytes)),
	}
}
