package wwo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/f3rmion/wego/internal/forecast"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the free-tier forecast endpoint.
	DefaultBaseURL = "https://api.worldweatheronline.com/free/v2/weather.ashx"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 4 << 20
)

// StatusError is returned for a non-2xx HTTP response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wwo: unexpected status %d: %s", e.Code, e.Body)
}

// Query selects what to fetch.
type Query struct {
	Location string
	Days     int
	Lang     string // alternate language code; empty for English only
}

// Client fetches forecasts over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty).
// A zero timeout selects the default of 30 seconds.
func NewClient(baseURL, apiKey string, timeout time.Duration, log logrus.FieldLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// requestURL builds the query string for q.
func (c *Client) requestURL(q Query) (*url.URL, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	params := u.Query()
	params.Set("q", q.Location)
	params.Set("key", c.apiKey)
	params.Set("format", "json")
	params.Set("tp", "3")
	if q.Days > 0 {
		params.Set("num_of_days", strconv.Itoa(q.Days))
	}
	if q.Lang != "" {
		params.Set("lang", q.Lang)
	}
	u.RawQuery = params.Encode()
	return u, nil
}

// redacted returns u as a string with the API key hidden.
func redacted(u *url.URL) string {
	r := *u
	params := r.Query()
	if params.Has("key") {
		params.Set("key", "REDACTED")
	}
	r.RawQuery = params.Encode()
	return r.String()
}

// Fetch retrieves and decodes the forecast for q.
func (c *Client) Fetch(ctx context.Context, q Query) (*forecast.Report, error) {
	if q.Location == "" {
		return nil, fmt.Errorf("fetching forecast: empty location")
	}

	u, err := c.requestURL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log := c.log.WithField("url", redacted(u))
	log.Debug("fetching forecast")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	log.WithFields(logrus.Fields{"status": resp.StatusCode, "bytes": len(body)}).Debug("received forecast")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return Decode(bytes.NewReader(body), q.Lang)
}
