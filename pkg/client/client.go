package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oursky/isoduration/pkg/api"
	"github.com/oursky/isoduration/pkg/isoduration"
	"github.com/oursky/isoduration/pkg/utils/httputil"
	"github.com/oursky/isoduration/pkg/utils/ratelimit"

	"golang.org/x/time/rate"
)

// APIError is a conversion rejected by the server.
type APIError struct {
	Value   string
	Kind    isoduration.Kind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the isoduration sentinel matching the error kind, so
// errors.Is(err, isoduration.ErrUnsupportedUnit) works across the wire.
func (e *APIError) Unwrap() error {
	return isoduration.ErrorOf(e.Kind)
}

type Client struct {
	baseURL *url.URL
	authKey string
	http    *http.Client
}

// New returns a client for the conversion API. Requests go through base,
// or http.DefaultTransport when base is nil.
func New(config *Config, base http.RoundTripper) (*Client, error) {
	baseURL, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		baseURL: baseURL,
		authKey: config.AuthKey,
		http: &http.Client{
			Transport: ratelimit.NewTransport(base, rate.Limit(config.GetRPS()), config.GetBurst()),
			Timeout:   config.GetTimeout(),
		},
	}, nil
}

func (c *Client) Parse(ctx context.Context, value string) (isoduration.Duration, error) {
	var conv api.Conversion
	err := c.do(ctx, http.MethodGet, "/api/v1/parse", url.Values{"value": {value}}, nil, &conv)
	if err != nil {
		return isoduration.Duration{}, err
	}
	if conv.Duration == nil {
		return isoduration.Duration{}, fmt.Errorf("no duration in response for %q", value)
	}
	return *conv.Duration, nil
}

func (c *Client) Format(ctx context.Context, d isoduration.Duration) (string, error) {
	query := url.Values{
		"seconds": {strconv.FormatInt(d.Seconds(), 10)},
		"nanos":   {strconv.FormatInt(int64(d.Nanos()), 10)},
	}

	var conv api.Conversion
	if err := c.do(ctx, http.MethodGet, "/api/v1/format", query, nil, &conv); err != nil {
		return "", err
	}
	return conv.Value, nil
}

// Convert parses values in one request. Rejected values are reported in
// the Error and Kind fields of their result.
func (c *Client) Convert(ctx context.Context, values []string) ([]api.Conversion, error) {
	var resp api.ConvertResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/convert", nil, api.ConvertRequest{Values: values}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	u := c.baseURL.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()})

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.authKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var conv api.Conversion
		if err := json.NewDecoder(resp.Body).Decode(&conv); err != nil {
			return fmt.Errorf("failed to decode error response: %w", err)
		}
		return &APIError{Value: conv.Value, Kind: conv.Kind, Message: conv.Error}
	}
	if err := httputil.CheckStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
