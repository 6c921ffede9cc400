package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/wikiask-cli/internal/domain"
	"github.com/bnema/wikiask-cli/internal/ports"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000"

	chatPathFormat   = "/api/expert/%s/chat"
	expertListPath   = "/api/expert/list"
	maxResponseBytes = 4 << 20
)

// Client talks to the expert backend over JSON/HTTP.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.ChatBackend = Client{}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type expertListBody struct {
	Experts []ports.RemoteExpert `json:"experts"`
}

func (c Client) Chat(ctx context.Context, expertID domain.ExpertID, req ports.ChatRequest) (ports.ChatResponse, error) {
	endpoint, err := buildAPIURL(c.baseURL(), fmt.Sprintf(chatPathFormat, url.PathEscape(string(expertID))))
	if err != nil {
		return ports.ChatResponse{}, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return ports.ChatResponse{}, fmt.Errorf("encode chat request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.ChatResponse{}, fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return ports.ChatResponse{}, fmt.Errorf("send chat request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.ChatResponse{}, decodeHTTPError(resp)
	}

	var payload ports.ChatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return ports.ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}

	return payload, nil
}

func (c Client) ListExperts(ctx context.Context) ([]ports.RemoteExpert, error) {
	endpoint, err := buildAPIURL(c.baseURL(), expertListPath)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create expert list request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send expert list request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeHTTPError(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read expert list response: %w", err)
	}

	// The list comes either bare or wrapped in {"experts": [...]}.
	var experts []ports.RemoteExpert
	if err := json.Unmarshal(raw, &experts); err == nil {
		return experts, nil
	}
	var wrapped expertListBody
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode expert list response: %w", err)
	}

	return wrapped.Experts, nil
}

func (c Client) baseURL() string {
	if strings.TrimSpace(c.BaseURL) == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// requestContext applies RequestTimeout unless the caller set a deadline or
// the timeout is disabled.
func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || c.RequestTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}

// decodeHTTPError never fails: a malformed or missing body yields an empty detail.
func decodeHTTPError(resp *http.Response) *ports.HTTPError {
	httpErr := &ports.HTTPError{Status: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return httpErr
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		httpErr.Detail = detail
	}

	return httpErr
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return parsed.String() + path, nil
}
