// Package client implements the gateway's HTTP clients for the backend
// services. Every call is bounded by the configured timeout, propagates the
// request context for cancellation, and remaps failures to the uniform
// {code, message} shape. Raw transport errors never reach a client of the
// gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/api/metrics"
	"github.com/dowhile/storefront-system/internal/core/domain"
)

// APIError is the uniform failure shape a backend call resolves to. It
// carries the backend's error envelope when one was recognized, and the
// generic internal error otherwise.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// internalAPIError is what every unrecognized failure collapses to.
func internalAPIError() *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       domain.CodeInternal,
		Message:    "Internal server error",
	}
}

// Shape resolves any error from a backend call to an *APIError.
func Shape(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return internalAPIError()
}

// Client is a thin JSON client for one backend service.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	log     zerolog.Logger
}

// New builds a client for the backend rooted at baseURL (including the /api
// prefix). The timeout bounds every call; service names the backend in logs
// and metrics.
func New(baseURL, service string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		service: service,
		log:     log,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			c.log.Error().Err(err).Str("service", c.service).Msg("request encoding failed")
			return internalAPIError()
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return internalAPIError()
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(c.service).Observe(time.Since(start).Seconds())
	if err != nil {
		// Timeouts and connection failures are internal from the
		// client's point of view.
		c.log.Warn().Err(err).Str("service", c.service).Str("path", path).Msg("backend call failed")
		metrics.BackendRequestsTotal.WithLabelValues(c.service, domain.CodeInternal).Inc()
		return internalAPIError()
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := c.decodeError(res)
		metrics.BackendRequestsTotal.WithLabelValues(c.service, apiErr.Code).Inc()
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			c.log.Warn().Err(err).Str("service", c.service).Str("path", path).Msg("backend response decoding failed")
			metrics.BackendRequestsTotal.WithLabelValues(c.service, domain.CodeInternal).Inc()
			return internalAPIError()
		}
	}

	metrics.BackendRequestsTotal.WithLabelValues(c.service, "success").Inc()
	return nil
}

// decodeError reads the backend's error envelope. Anything that is not a
// well-formed envelope collapses to the internal error.
func (c *Client) decodeError(res *http.Response) *APIError {
	var apiErr APIError
	if err := json.NewDecoder(res.Body).Decode(&apiErr); err != nil || apiErr.Code == "" {
		return internalAPIError()
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = res.StatusCode
	}
	return &apiErr
}
