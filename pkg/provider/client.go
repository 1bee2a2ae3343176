package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

const (
	maxAttempts    = 3
	backoffBase    = 500 * time.Millisecond
	defaultTimeout = 15 * time.Second
)

// authScheme applies one authentication header convention to a request.
// Providers are inconsistent about which scheme a given credential type
// expects, so the client carries an ordered list and falls through on 401.
type authScheme struct {
	name  string
	apply func(req *http.Request, credential string)
}

var bearerScheme = authScheme{
	name: "bearer",
	apply: func(req *http.Request, credential string) {
		req.Header.Set("Authorization", "Bearer "+credential)
	},
}

var apiKeyScheme = authScheme{
	name: "api-key",
	apply: func(req *http.Request, credential string) {
		req.Header.Set("X-Api-Key", credential)
	},
}

// Client is the retrying HTTP wrapper around the provider API. Every request
// gets exponential backoff with jitter (capped at maxAttempts), a bounded
// per-request timeout, and bearer→api-key auth fallback on 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	timeout    time.Duration
	schemes    []authScheme

	// sleep is replaceable in tests to avoid real backoff delays
	sleep func(time.Duration)
}

// NewClient creates a provider client with a static credential
func NewClient(baseURL, credential string, timeout time.Duration) *Client {
	return NewClientWithTokenSource(baseURL, StaticToken(credential), timeout)
}

// NewClientWithTokenSource creates a provider client whose credential is
// produced by a token source (e.g. an auto-refreshing OAuth token).
func NewClientWithTokenSource(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
		timeout:    timeout,
		schemes:    []authScheme{bearerScheme, apiKeyScheme},
		sleep:      time.Sleep,
	}
}

// getJSON performs a GET against path with the retry/auth-fallback policy and
// decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	credential, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain provider credential: %w", err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	schemeIdx := 0
	schemeSwitched := false

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fullURL, nil)
		if err != nil {
			cancel()
			return err
		}
		req.Header.Set("Accept", "application/json")
		c.schemes[schemeIdx].apply(req, credential)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			cancel()
			if !isConnectionError(err) && ctx.Err() != nil {
				return ctx.Err()
			}
			if attempt == maxAttempts {
				return fmt.Errorf("provider request failed after %d attempts: %w", maxAttempts, err)
			}
			c.backoff(attempt)
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()
		cancel()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if readErr != nil {
				return fmt.Errorf("failed to read provider response: %w", readErr)
			}
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to decode provider response: %w", err)
			}
			return nil

		case resp.StatusCode == http.StatusUnauthorized:
			// One shot with the alternate header scheme before giving up;
			// a 401 under every scheme is a dead credential, not a transient.
			if !schemeSwitched && schemeIdx+1 < len(c.schemes) {
				log.Printf("[Provider] 401 with %s scheme, retrying with %s scheme", c.schemes[schemeIdx].name, c.schemes[schemeIdx+1].name)
				schemeIdx++
				schemeSwitched = true
				attempt-- // the scheme switch is not a retry
				continue
			}
			return &AuthError{StatusCode: resp.StatusCode, Body: string(body)}

		case resp.StatusCode == http.StatusForbidden:
			return &AuthError{StatusCode: resp.StatusCode, Body: string(body)}

		case isRetryableStatus(resp.StatusCode):
			if attempt == maxAttempts {
				return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
			}
			c.backoff(attempt)
			continue

		default:
			return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}
	}

	return fmt.Errorf("provider request failed after %d attempts", maxAttempts)
}

// backoff sleeps for an exponentially growing interval with random jitter
func (c *Client) backoff(attempt int) {
	delay := backoffBase * time.Duration(1<<(attempt-1))
	jitter := time.Duration(rand.Int63n(int64(backoffBase)))
	c.sleep(delay + jitter)
}
