package api

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client wraps all outbound calls to the platform API
type Client struct {
	http   *resty.Client
	tokens TokenSource
}

// NewClient builds a client for the given base URL. tokens may be nil
// for a client that only hits public endpoints.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	c := &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		tokens: tokens,
	}

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
		}
		return nil
	})

	return c
}

// do runs a prepared request and folds transport and status failures
// into a single *Error. result, when non-nil, receives the decoded
// success payload.
func (c *Client) do(req *resty.Request, method, path string, result interface{}) error {
	if result != nil {
		// Decode the body even when the server skips the content-type
		// header, rather than silently returning a zero value
		req.SetResult(result).ForceContentType("application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return statusError(resp.StatusCode(), resp.Body())
	}
	return nil
}
