// Package httpclient provides the shared outbound HTTP client behind
// every query to the SPARQL endpoint. One pooled transport backs all
// lookups; constructing a client per call leaks connections under load.
package httpclient

import (
	"net/http"
	"time"

	"github.com/teranos/qntx-wikidata/errors"
)

// Client wraps http.Client with the endpoint's access requirements:
// a stable User-Agent on every request and a bounded redirect chain.
type Client struct {
	*http.Client
	userAgent    string
	maxRedirects int
}

// New creates the shared HTTP client. timeout bounds one full request
// round trip; userAgent is stamped on every outgoing request because
// the query service is liable to reject anonymous agents.
func New(timeout time.Duration, userAgent string) *Client {
	client := &Client{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		userAgent:    userAgent,
		maxRedirects: 10,
	}

	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= client.maxRedirects {
			return errors.Newf("stopped after %d redirects", client.maxRedirects)
		}
		return nil
	}

	return client
}

// Do stamps the User-Agent and dispatches the request. An agent already
// set by the caller wins.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.Client.Do(req)
}

// WrapClient wraps an existing http.Client (e.g. an httptest server's)
// so tests can substitute the transport while keeping Do semantics.
func WrapClient(client *http.Client, userAgent string) *Client {
	return &Client{
		Client:       client,
		userAgent:    userAgent,
		maxRedirects: 10,
	}
}
