// Package qntxwikidata is a thin client for the Wikidata Query Service:
// search humans by name, or fetch one by its numeric Q identifier.
//
// Exactly two query shapes are supported; this is not a general SPARQL
// builder. There is no caching, no retries and no pagination — one call
// is one request, and retry policy belongs to the caller.
package qntxwikidata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/qntx-wikidata/errors"
	"github.com/teranos/qntx-wikidata/internal/httpclient"
	"github.com/teranos/qntx-wikidata/version"
)

const (
	// DefaultEndpoint is the public Wikidata Query Service SPARQL endpoint.
	DefaultEndpoint = "https://query.wikidata.org/sparql"

	// DefaultTimeout bounds one full query round trip. The endpoint's own
	// server-side query deadline is 60s; giving up earlier keeps callers
	// responsive.
	DefaultTimeout = 30 * time.Second
)

// Config holds client configuration.
type Config struct {
	UserAgent         string             // appended to the built-in agent string; put contact info here
	Timeout           time.Duration      // per-call budget; 0 = DefaultTimeout
	Logger            *zap.SugaredLogger // structured logger (nil = nop logger)
	RequestsPerSecond float64            // client-side courtesy throttle; 0 = unlimited
}

// Client queries the Wikidata SPARQL endpoint. One long-lived instance
// backs any number of concurrent lookups; it holds a single pooled HTTP
// transport and no per-call state.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *httpclient.Client
	limiter    *rate.Limiter
	logger     *zap.SugaredLogger
}

// NewClient creates a new lookup client.
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	// Initialize logger (nop if not provided)
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	agent := version.UserAgent()
	if config.UserAgent != "" {
		agent = agent + " " + config.UserAgent
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &Client{
		endpoint:   DefaultEndpoint,
		userAgent:  agent,
		httpClient: httpclient.New(timeout, agent),
		limiter:    limiter,
		logger:     logger,
	}
}

// SearchByName returns the humans whose English label or alias equals
// term, in endpoint response order. No matches is a valid outcome and
// yields an empty, non-nil slice.
//
// The term must be non-empty after trimming whitespace, otherwise
// errors.ErrInvalidArgument is returned before any network call.
func (c *Client) SearchByName(ctx context.Context, term string) ([]Person, error) {
	if strings.TrimSpace(term) == "" {
		return nil, errors.NewInvalidArgumentf("search term is empty")
	}

	rows, err := c.query(ctx, buildSearchQuery(term))
	if err != nil {
		return nil, errors.Wrapf(err, "search %q", term)
	}

	people := make([]Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, mapPerson(row))
	}
	return people, nil
}

// GetByID returns the person with the given numeric Q identifier.
// A zero-row response yields errors.ErrNotFound — the normal outcome
// for a nonexistent identifier, distinct from transport and decode
// failures.
//
// The id must be positive, otherwise errors.ErrInvalidArgument is
// returned before any network call. There is no upper bound; the
// endpoint simply has no rows for identifiers it has never assigned.
func (c *Client) GetByID(ctx context.Context, id int64) (*Person, error) {
	if id <= 0 {
		return nil, errors.NewInvalidArgumentf("id must be positive, got %d", id)
	}

	rows, err := c.query(ctx, buildEntityQuery(id))
	if err != nil {
		return nil, errors.Wrapf(err, "get Q%d", id)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundf("no entity for Q%d", id)
	}

	// The identifier filter should make more than one row impossible,
	// but the endpoint does not guarantee it. Take the first.
	person := mapPerson(rows[0])
	return &person, nil
}

// query runs one SPARQL query and returns the raw result rows.
func (c *Client) query(ctx context.Context, sparql string) ([]binding, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "query throttled")
		}
	}

	params := url.Values{}
	params.Set("query", sparql)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/sparql-results+json")

	c.logger.Debugw("querying endpoint",
		"endpoint", c.endpoint,
		"query_bytes", len(sparql),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Caller cancellation and timeout are not request failures;
		// leave the context error visible through the wrap chain.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(err, "query aborted")
		}
		return nil, errors.WrapRequestFailed(err, "send query")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapRequestFailed(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warnw("endpoint returned error status",
			"status", resp.StatusCode,
			"body", trimBody(body),
		)
		return nil, errors.NewRequestFailedf("status %d: %s", resp.StatusCode, trimBody(body))
	}

	var parsed queryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.WrapBadResponse(err, "decode sparql results")
	}

	c.logger.Debugw("query complete", "rows", len(parsed.Results.Bindings))
	return parsed.Results.Bindings, nil
}

// trimBody keeps error messages readable when the endpoint answers with
// an HTML error page.
func trimBody(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

// SetHTTPClient allows overriding the HTTP client for testing
// ⚠️ WARNING: Only use this in tests. Production code should use the
// shared client built by NewClient.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = httpclient.WrapClient(client, c.userAgent)
}
