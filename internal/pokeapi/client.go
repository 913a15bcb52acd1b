// Package pokeapi is a read-only client for the PokéAPI /pokemon endpoint.
//
// Two lookups are supported: a fixed batch by numeric ID, fetched in
// parallel and joined all-or-nothing, and a single lookup by name.
package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"pokedex/internal/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public PokéAPI pokemon endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon/"
	// DefaultBatchSize is the number of records loaded on start.
	DefaultBatchSize = 12
	// DefaultUserAgent identifies this client to the service.
	DefaultUserAgent = "pokedex/1.0"

	tracerName = "pokedex/pokeapi"
)

// Client fetches Pokémon records over HTTP.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	tracer    oteltrace.Tracer
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. The client's own
// timeout, if any, is the only timeout applied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracerProvider sets the tracer provider used for request spans.
// Defaults to the global provider.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewClient creates a client rooted at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		baseURL:   baseURL,
		http:      http.DefaultClient,
		userAgent: DefaultUserAgent,
		tracer:    otel.Tracer(tracerName),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized endpoint the client requests against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DefaultIDs returns the identifiers 1..DefaultBatchSize in ascending order.
func DefaultIDs() []int {
	ids := make([]int, DefaultBatchSize)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// NormalizeName trims and lowercases a user-entered name into the slug the
// service expects. Returns "" for blank input.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FetchBatch fetches all ids concurrently and returns the records in the
// same order as ids. If any request fails the whole call fails with an
// error wrapping ErrBatchFetch and no records are returned.
func (c *Client) FetchBatch(ctx context.Context, ids []int) ([]Record, error) {
	ctx, span := c.tracer.Start(ctx, "pokeapi.batch",
		oteltrace.WithAttributes(attribute.Int("pokeapi.batch_size", len(ids))))
	defer span.End()

	records := make([]Record, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			rec, err := c.get(gctx, strconv.Itoa(id))
			if err != nil {
				return fmt.Errorf("pokemon %d: %w", id, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch failed")
		return nil, fmt.Errorf("%w: %w", ErrBatchFetch, err)
	}
	return records, nil
}

// FetchByName looks up a single record by name. The name is normalized
// first. Every failure, including blank input, wraps ErrNotFound.
func (c *Client) FetchByName(ctx context.Context, name string) (Record, error) {
	slug := NormalizeName(name)
	if slug == "" {
		return Record{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	rec, err := c.get(ctx, slug)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return rec, nil
}

// get issues one GET for base/slug and decodes the body.
func (c *Client) get(ctx context.Context, slug string) (Record, error) {
	ctx, span := c.tracer.Start(ctx, "pokeapi.get",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("pokeapi.slug", slug)))
	defer span.End()

	rec, err := c.doGet(ctx, span, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("pokeapi request failed", zap.String("slug", slug), zap.Error(err))
		return Record{}, err
	}
	c.logger.Debug("pokeapi request ok", zap.String("slug", slug), zap.Int("id", rec.ID))
	return rec, nil
}

func (c *Client) doGet(ctx context.Context, span oteltrace.Span, slug string) (Record, error) {
	u := c.baseURL + url.PathEscape(slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Record{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Record{}, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	payload, err := jsonutil.DecodeBody[apiPokemon](resp.Body, "decode "+slug)
	if err != nil {
		return Record{}, err
	}
	if payload.ID <= 0 || payload.Name == "" {
		return Record{}, fmt.Errorf("decode %s: missing id or name", slug)
	}
	return payload.record(), nil
}
