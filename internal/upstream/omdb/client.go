// Package omdb is the upstream client for the OMDb movie-metadata API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fhuszti/movies-ms-go/internal/metrics"
	"github.com/fhuszti/movies-ms-go/internal/port"
	"resty.dev/v3"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client issues ?s= and ?i= lookups. It never retries.
type Client struct {
	resty   *resty.Client
	apiKey  string
	metrics *metrics.Metrics
}

// compile-time check: *Client must satisfy port.MetadataProvider
var _ port.MetadataProvider = (*Client)(nil)

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	r := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{resty: r, apiKey: cfg.APIKey, metrics: m}
}

// Close releases idle connections held by the underlying client.
func (c *Client) Close() {
	c.resty.Close()
}

func (c *Client) SearchByText(ctx context.Context, text string) (*port.SearchResult, error) {
	var out searchResponse
	start := time.Now()
	if err := c.get(ctx, "s", text, &out); err != nil {
		c.metrics.UpstreamRequest(metrics.OpSearch, metrics.OutcomeFailure, time.Since(start))
		return nil, fmt.Errorf("search %q: %w", text, err)
	}

	res := &port.SearchResult{
		TotalResults: out.TotalResults,
		Success:      isTrue(out.Response),
		Error:        out.Error,
	}
	for _, it := range out.Search {
		res.Items = append(res.Items, port.SearchItem{
			Title:  it.Title,
			Year:   it.Year,
			IMDbID: it.IMDbID,
			Type:   it.Type,
			Poster: it.Poster,
		})
	}

	outcome := metrics.OutcomeSuccess
	if !res.Success {
		outcome = metrics.OutcomeNotFound
	}
	c.metrics.UpstreamRequest(metrics.OpSearch, outcome, time.Since(start))
	return res, nil
}

func (c *Client) LookupByID(ctx context.Context, imdbID string) (*port.MovieDetail, error) {
	var out detailResponse
	start := time.Now()
	if err := c.get(ctx, "i", imdbID, &out); err != nil {
		c.metrics.UpstreamRequest(metrics.OpLookup, metrics.OutcomeFailure, time.Since(start))
		return nil, fmt.Errorf("lookup %q: %w", imdbID, err)
	}

	res := &port.MovieDetail{
		Title:      out.Title,
		Year:       out.Year,
		IMDbID:     out.IMDbID,
		Type:       out.Type,
		Poster:     out.Poster,
		Plot:       out.Plot,
		Director:   out.Director,
		Actors:     out.Actors,
		Runtime:    out.Runtime,
		Genre:      out.Genre,
		IMDbRating: out.IMDbRating,
		Success:    isTrue(out.Response),
		Error:      out.Error,
	}

	outcome := metrics.OutcomeSuccess
	if !res.Success {
		outcome = metrics.OutcomeNotFound
	}
	c.metrics.UpstreamRequest(metrics.OpLookup, outcome, time.Since(start))
	return res, nil
}

// get performs one GET against the API root and decodes the body into out.
// Transport errors, non-2xx statuses and undecodable bodies are all errors.
func (c *Client) get(ctx context.Context, param, value string, out any) error {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParam("apikey", c.apiKey).
		SetQueryParam(param, value).
		SetDoNotParseResponse(true).
		Get("/")
	if err != nil {
		return err
	}
	if resp.Body == nil {
		return fmt.Errorf("empty response (status %d)", resp.StatusCode())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
