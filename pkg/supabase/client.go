package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config holds the PostgREST endpoint and keys of a Supabase project.
type Config struct {
	URL            string
	APIKey         string
	ServiceRoleKey string
	Timeout        time.Duration
}

// Client is a thin client for Supabase's PostgREST data API.
type Client struct {
	rest *resty.Client
}

// NewClient creates a new Supabase client. The service role key, when set,
// is used as the bearer token so inserts bypass row level security.
func NewClient(cfg Config) *Client {
	token := cfg.ServiceRoleKey
	if token == "" {
		token = cfg.APIKey
	}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = token
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rest := resty.New().
		SetBaseURL(cfg.URL+"/rest/v1").
		SetTimeout(timeout).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json")

	return &Client{rest: rest}
}

// Select fetches rows from a table into dest. params are PostgREST query
// parameters ("select", "order", column filters like "id=eq.<uuid>").
func (c *Client) Select(ctx context.Context, table string, params map[string]string, limit, offset int, dest interface{}) error {
	req := c.rest.R().SetContext(ctx).SetQueryParams(params)
	if limit > 0 {
		req.SetHeader("Range-Unit", "items")
		req.SetHeader("Range", fmt.Sprintf("%d-%d", offset, offset+limit-1))
	}

	resp, err := req.Get("/" + table)
	if err != nil {
		return fmt.Errorf("failed to call supabase API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return nil
}

// Insert inserts rows into a table. rows marshals to a JSON array.
func (c *Client) Insert(ctx context.Context, table string, rows interface{}) error {
	resp, err := c.rest.R().SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(rows).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("failed to call supabase API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Upsert inserts rows, resolving conflicts on the given column by merging.
func (c *Client) Upsert(ctx context.Context, table, onConflict string, rows interface{}) error {
	resp, err := c.rest.R().SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetQueryParam("on_conflict", onConflict).
		SetBody(rows).
		Post("/" + table)
	if err != nil {
		return fmt.Errorf("failed to call supabase API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Delete removes rows matching the given PostgREST filter parameters.
// PostgREST refuses an unfiltered delete, so params must not be empty.
func (c *Client) Delete(ctx context.Context, table string, params map[string]string) error {
	if len(params) == 0 {
		return fmt.Errorf("refusing unfiltered delete on %q", table)
	}
	resp, err := c.rest.R().SetContext(ctx).
		SetQueryParams(params).
		Delete("/" + table)
	if err != nil {
		return fmt.Errorf("failed to call supabase API: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Count returns the exact row count of a table matching the filters.
func (c *Client) Count(ctx context.Context, table string, params map[string]string) (int, error) {
	resp, err := c.rest.R().SetContext(ctx).
		SetQueryParams(params).
		SetHeader("Prefer", "count=exact").
		SetHeader("Range", "0-0").
		Get("/" + table)
	if err != nil {
		return 0, fmt.Errorf("failed to call supabase API: %w", err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusRequestedRangeNotSatisfiable {
		return 0, apiError(resp)
	}

	// Content-Range: "0-0/1234"
	cr := resp.Header().Get("Content-Range")
	for i := len(cr) - 1; i >= 0; i-- {
		if cr[i] == '/' {
			n, err := strconv.Atoi(cr[i+1:])
			if err != nil {
				return 0, fmt.Errorf("failed to parse content range %q: %w", cr, err)
			}
			return n, nil
		}
	}
	return 0, fmt.Errorf("missing content range header")
}

func apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return fmt.Errorf("supabase API error: %d: %s", resp.StatusCode(), body.Message)
	}
	return fmt.Errorf("supabase API error: %d", resp.StatusCode())
}
