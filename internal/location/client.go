// internal/location/client.go
//
// HTTP client for a remote location lookup service.
//
// Deployments that split the location tables out to their own service
// point the wizard here instead of at the repository; both sides of the
// split satisfy options.Searcher, so nothing above this line changes.

package location

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MS250871/my-saas-demo/internal/options"
)

// Client searches a remote lookup service over HTTP.
type Client struct {
	http *resty.Client
}

// NewClient builds a Client against baseURL (e.g., "https://lookup.internal").
func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(5 * time.Second),
	}
}

// Countries implements options.Searcher.
func (c *Client) Countries(ctx context.Context, query string) ([]options.Option, error) {
	return c.get(ctx, "/api/locations/countries", map[string]string{"q": query})
}

// States implements options.Searcher.
func (c *Client) States(ctx context.Context, countryID int64, query string) ([]options.Option, error) {
	return c.get(ctx, "/api/locations/states", map[string]string{
		"q": query, "country_id": strconv.FormatInt(countryID, 10),
	})
}

// Cities implements options.Searcher.
func (c *Client) Cities(ctx context.Context, stateID int64, query string) ([]options.Option, error) {
	return c.get(ctx, "/api/locations/cities", map[string]string{
		"q": query, "state_id": strconv.FormatInt(stateID, 10),
	})
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]options.Option, error) {
	var out []options.Option
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("location lookup %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("location lookup %s: status %d", path, resp.StatusCode())
	}
	if out == nil {
		out = []options.Option{}
	}
	return out, nil
}
