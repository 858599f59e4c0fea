package apiclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Default search paging.
const (
	DefaultSearchLimit  = 100
	DefaultSearchOffset = 0
)

// SearchParams are the query parameters of a collection search.
type SearchParams struct {
	Limit  int
	Offset int
	// Search is the filter string. Nil omits the parameter.
	Search *string
}

// DefaultSearchParams returns limit=100, offset=0 and no filter.
func DefaultSearchParams() SearchParams {
	return SearchParams{Limit: DefaultSearchLimit, Offset: DefaultSearchOffset}
}

// Query encodes the parameters as URL query values.
func (p SearchParams) Query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.Search != nil {
		q.Set("search", *p.Search)
	}
	return q
}

// CreateItem POSTs one item to the service collection.
func (c *Client) CreateItem(ctx context.Context, service string, item json.RawMessage) (*Response, error) {
	return c.post(ctx, resourcePath(service), item)
}

// ReadItem GETs a single item by id.
func (c *Client) ReadItem(ctx context.Context, service string, id int) (*Response, error) {
	return c.get(ctx, resourcePath(service, strconv.Itoa(id)), nil)
}

// UpdateItem PUTs an item to its id within the service collection.
func (c *Client) UpdateItem(ctx context.Context, service, id string, item json.RawMessage) (*Response, error) {
	return c.put(ctx, resourcePath(service, id), item)
}

// DeleteItem DELETEs a single item by id.
func (c *Client) DeleteItem(ctx context.Context, service string, id int) (*Response, error) {
	return c.delete(ctx, resourcePath(service, strconv.Itoa(id)))
}

// SearchItems GETs the service collection filtered by params.
func (c *Client) SearchItems(ctx context.Context, service string, params SearchParams) (*Response, error) {
	return c.get(ctx, resourcePath(service), params.Query())
}
