package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListProcesses fetches the process catalog.
func (c *Client) ListProcesses(ctx context.Context) ([]Process, error) {
	var out []Process
	if err := c.do(ctx, http.MethodGet, "/processes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProcess fetches one catalog entry by id.
func (c *Client) GetProcess(ctx context.Context, id string) (*Process, error) {
	var out Process
	if err := c.do(ctx, http.MethodGet, "/processes/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProcess adds a catalog entry.
func (c *Client) CreateProcess(ctx context.Context, p Process) (*Process, error) {
	var out Process
	if err := c.do(ctx, http.MethodPost, "/processes", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProcess replaces a catalog entry.
func (c *Client) UpdateProcess(ctx context.Context, id string, p Process) (*Process, error) {
	var out Process
	if err := c.do(ctx, http.MethodPut, "/processes/"+url.PathEscape(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
