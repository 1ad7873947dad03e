package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListReports fetches generated-report metadata.
func (c *Client) ListReports(ctx context.Context) ([]Report, error) {
	var out []Report
	if err := c.do(ctx, http.MethodGet, "/reports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetReport fetches one report's metadata by id.
func (c *Client) GetReport(ctx context.Context, id string) (*Report, error) {
	var out Report
	if err := c.do(ctx, http.MethodGet, "/reports/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReport requests generation of a new report.
func (c *Client) CreateReport(ctx context.Context, r Report) (*Report, error) {
	var out Report
	if err := c.do(ctx, http.MethodPost, "/reports", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
