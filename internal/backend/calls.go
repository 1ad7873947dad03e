package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListCallSessions fetches tracked calls, newest first per the
// backend's default ordering.
func (c *Client) ListCallSessions(ctx context.Context) ([]CallSession, error) {
	var out []CallSession
	if err := c.do(ctx, http.MethodGet, "/calls", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCallSession fetches one call by id.
func (c *Client) GetCallSession(ctx context.Context, id string) (*CallSession, error) {
	var out CallSession
	if err := c.do(ctx, http.MethodGet, "/calls/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
