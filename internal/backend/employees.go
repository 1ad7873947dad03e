package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// importRequest is the body of the bulk import endpoint.
type importRequest struct {
	Employees []roster.CandidateRecord `json:"employees"`
}

// importResponse is the backend's per-batch import outcome.
type importResponse struct {
	Success  bool     `json:"success"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// ListEmployees fetches the authoritative roster.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEmployee fetches one roster entry by id.
func (c *Client) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEmployee adds a single roster entry.
func (c *Client) CreateEmployee(ctx context.Context, e Employee) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPost, "/employees", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee replaces a roster entry.
func (c *Client) UpdateEmployee(ctx context.Context, id string, e Employee) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportEmployees submits a parsed batch to the bulk import endpoint.
// The backend owns deduplication and persistence; its counts and error
// strings come back verbatim in the ImportResult. The call either
// returns the backend's result or an error, never a partial guess.
func (c *Client) ImportEmployees(ctx context.Context, records []roster.CandidateRecord) (roster.ImportResult, error) {
	var out importResponse
	if err := c.do(ctx, http.MethodPost, "/employees/import", importRequest{Employees: records}, &out); err != nil {
		return roster.ImportResult{}, err
	}
	if !out.Success && out.Imported == 0 && len(out.Errors) == 0 {
		// A failure with no detail still needs something to show.
		return roster.ImportResult{}, fmt.Errorf("import rejected by backend")
	}
	return roster.ImportResult{
		Imported: out.Imported,
		Skipped:  out.Skipped,
		Errors:   out.Errors,
	}, nil
}
