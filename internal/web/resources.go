package web

import (
	"context"
	"strconv"

	"github.com/auditdesk/auditdesk/internal/backend"
)

// resource describes one backend collection the UI lists: nav
// placement, table columns, and how to fetch and flatten rows. The
// slice drives the nav, the dashboard cards, and the generic table
// pages, so adding a resource is one entry here plus a client method.
type resource struct {
	key     string
	label   string
	path    string
	columns []string
	fetch   func(ctx context.Context, c *backend.Client) ([][]string, error)
}

var resources = []resource{
	{
		key:     "employees",
		label:   "Employees",
		path:    "/employees",
		columns: []string{"Name", "Phone", "Email", "Company", "Department", "Role"},
		fetch: func(ctx context.Context, c *backend.Client) ([][]string, error) {
			employees, err := c.ListEmployees(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(employees))
			for i, e := range employees {
				rows[i] = []string{e.Name, e.PhoneNumber, e.Email, e.Company, e.Department, e.Role}
			}
			return rows, nil
		},
	},
	{
		key:     "calls",
		label:   "Calls",
		path:    "/calls",
		columns: []string{"Phone", "Direction", "Status", "Platform", "Duration", "Started"},
		fetch: func(ctx context.Context, c *backend.Client) ([][]string, error) {
			calls, err := c.ListCallSessions(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(calls))
			for i, cs := range calls {
				rows[i] = []string{
					cs.PhoneNumber, cs.Direction, cs.Status, cs.Platform,
					formatDuration(cs.DurationSeconds), cs.StartedAt,
				}
			}
			return rows, nil
		},
	},
	{
		key:     "consultations",
		label:   "Consultations",
		path:    "/consultations",
		columns: []string{"Company", "Email", "Phone", "Source", "Status", "Phase"},
		fetch: func(ctx context.Context, c *backend.Client) ([][]string, error) {
			cons, err := c.ListConsultations(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(cons))
			for i, co := range cons {
				rows[i] = []string{
					co.CompanyName, co.ClientEmail, co.ClientPhone,
					co.SourcePlatform, co.Status, co.Phase,
				}
			}
			return rows, nil
		},
	},
	{
		key:     "processes",
		label:   "Processes",
		path:    "/processes",
		columns: []string{"Name", "Department", "Status", "Description"},
		fetch: func(ctx context.Context, c *backend.Client) ([][]string, error) {
			procs, err := c.ListProcesses(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(procs))
			for i, p := range procs {
				rows[i] = []string{p.Name, p.Department, p.Status, p.Description}
			}
			return rows, nil
		},
	},
	{
		key:     "reports",
		label:   "Reports",
		path:    "/reports",
		columns: []string{"Title", "Type", "Status", "Created"},
		fetch: func(ctx context.Context, c *backend.Client) ([][]string, error) {
			reports, err := c.ListReports(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([][]string, len(reports))
			for i, rp := range reports {
				rows[i] = []string{rp.Title, rp.ReportType, rp.Status, rp.CreatedAt}
			}
			return rows, nil
		},
	},
}

// formatDuration renders call durations as m:ss for the table.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	m := seconds / 60
	s := seconds % 60
	return strconv.Itoa(m) + ":" + pad2(s)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
