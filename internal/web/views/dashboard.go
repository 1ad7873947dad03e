package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/auditdesk/auditdesk/internal/importer"
)

// ResourceCard summarizes one backend resource for the dashboard grid.
type ResourceCard struct {
	Label     string
	Path      string
	Count     int
	Available bool // false when the backend could not be reached
}

// DashboardParams collects everything the dashboard renders.
type DashboardParams struct {
	Staged    *importer.StagedBatch
	InFlight  bool
	Resources []ResourceCard
	Events    []importer.Event
}

// Dashboard renders the landing page: staged import state, resource
// counts, and recent activity.
func Dashboard(p DashboardParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Dashboard</h1>
<section class="card import-state-card">
<h2>Import</h2>
`); err != nil {
			return err
		}

		switch {
		case p.Staged != nil && p.InFlight:
			if _, err := fmt.Fprintf(w, `<p>Submitting %s (%d records)</p>
`, templ.EscapeString(p.Staged.Batch.SourceFileName), p.Staged.Batch.Len()); err != nil {
				return err
			}
		case p.Staged != nil:
			if _, err := fmt.Fprintf(w, `<p>%s staged with %d records. <a href="/import">Review and submit</a></p>
`, templ.EscapeString(p.Staged.Batch.SourceFileName), p.Staged.Batch.Len()); err != nil {
				return err
			}
		default:
			if _, err := io.WriteString(w, `<p>No batch staged. <a href="/import">Import a roster file</a></p>
`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</section>
<section class="card-grid">
`); err != nil {
			return err
		}

		for _, rc := range p.Resources {
			count := fmt.Sprintf("%d", rc.Count)
			if !rc.Available {
				count = "unavailable"
			}
			if _, err := fmt.Fprintf(w, `<a class="card resource-card" href="%s">
<span class="resource-label">%s</span>
<span class="resource-count">%s</span>
</a>
`, templ.EscapeString(rc.Path), templ.EscapeString(rc.Label), templ.EscapeString(count)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</section>
<section class="card activity-card">
<h2>Recent import activity</h2>
`); err != nil {
			return err
		}
		if err := ActivityTable(p.Events).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>
`)
		return err
	})
}
