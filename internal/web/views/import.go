package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/auditdesk/auditdesk/internal/importer"
	"github.com/auditdesk/auditdesk/internal/roster"
)

// previewColumns is the fixed column set of the staging preview table.
// Department is intentionally absent; it is imported but not previewed.
var previewColumns = []string{"Name", "Phone", "Email", "Company", "Role"}

// SubmitResult carries what the result banner shows after a submission.
type SubmitResult struct {
	FileName    string
	Imported    int
	Skipped     int
	Errors      []string
	Retained    bool // batch kept for retry after a failure
	RosterTotal int  // fresh roster size after import, -1 when unknown
}

// ImportPageParams collects everything the import page renders.
type ImportPageParams struct {
	Staged   *importer.StagedBatch
	Preview  *roster.Preview
	InFlight bool
	Result   *SubmitResult
	Alert    templ.Component
	Events   []importer.Event
}

// ImportPage renders the import workflow: upload form, staged preview,
// submit controls, result banner, and recent activity.
func ImportPage(p ImportPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Import Roster</h1>
`); err != nil {
			return err
		}

		if p.Alert != nil {
			if err := p.Alert.Render(ctx, w); err != nil {
				return err
			}
		}
		if p.Result != nil {
			if err := ResultBanner(*p.Result).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<section class="card upload-card">
<h2>Upload a roster file</h2>
<form class="upload-form" method="post" action="/import/file" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,.tsv,.txt,.json" required>
<button type="submit" class="btn btn-primary">Upload and preview</button>
</form>
<p class="hint">Accepted formats: CSV, TSV, tab-separated .txt, JSON.
<a href="/import/template">Download the CSV template</a></p>
</section>
`); err != nil {
			return err
		}

		if p.Staged != nil && p.Preview != nil {
			if err := stagedSection(*p.Staged, *p.Preview, p.InFlight).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<section class="card activity-card">
<h2>Recent import activity</h2>
<p class="hint"><a href="/import/activity/export">Export as CSV</a></p>
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

// stagedSection renders the staged batch summary, the preview table,
// and the submit and discard controls.
func stagedSection(staged importer.StagedBatch, pv roster.Preview, inFlight bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		batch := staged.Batch
		if _, err := fmt.Fprintf(w, `<section class="card staged-card">
<h2>Staged batch</h2>
<p class="staged-meta">%s (%s, %d records), staged %s</p>
`,
			templ.EscapeString(batch.SourceFileName),
			templ.EscapeString(batch.DetectedDialect.String()),
			batch.Len(),
			staged.StagedAt.Format("Jan 2 15:04:05")); err != nil {
			return err
		}

		if err := previewTable(pv).Render(ctx, w); err != nil {
			return err
		}

		submitAttrs := ""
		if inFlight {
			submitAttrs = " disabled"
		}
		if _, err := fmt.Fprintf(w, `<div class="staged-actions">
<form method="post" action="/import/submit">
<button type="submit" class="btn btn-primary"%s>Import %d records</button>
</form>
<form method="post" action="/import/discard">
<button type="submit" class="btn btn-secondary">Discard</button>
</form>
</div>
`, submitAttrs, batch.Len()); err != nil {
			return err
		}
		if inFlight {
			if _, err := io.WriteString(w, `<p class="hint">A submission is in progress.</p>
`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>
`)
		return err
	})
}

// previewTable renders the first records of the staged batch plus a
// remainder line. Columns are fixed regardless of what the file held.
func previewTable(pv roster.Preview) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="data-table preview-table">
<thead><tr>`); err != nil {
			return err
		}
		for _, col := range previewColumns {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, col); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, rec := range pv.Records {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`,
				templ.EscapeString(rec.Name),
				templ.EscapeString(rec.PhoneNumber),
				templ.EscapeString(rec.Email),
				templ.EscapeString(rec.Company),
				templ.EscapeString(rec.Role)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</tbody>
</table>
`); err != nil {
			return err
		}

		if pv.Remainder > 0 {
			if _, err := fmt.Fprintf(w, `<p class="preview-remainder">and %d more records</p>
`, pv.Remainder); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResultBanner renders the outcome of a submission. The heading
// distinguishes a clean import, a partial import, and a batch where
// nothing was imported. Backend error lines are shown verbatim.
func ResultBanner(res SubmitResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		kind := "success"
		var heading string
		switch {
		case res.Imported > 0 && res.Skipped == 0:
			heading = fmt.Sprintf("Imported %d records from %s", res.Imported, res.FileName)
		case res.Imported > 0:
			kind = "notice"
			heading = fmt.Sprintf("Imported %d records from %s, skipped %d", res.Imported, res.FileName, res.Skipped)
		default:
			kind = "error"
			heading = fmt.Sprintf("No records were imported from %s", res.FileName)
		}

		if _, err := fmt.Fprintf(w, `<div class="banner banner-%s" role="status">
<p class="banner-heading">%s</p>
`, kind, templ.EscapeString(heading)); err != nil {
			return err
		}

		if len(res.Errors) > 0 {
			if _, err := io.WriteString(w, `<ul class="result-errors">
`); err != nil {
				return err
			}
			for _, line := range res.Errors {
				if _, err := fmt.Fprintf(w, `<li>%s</li>
`, templ.EscapeString(line)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul>
`); err != nil {
				return err
			}
		}

		if res.Retained {
			if _, err := io.WriteString(w, `<p class="banner-note">The batch is still staged, you can submit it again.</p>
`); err != nil {
				return err
			}
		}
		if res.RosterTotal >= 0 {
			if _, err := fmt.Fprintf(w, `<p class="banner-note">Roster now has %d employees.</p>
`, res.RosterTotal); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<a class="alert-dismiss" href="/import">Dismiss</a>
</div>
`)
		return err
	})
}

// ActivityPage renders the standalone activity listing.
func ActivityPage(events []importer.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Import Activity</h1>
<p class="hint"><a href="/import/activity/export">Export as CSV</a></p>
`); err != nil {
			return err
		}
		return ActivityTable(events).Render(ctx, w)
	})
}

// ActivityTable renders import activity entries, newest first.
func ActivityTable(events []importer.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(events) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No import activity yet.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table activity-table">
<thead><tr><th>Time</th><th>Event</th><th>File</th><th>Records</th><th>Imported</th><th>Skipped</th><th>Detail</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, e := range events {
			if _, err := fmt.Fprintf(w, `<tr class="activity-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`,
				e.Severity,
				e.At.Format("Jan 2 15:04:05"),
				templ.EscapeString(string(e.Kind)),
				templ.EscapeString(e.FileName),
				strconv.Itoa(e.Records),
				strconv.Itoa(e.Imported),
				strconv.Itoa(e.Skipped),
				templ.EscapeString(e.Detail)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	})
}
