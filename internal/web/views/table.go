package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ResourcePageParams drives the generic resource table page.
type ResourcePageParams struct {
	Label   string
	Columns []string
	Rows    [][]string
	Alert   templ.Component
}

// ResourceTable renders a read-only table over one backend resource.
// When the fetch failed the page still renders, with an alert instead
// of rows.
func ResourceTable(p ResourcePageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
`, templ.EscapeString(p.Label)); err != nil {
			return err
		}

		if p.Alert != nil {
			if err := p.Alert.Render(ctx, w); err != nil {
				return err
			}
			return nil
		}

		if len(p.Rows) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">No %s yet.</p>
`, templ.EscapeString(p.Label))
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table">
<thead><tr>`); err != nil {
			return err
		}
		for _, col := range p.Columns {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, templ.EscapeString(col)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, row := range p.Rows {
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			for _, cell := range row {
				if _, err := fmt.Fprintf(w, `<td>%s</td>`, templ.EscapeString(cell)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	})
}
