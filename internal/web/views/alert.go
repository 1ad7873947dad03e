package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrorAlert renders a dismissible inline error with the remediation
// hint and support code. dismissPath is where the close link points;
// empty hides the link.
func ErrorAlert(message, action, code, dismissPath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="alert alert-error" role="alert">
<p class="alert-message">%s</p>`, templ.EscapeString(message)); err != nil {
			return err
		}
		if action != "" {
			if _, err := fmt.Fprintf(w, `
<p class="alert-action">%s</p>`, templ.EscapeString(action)); err != nil {
				return err
			}
		}
		if code != "" {
			if _, err := fmt.Fprintf(w, `
<p class="alert-code">Code: %s</p>`, templ.EscapeString(code)); err != nil {
				return err
			}
		}
		if dismissPath != "" {
			if _, err := fmt.Fprintf(w, `
<a class="alert-dismiss" href="%s">Dismiss</a>`, templ.EscapeString(dismissPath)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `
</div>`)
		return err
	})
}

// InfoAlert renders a neutral inline notice.
func InfoAlert(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="alert alert-info" role="status"><p class="alert-message">%s</p></div>`,
			templ.EscapeString(message))
		return err
	})
}
