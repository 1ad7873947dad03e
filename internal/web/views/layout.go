// Package views renders the server's HTML. Components are built
// directly on the templ runtime so handlers can compose and test them
// like any other value.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// NavItem is one entry in the top navigation.
type NavItem struct {
	Key   string
	Label string
	Path  string
}

// Layout wraps body in the page shell: head, stylesheet, top bar with
// navigation, and footer. active marks the highlighted nav entry.
func Layout(title, active string, nav []NavItem, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar">
<a class="brand" href="/">AuditDesk</a>
<nav class="nav">`, templ.EscapeString(title))
		if err != nil {
			return err
		}

		for _, item := range nav {
			class := "nav-link"
			if item.Key == active {
				class = "nav-link active"
			}
			if _, err := fmt.Fprintf(w, `<a class="%s" href="%s">%s</a>`,
				class, templ.EscapeString(item.Path), templ.EscapeString(item.Label)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</nav>
</header>
<main class="content">
`); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `
</main>
<footer class="footer">Employee roster and call review console</footer>
</body>
</html>`)
		return err
	})
}
