package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/auditdesk/auditdesk/internal/importer"
	"github.com/auditdesk/auditdesk/internal/web/views"
)

// siteNav builds the top navigation from the resource registry.
func siteNav() []views.NavItem {
	nav := make([]views.NavItem, 0, len(resources)+2)
	nav = append(nav, views.NavItem{Key: "dashboard", Label: "Dashboard", Path: "/"})
	for _, res := range resources {
		nav = append(nav, views.NavItem{Key: res.key, Label: res.label, Path: res.path})
	}
	nav = append(nav, views.NavItem{Key: "import", Label: "Import", Path: "/import"})
	return nav
}

// renderPage wraps body in the layout and writes it with the given
// status. Render errors are only logged; by then part of the page is
// usually on the wire.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, title, active string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	page := views.Layout(title+" - AuditDesk", active, siteNav(), body)
	if err := page.Render(r.Context(), w); err != nil {
		slog.Error("page render failed", "path", r.URL.Path, "error", err)
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// handleDashboard renders the landing page: staged import state,
// resource counts, and recent activity. Backend fetches are
// best-effort; an unreachable backend marks cards unavailable instead
// of failing the page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards := make([]views.ResourceCard, len(resources))
	for i, res := range resources {
		card := views.ResourceCard{Label: res.label, Path: res.path}
		rows, err := res.fetch(ctx, s.backend)
		if err == nil {
			card.Count = len(rows)
			card.Available = true
		}
		cards[i] = card
	}

	s.renderPage(w, r, http.StatusOK, "Dashboard", "dashboard", views.Dashboard(views.DashboardParams{
		Staged:    s.importer.Current(),
		InFlight:  s.importer.SubmitInFlight(),
		Resources: cards,
		Events:    s.importer.Activity().Recent(10),
	}))
}

// handleResourcePage returns a handler rendering the table page for
// one resource. A failed fetch renders the page with an alert, never a
// blank error page.
func (s *Server) handleResourcePage(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := views.ResourcePageParams{
			Label:   res.label,
			Columns: res.columns,
		}

		rows, err := res.fetch(r.Context(), s.backend)
		if err != nil {
			userMsg := importer.MapError(err)
			logError(r, err, http.StatusOK, userMsg.Code)
			params.Alert = views.ErrorAlert(userMsg.Message, userMsg.Action, userMsg.Code, "")
		} else {
			params.Rows = rows
		}

		s.renderPage(w, r, http.StatusOK, res.label, res.key, views.ResourceTable(params))
	}
}

// importPageParams snapshots the import state for rendering.
func (s *Server) importPageParams() views.ImportPageParams {
	p := views.ImportPageParams{
		InFlight: s.importer.SubmitInFlight(),
		Events:   s.importer.Activity().Recent(10),
	}
	if staged := s.importer.Current(); staged != nil {
		pv := staged.Batch.Preview()
		p.Staged = staged
		p.Preview = &pv
	}
	return p
}

// handleImportPage renders the import workflow page.
func (s *Server) handleImportPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "Import", "import", views.ImportPage(s.importPageParams()))
}
