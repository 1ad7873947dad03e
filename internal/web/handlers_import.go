package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/auditdesk/auditdesk/internal/importer"
	"github.com/auditdesk/auditdesk/internal/roster"
	"github.com/auditdesk/auditdesk/internal/web/views"
)

// renderImportError answers a failed import operation. API and HTMX
// clients get the usual error response; browsers get the import page
// re-rendered with an inline alert so the form survives.
func (s *Server) renderImportError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	if isHTMX(r) || wantsJSON(r) {
		s.respondError(w, r, err, statusCode)
		return
	}

	userMsg := importer.MapError(err)
	logError(r, err, statusCode, userMsg.Code)

	p := s.importPageParams()
	p.Alert = views.ErrorAlert(userMsg.Message, userMsg.Action, userMsg.Code, "/import")
	s.renderPage(w, r, statusCode, "Import", "import", views.ImportPage(p))
}

// handleImportFile stages an uploaded roster file. The dialect is
// decided from the file name alone, so unsupported extensions are
// rejected before the file content is read.
func (s *Server) handleImportFile(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.renderImportError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderImportError(w, r, errors.New("no file provided"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if roster.DetectDialect(header.Filename) == roster.DialectUnsupported {
		s.renderImportError(w, r, fmt.Errorf("%w: %q", roster.ErrUnsupportedFormat, header.Filename), http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.renderImportError(w, r, fmt.Errorf("reading upload: %w", err), http.StatusBadRequest)
		return
	}

	staged, err := s.importer.Stage(r.Context(), header.Filename, content)
	if err != nil {
		s.renderImportError(w, r, err, http.StatusBadRequest)
		return
	}

	if wantsJSON(r) {
		pv := staged.Batch.Preview()
		writeJSON(w, http.StatusOK, map[string]any{
			"batch_id": staged.ID,
			"file":     staged.Batch.SourceFileName,
			"dialect":  staged.Batch.DetectedDialect,
			"records":  staged.Batch.Len(),
			"preview":  pv,
		})
		return
	}

	// Staged state lives server-side, so a redirect survives refresh
	// without resubmitting the form.
	http.Redirect(w, r, "/import", http.StatusSeeOther)
}

// handleImportSubmit submits the staged batch and renders the result
// banner. A failed submission still renders a result: everything
// skipped, one error line, batch retained.
func (s *Server) handleImportSubmit(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.importer.Submit(r.Context())
	if err != nil {
		var subErr *importer.SubmissionError
		switch {
		case errors.Is(err, importer.ErrSubmitInFlight):
			s.renderImportError(w, r, err, http.StatusConflict)
			return
		case errors.Is(err, importer.ErrNothingStaged):
			s.renderImportError(w, r, err, http.StatusBadRequest)
			return
		case errors.As(err, &subErr):
			// outcome carries the synthetic result; fall through
		default:
			s.renderImportError(w, r, err, http.StatusBadGateway)
			return
		}
	}

	result := views.SubmitResult{
		FileName:    outcome.Staged.Batch.SourceFileName,
		Imported:    outcome.Result.Imported,
		Skipped:     outcome.Result.Skipped,
		Errors:      outcome.Result.Errors,
		Retained:    outcome.Retained,
		RosterTotal: -1,
	}

	// A successful import changes the roster, so refetch it for the
	// banner. Best-effort: a miss just hides the count.
	if outcome.Result.Imported > 0 {
		if employees, fetchErr := s.backend.ListEmployees(r.Context()); fetchErr == nil {
			result.RosterTotal = len(employees)
		}
	}

	status := http.StatusOK
	if outcome.Retained {
		status = http.StatusBadGateway
	}

	if wantsJSON(r) {
		writeJSON(w, status, map[string]any{
			"imported":     result.Imported,
			"skipped":      result.Skipped,
			"errors":       result.Errors,
			"retained":     result.Retained,
			"roster_total": result.RosterTotal,
		})
		return
	}

	p := s.importPageParams()
	p.Result = &result
	s.renderPage(w, r, status, "Import", "import", views.ImportPage(p))
}

// handleImportDiscard abandons the staged batch.
func (s *Server) handleImportDiscard(w http.ResponseWriter, r *http.Request) {
	prev := s.importer.Discard()

	if wantsJSON(r) {
		resp := map[string]any{"discarded": prev != nil}
		if prev != nil {
			resp["file"] = prev.Batch.SourceFileName
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	http.Redirect(w, r, "/import", http.StatusSeeOther)
}

// handleImportTemplate serves the sample CSV documenting the
// recognized headers.
func (s *Server) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, roster.TemplateFileName))
	w.Write(roster.Template())
}

// handleImportActivity lists recent import activity.
func (s *Server) handleImportActivity(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 50)
	events := s.importer.Activity().Recent(limit)

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, events)
		return
	}

	s.renderPage(w, r, http.StatusOK, "Import Activity", "import", views.ActivityPage(events))
}

// handleImportActivityExport downloads the activity log as CSV.
func (s *Server) handleImportActivityExport(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("import_activity_%s.csv", timestamp)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	// Past this point headers are sent, so failures can only be logged.
	if err := s.importer.Activity().WriteCSV(w); err != nil {
		logError(r, err, http.StatusOK, "")
	}
}

// ImportStatus reports the staged batch and gate state for API
// consumers and the submit button polling.
type ImportStatus struct {
	Staged         bool   `json:"staged"`
	FileName       string `json:"file_name,omitempty"`
	Dialect        string `json:"dialect,omitempty"`
	Records        int    `json:"records,omitempty"`
	StagedAt       string `json:"staged_at,omitempty"`
	SubmitInFlight bool   `json:"submit_in_flight"`
}

// handleImportStatus returns the current import flow state.
func (s *Server) handleImportStatus(w http.ResponseWriter, r *http.Request) {
	status := ImportStatus{SubmitInFlight: s.importer.SubmitInFlight()}
	if staged := s.importer.Current(); staged != nil {
		status.Staged = true
		status.FileName = staged.Batch.SourceFileName
		status.Dialect = staged.Batch.DetectedDialect.String()
		status.Records = staged.Batch.Len()
		status.StagedAt = staged.StagedAt.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, status)
}
