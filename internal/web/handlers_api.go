package web

// handlers_api.go holds the JSON proxies over the backend client. Each
// handler is deliberately thin: decode, call the client, map errors,
// encode. Anything smarter belongs in the client or the backend.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/auditdesk/auditdesk/internal/backend"
)

// backendErrorStatus picks the response status for a failed backend
// call: the backend's own status when it answered, 502 when it never
// did.
func backendErrorStatus(err error) int {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

// decodeBody parses a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// requireID extracts the {id} route parameter.
func requireID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return "", false
	}
	return id, true
}

// ============================================================================
// Employees
// ============================================================================

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.backend.ListEmployees(r.Context())
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	employee, err := s.backend.GetEmployee(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee backend.Employee
	if !decodeBody(w, r, &employee) {
		return
	}
	created, err := s.backend.CreateEmployee(r.Context(), employee)
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	var employee backend.Employee
	if !decodeBody(w, r, &employee) {
		return
	}
	updated, err := s.backend.UpdateEmployee(r.Context(), id, employee)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ============================================================================
// Call Sessions
// ============================================================================

func (s *Server) handleListCalls(w http.ResponseWriter, r *http.Request) {
	calls, err := s.backend.ListCallSessions(r.Context())
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, calls)
}

func (s *Server) handleGetCall(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	call, err := s.backend.GetCallSession(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "call session not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, call)
}

// ============================================================================
// Consultations
// ============================================================================

func (s *Server) handleListConsultations(w http.ResponseWriter, r *http.Request) {
	consultations, err := s.backend.ListConsultations(r.Context())
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, consultations)
}

func (s *Server) handleGetConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	consultation, err := s.backend.GetConsultation(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "consultation not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, consultation)
}

func (s *Server) handleCreateConsultation(w http.ResponseWriter, r *http.Request) {
	var consultation backend.Consultation
	if !decodeBody(w, r, &consultation) {
		return
	}
	created, err := s.backend.CreateConsultation(r.Context(), consultation)
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	var consultation backend.Consultation
	if !decodeBody(w, r, &consultation) {
		return
	}
	updated, err := s.backend.UpdateConsultation(r.Context(), id, consultation)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "consultation not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ============================================================================
// Processes
// ============================================================================

func (s *Server) handleListProcesses(w http.ResponseWriter, r *http.Request) {
	processes, err := s.backend.ListProcesses(r.Context())
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, processes)
}

func (s *Server) handleGetProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	process, err := s.backend.GetProcess(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "process not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, process)
}

func (s *Server) handleCreateProcess(w http.ResponseWriter, r *http.Request) {
	var process backend.Process
	if !decodeBody(w, r, &process) {
		return
	}
	created, err := s.backend.CreateProcess(r.Context(), process)
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateProcess(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	var process backend.Process
	if !decodeBody(w, r, &process) {
		return
	}
	updated, err := s.backend.UpdateProcess(r.Context(), id, process)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "process not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ============================================================================
// Reports
// ============================================================================

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.backend.ListReports(r.Context())
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	report, err := s.backend.GetReport(r.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var report backend.Report
	if !decodeBody(w, r, &report) {
		return
	}
	created, err := s.backend.CreateReport(r.Context(), report)
	if err != nil {
		s.respondError(w, r, err, backendErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
