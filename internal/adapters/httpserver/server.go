package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/satvikkitm/c-mgmtsystm/internal/domain"
	"github.com/satvikkitm/c-mgmtsystm/internal/usecase"
)

type Server struct {
	mux        *http.ServeMux
	complaints *usecase.ComplaintUC
	export     *usecase.ExportUC
}

func New(c *usecase.ComplaintUC, e *usecase.ExportUC) http.Handler {
	s := &Server{mux: http.NewServeMux(), complaints: c, export: e}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/api/complaints", s.apiComplaints)
	s.mux.HandleFunc("/api/complaints/", s.apiComplaintByID)
	s.mux.HandleFunc("/api/complaints/export", s.apiExportCSV)
	s.mux.HandleFunc("/api/complaints/export.xlsx", s.apiExportXLSX)
	s.mux.HandleFunc("/api/machine-types", s.apiMachineTypes)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func (s *Server) apiMachineTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, domain.MachineTypes)
}

func filterFromQuery(r *http.Request) domain.Filter {
	q := r.URL.Query()
	return domain.Filter{
		Search: q.Get("q"),
		Date:   q.Get("date"),
		Status: q.Get("status"),
	}
}

func (s *Server) apiComplaints(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.complaints.List(r.Context(), filterFromQuery(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var form usecase.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "json", 400)
			return
		}
		c, err := s.complaints.Create(r.Context(), form)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 201, c)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiComplaintByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/complaints/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "id", 400)
		return
	}
	switch r.Method {
	case http.MethodGet:
		c, err := s.complaints.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, c)
	case http.MethodPut:
		var form usecase.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "json", 400)
			return
		}
		c, err := s.complaints.Update(r.Context(), id, form)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, c)
	case http.MethodDelete:
		if err := s.complaints.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(204)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiExportCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	body, name, err := s.export.CSV(r.Context(), filterFromQuery(r), q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	_, _ = w.Write(body)
}

func (s *Server) apiExportXLSX(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	body, name, err := s.export.XLSX(r.Context(), filterFromQuery(r), q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, 422, map[string]any{"error": "validation", "fields": ve.Fields})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, 404, map[string]any{"error": "not found"})
		return
	}
	log.Error().Err(err).Msg("store")
	writeJSON(w, 500, map[string]any{"error": "store"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
