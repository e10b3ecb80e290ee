package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/fault"
	"github.com/papapumpkin/bodygraph/internal/metrics"
	"github.com/papapumpkin/bodygraph/internal/render"
)

var contentTypes = map[string]string{
	render.JSON: "application/json",
	render.YAML: "application/yaml",
	render.TOML: "application/toml",
}

// errorBody is the JSON envelope for every failed request.
type errorBody struct {
	Error     string `json:"error"`
	Class     string `json:"class"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"status":"ok"}`+"\n")
}

func (s *Server) handleBodygraph(w http.ResponseWriter, r *http.Request) {
	format, ok := s.format(w, r)
	if !ok {
		return
	}
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	chart, err := s.charter.Request(req, s.defaultZone)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, r, format, chart.Bodygraph)
}

func (s *Server) handleBlueprint(w http.ResponseWriter, r *http.Request) {
	format, ok := s.format(w, r)
	if !ok {
		return
	}
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	bp, err := s.charter.Blueprint(req, s.defaultZone)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.write(w, r, format, bp)
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	format, ok := s.format(w, r)
	if !ok {
		return
	}
	s.write(w, r, format, s.tables)
}

// format reads the ?format= query parameter. Text is terminal-only and is
// not served.
func (s *Server) format(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.JSON
	}
	if _, ok := contentTypes[format]; !ok {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %q", render.ErrUnknownFormat, format), "validation")
		return "", false
	}
	return format, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (birth.Request, bool) {
	var req birth.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, errors.New("request body too large"), "validation")
			return req, false
		}
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err), "validation")
		return req, false
	}
	return req, true
}

// fail maps an engine error to a response. Validation errors are the
// caller's fault; anything else is ours.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if fault.IsValidation(err) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("chart failed",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
	}
	s.writeError(w, r, status, err, metrics.Class(err))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error, class string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     err.Error(),
		Class:     class,
		RequestID: RequestID(r.Context()),
	})
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, format string, v any) {
	var buf bytes.Buffer
	if err := render.Write(&buf, format, v); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(buf.Bytes())
}
