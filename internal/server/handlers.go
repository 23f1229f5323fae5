package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-preview/internal/pipeline"
	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/schemas"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

// maxBodyBytes bounds request bodies; photos arrive inline as data URIs
const maxBodyBytes = 8 << 20

// RenderRequest is the body of every POST /render* and /export/pdf request
type RenderRequest struct {
	Resume  json.RawMessage `json:"resume"`
	Theme   json.RawMessage `json:"theme,omitempty"`
	Labels  string          `json:"labels,omitempty" validate:"omitempty,oneof=en de"`
	Layouts []string        `json:"layouts,omitempty" validate:"omitempty,max=3,dive,oneof=classic modern minimal"`
}

// renderInput is a decoded and validated RenderRequest
type renderInput struct {
	resume  *types.Resume
	theme   types.ThemeConfig
	opts    rendering.Options
	layouts []theme.Layout
}

// ThemesResponse lists the choices a theme picker offers
type ThemesResponse struct {
	Colors      []theme.Option    `json:"colors"`
	Fonts       []theme.Option    `json:"fonts"`
	Layouts     []theme.Option    `json:"layouts"`
	Proficiency []string          `json:"proficiency_levels"`
	Defaults    types.ThemeConfig `json:"defaults"`
}

// VariantsResponse is the response for /render/variants
type VariantsResponse struct {
	Variants []pipeline.Variant `json:"variants"`
}

// DocumentResponse wraps a document rendered from a stored record
type DocumentResponse struct {
	ResumeID string          `json:"resume_id"`
	Pages    int             `json:"pages"`
	Document *types.Document `json:"document"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleThemes returns the theme presets
func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ThemesResponse{
		Colors:      theme.PresetColors,
		Fonts:       theme.FontOptions,
		Layouts:     theme.LayoutOptions,
		Proficiency: types.ProficiencyLevels,
		Defaults:    theme.DefaultConfig(),
	})
}

// handleRender renders the posted record to a document tree
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeRenderRequest(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	doc := rendering.RenderResume(in.resume, in.theme, in.opts)
	w.Header().Set("X-Resume-Pages", strconv.Itoa(rendering.EstimatePages(doc)))
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleRenderHTML renders the posted record to a standalone HTML page
func (s *Server) handleRenderHTML(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeRenderRequest(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	var buf bytes.Buffer
	if err := rendering.WriteHTML(&buf, rendering.RenderResume(in.resume, in.theme, in.opts)); err != nil {
		s.failure(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// handleRenderVariants renders the posted record once per layout
func (s *Server) handleRenderVariants(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeRenderRequest(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	variants, err := pipeline.RenderVariants(r.Context(), in.resume, in.theme, in.layouts, pipeline.Options{Render: in.opts})
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, VariantsResponse{Variants: variants})
}

// handleExportPDF renders the posted record and prints it to PDF
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		s.failure(w, &ErrUnavailable{Feature: "PDF export"})
		return
	}

	in, err := s.decodeRenderRequest(w, r)
	if err != nil {
		s.failure(w, err)
		return
	}

	html, err := rendering.RenderHTML(rendering.RenderResume(in.resume, in.theme, in.opts))
	if err != nil {
		s.failure(w, err)
		return
	}
	pdf, err := s.exporter.Export(r.Context(), html)
	if err != nil {
		s.failure(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleResumeDocument renders a stored record with its stored theme.
// The layout query parameter overrides the stored layout; format is json (default) or html.
func (s *Server) handleResumeDocument(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "html" {
		s.failure(w, &ErrValidation{Field: "format", Message: "must be json or html"})
		return
	}
	labels, ok := rendering.LabelsFor(r.URL.Query().Get("labels"))
	if !ok {
		s.failure(w, &ErrValidation{Field: "labels", Message: "must be en or de"})
		return
	}

	id, resume, err := s.loadResume(r)
	if err != nil {
		s.failure(w, err)
		return
	}

	cfg := rendering.ThemeFor(resume, nil)
	if layout := r.URL.Query().Get("layout"); layout != "" {
		cfg.Layout = layout
	}
	opts := s.render
	if r.URL.Query().Has("labels") {
		opts.Labels = labels
	}
	doc := rendering.RenderResume(resume, cfg, opts)

	if format == "html" {
		var buf bytes.Buffer
		if err := rendering.WriteHTML(&buf, doc); err != nil {
			s.failure(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
		return
	}

	s.jsonResponse(w, http.StatusOK, DocumentResponse{
		ResumeID: id.String(),
		Pages:    rendering.EstimatePages(doc),
		Document: doc,
	})
}

// handleAnalyze asks the suggestion service to score a stored record against a job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.suggestions == nil {
		s.errorResponse(w, http.StatusNotImplemented, "suggestions are not configured")
		return
	}

	id, err := parseResumeID(r)
	if err != nil {
		s.failure(w, err)
		return
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.failure(w, validationError(err))
		return
	}

	report, err := s.suggestions.Analyze(r.Context(), id, req)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleApplySuggestion applies one suggestion, then re-fetches and re-renders the record
func (s *Server) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	if s.suggestions == nil {
		s.errorResponse(w, http.StatusNotImplemented, "suggestions are not configured")
		return
	}

	id, err := parseResumeID(r)
	if err != nil {
		s.failure(w, err)
		return
	}
	suggestionID := r.PathValue("suggestion_id")
	if suggestionID == "" {
		s.failure(w, &ErrValidation{Field: "suggestion_id", Message: "required"})
		return
	}

	if err := s.suggestions.Apply(r.Context(), id, suggestionID); err != nil {
		s.failure(w, err)
		return
	}

	_, resume, err := s.loadResume(r)
	if err != nil {
		s.failure(w, err)
		return
	}
	doc := rendering.RenderResume(resume, rendering.ThemeFor(resume, nil), s.render)
	s.jsonResponse(w, http.StatusOK, DocumentResponse{
		ResumeID: id.String(),
		Pages:    rendering.EstimatePages(doc),
		Document: doc,
	})
}

// decodeRenderRequest reads, validates and decodes a RenderRequest
func (s *Server) decodeRenderRequest(w http.ResponseWriter, r *http.Request) (*renderInput, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}

	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if isAbsent(req.Resume) {
		return nil, &ErrValidation{Field: "resume", Message: "required"}
	}

	if err := schemas.ValidateResume(req.Resume); err != nil {
		return nil, err
	}
	var resume types.Resume
	if err := json.Unmarshal(req.Resume, &resume); err != nil {
		return nil, &ErrValidation{Field: "resume", Message: err.Error()}
	}

	in := &renderInput{resume: &resume, opts: s.render}

	var override *types.ThemeConfig
	if !isAbsent(req.Theme) {
		if err := schemas.ValidateTheme(req.Theme); err != nil {
			return nil, err
		}
		var cfg types.ThemeConfig
		if err := json.Unmarshal(req.Theme, &cfg); err != nil {
			return nil, &ErrValidation{Field: "theme", Message: err.Error()}
		}
		if err := theme.Validate(cfg); err != nil {
			return nil, &ErrValidation{Field: "theme", Message: err.Error()}
		}
		override = &cfg
	}
	in.theme = rendering.ThemeFor(&resume, override)

	if req.Labels != "" {
		in.opts.Labels, _ = rendering.LabelsFor(req.Labels)
	}
	for _, layout := range req.Layouts {
		in.layouts = append(in.layouts, theme.Layout(layout))
	}
	return in, nil
}

// loadResume fetches the record named by the {id} path value
func (s *Server) loadResume(r *http.Request) (uuid.UUID, *types.Resume, error) {
	id, err := parseResumeID(r)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if s.records == nil {
		return id, nil, &ErrUnavailable{Feature: "resume storage"}
	}

	resume, err := s.records.GetResume(r.Context(), id)
	if err != nil {
		return id, nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if resume == nil {
		return id, nil, &ErrResumeNotFound{ID: id}
	}
	return id, resume, nil
}

func parseResumeID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid resume ID format"}
	}
	return id, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// validationError converts the first validator failure into an ErrValidation
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// schemaFields returns the field list of a schema failure, or nil
func schemaFields(err error) []schemas.FieldError {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return schemaErr.Errors
	}
	return nil
}
