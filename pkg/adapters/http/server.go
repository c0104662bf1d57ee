package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/internal/logging"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/extraction"
	"github.com/aretw0/easel/pkg/layout"
	"github.com/aretw0/easel/pkg/workspace"
)

// Server exposes workspace operations over HTTP.
type Server struct {
	Manager *workspace.Manager
	Streams *StreamManager

	logger     *slog.Logger
	metrics    http.Handler
	extraction *extraction.Pipeline
}

// ServerOption configures the HTTP server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts a Prometheus exposition handler at /metrics.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithExtractionPipeline mounts the /extractions routes backed by the given
// pipeline. The pipeline must already be started by the caller.
func WithExtractionPipeline(p *extraction.Pipeline) ServerOption {
	return func(s *Server) {
		s.extraction = p
	}
}

// NewHandler creates the HTTP handler for a workspace manager.
func NewHandler(manager *workspace.Manager, opts ...ServerOption) http.Handler {
	server := &Server{
		Manager: manager,
		Streams: NewStreamManager(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/modes", server.GetModes)
	r.Get("/events", server.SubscribeEvents)

	r.Route("/workspaces", func(r chi.Router) {
		r.Get("/", server.ListWorkspaces)
		r.Route("/{workspaceID}", func(r chi.Router) {
			r.Get("/", server.GetWorkspace)
			r.Delete("/", server.DeleteWorkspace)
			r.Put("/mode", server.SetMode)
			r.Put("/size", server.Resize)
			r.Post("/documents", server.OpenDocument)
			r.Delete("/documents/{documentID}", server.CloseDocument)
			r.Post("/gestures", server.ApplyGesture)
			r.Post("/layout", server.ComputeLayout)
		})
	})

	if server.extraction != nil {
		r.Route("/extractions", func(r chi.Router) {
			r.Get("/", server.ListExtractions)
			r.Post("/", server.SubmitExtraction)
			r.Get("/{documentID}", server.GetExtraction)
		})
	}

	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}

// writeError maps domain sentinels to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrWorkspaceNotFound), errors.Is(err, domain.ErrDocumentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidLayoutMode):
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// broadcast publishes a non-nil diff to SSE subscribers of the workspace.
func (s *Server) broadcast(workspaceID string, diff *domain.WorkspaceDiff) {
	if diff == nil {
		return
	}
	bytes, err := json.Marshal(diff)
	if err != nil {
		s.logger.Error("Diff encode failed", "workspace_id", workspaceID, "err", err)
		return
	}
	s.Streams.Broadcast(workspaceID, string(bytes))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "easel-http",
		"version": strings.TrimSpace(easel.Version),
	})
}

// ModeInfo describes one layout mode and its interaction capabilities.
type ModeInfo struct {
	Mode             string `json:"mode"`
	SupportsDragging bool   `json:"supports_dragging"`
	SupportsResizing bool   `json:"supports_resizing"`
	CSSClassName     string `json:"css_class_name"`
}

// GetModes handles the GET /modes request.
func (s *Server) GetModes(w http.ResponseWriter, r *http.Request) {
	modes := layout.Modes()
	infos := make([]ModeInfo, len(modes))
	for i, m := range modes {
		infos[i] = ModeInfo{
			Mode:             m.String(),
			SupportsDragging: m.SupportsDragging(),
			SupportsResizing: m.SupportsResizing(),
			CSSClassName:     m.CSSClassName(),
		}
	}
	s.writeJSON(w, http.StatusOK, infos)
}

// ListWorkspaces handles the GET /workspaces request.
func (s *Server) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Manager.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"workspaces": ids})
}

// GetWorkspace handles the GET /workspaces/{workspaceID} request.
// Unknown workspaces are created empty, mirroring first-visit behavior.
func (s *Server) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	state, err := s.Manager.LoadOrCreate(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

// DeleteWorkspace handles the DELETE /workspaces/{workspaceID} request.
func (s *Server) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	if err := s.Manager.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ensure materializes the workspace before a mutation, mirroring the
// first-visit behavior of GetWorkspace. Reports whether the caller may
// proceed; on failure the error response has already been written.
func (s *Server) ensure(w http.ResponseWriter, r *http.Request, id string) bool {
	if _, err := s.Manager.LoadOrCreate(r.Context(), id); err != nil {
		s.writeError(w, err)
		return false
	}
	return true
}

// SetMode handles the PUT /workspaces/{workspaceID}/mode request.
func (s *Server) SetMode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	var body struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !s.ensure(w, r, id) {
		return
	}

	state, diff, err := s.Manager.SetMode(r.Context(), id, body.Mode)
	if err != nil {
		s.logger.Warn("SetMode failed", "workspace_id", id, "mode", body.Mode, "err", err)
		s.writeError(w, err)
		return
	}
	s.broadcast(id, diff)
	s.writeJSON(w, http.StatusOK, state)
}

// Resize handles the PUT /workspaces/{workspaceID}/size request.
func (s *Server) Resize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	var body struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if body.Width < 0 || body.Height < 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "negative workspace dimensions"})
		return
	}
	if !s.ensure(w, r, id) {
		return
	}

	state, diff, err := s.Manager.Resize(r.Context(), id, domain.NewDimensions(body.Width, body.Height))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.broadcast(id, diff)
	s.writeJSON(w, http.StatusOK, state)
}

// OpenDocument handles the POST /workspaces/{workspaceID}/documents request.
func (s *Server) OpenDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	var doc domain.DocumentLayoutInfo
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if doc.ID == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}
	if !s.ensure(w, r, id) {
		return
	}

	state, diff, err := s.Manager.OpenDocument(r.Context(), id, doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.broadcast(id, diff)
	s.writeJSON(w, http.StatusCreated, state)
}

// CloseDocument handles the DELETE /workspaces/{workspaceID}/documents/{documentID} request.
func (s *Server) CloseDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	docID := domain.DocumentCaddyID(chi.URLParam(r, "documentID"))

	state, diff, err := s.Manager.CloseDocument(r.Context(), id, docID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.broadcast(id, diff)
	s.writeJSON(w, http.StatusOK, state)
}

// ApplyGesture handles the POST /workspaces/{workspaceID}/gestures request.
func (s *Server) ApplyGesture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	var g workspace.Gesture
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if g.Action != layout.ActionDrag && g.Action != layout.ActionResize {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown gesture action: %q", g.Action)})
		return
	}
	if !s.ensure(w, r, id) {
		return
	}

	state, diff, err := s.Manager.ApplyGesture(r.Context(), id, g)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.broadcast(id, diff)
	s.writeJSON(w, http.StatusOK, state)
}

// LayoutResponse is the payload returned by a layout computation.
type LayoutResponse struct {
	Mode      string                        `json:"mode"`
	CSSClass  string                        `json:"css_class"`
	Documents []domain.DocumentLayoutResult `json:"documents"`
}

// ComputeLayout handles the POST /workspaces/{workspaceID}/layout request.
func (s *Server) ComputeLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	var body struct {
		ActiveDocumentID domain.DocumentCaddyID `json:"active_document_id,omitempty"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}
	if !s.ensure(w, r, id) {
		return
	}

	results, mode, err := s.Manager.Layout(r.Context(), id, body.ActiveDocumentID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, LayoutResponse{
		Mode:      mode.String(),
		CSSClass:  mode.CSSClassName(),
		Documents: results,
	})
}

// SubmitExtraction handles the POST /extractions request. The document body
// travels inline; the pipeline processes it in the background, so the reply
// is 202 with the Pending status.
func (s *Server) SubmitExtraction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DocumentID  domain.DocumentCaddyID `json:"document_id"`
		ContentType string                 `json:"content_type"`
		Content     string                 `json:"content"`
		Options     map[string]any         `json:"options,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if body.DocumentID == "" || body.ContentType == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document_id and content_type are required"})
		return
	}
	opts, err := extraction.DecodeOptions(body.Options)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.extraction.Submit(body.DocumentID, body.ContentType, []byte(body.Content), opts); err != nil {
		s.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusAccepted, s.extraction.Status(body.DocumentID))
}

// GetExtraction handles the GET /extractions/{documentID} request.
func (s *Server) GetExtraction(w http.ResponseWriter, r *http.Request) {
	docID := domain.DocumentCaddyID(chi.URLParam(r, "documentID"))
	s.writeJSON(w, http.StatusOK, s.extraction.Status(docID))
}

// ListExtractions handles the GET /extractions request.
func (s *Server) ListExtractions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"extractions": s.extraction.Statuses()})
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // WorkspaceID -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

func (sm *StreamManager) Subscribe(workspaceID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[workspaceID]; !ok {
		sm.subscribers[workspaceID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[workspaceID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[workspaceID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, workspaceID)
			}
		}
	}
}

func (sm *StreamManager) Broadcast(workspaceID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if subs, ok := sm.subscribers[workspaceID]; ok {
		for ch := range subs {
			select {
			case ch <- msg:
			default:
				// Drop message if channel is full (slow client)
			}
		}
	}
}

// SubscribeEvents handles the GET /events request (SSE). Clients pass the
// workspace to follow as ?workspace_id=; each mutation's diff arrives as one
// data frame.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	workspaceID := r.URL.Query().Get("workspace_id")
	if workspaceID == "" {
		http.Error(w, "workspace_id query parameter is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	s.logger.Info("SSE: Subscribing to workspace updates", "workspace_id", workspaceID)

	ch, cancel := s.Streams.Subscribe(workspaceID)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE client disconnected", "workspace_id", workspaceID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
