package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/easel/pkg/adapters/memory"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/extraction"
	"github.com/aretw0/easel/pkg/workspace"
)

func newTestHandler(t *testing.T) (http.Handler, *workspace.Manager) {
	t.Helper()
	mgr := workspace.NewManager(memory.NewStore())
	return NewHandler(mgr), mgr
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestGetWorkspaceCreatesOnFirstVisit(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "GET", "/workspaces/ws-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state domain.WorkspaceState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "ws-1", state.WorkspaceID)
	assert.Equal(t, domain.DefaultLayoutMode, state.Mode)
	assert.Empty(t, state.Documents)
}

func TestMutationsMaterializeWorkspaceOnFirstTouch(t *testing.T) {
	// A mutation may be the first request a workspace ever sees; it must
	// not require a prior GET.
	handler, mgr := newTestHandler(t)

	w := doJSON(t, handler, "PUT", "/workspaces/ws-fresh/mode", map[string]string{"mode": "grid"})
	require.Equal(t, http.StatusOK, w.Code)

	state, err := mgr.Load(context.Background(), "ws-fresh")
	require.NoError(t, err)
	assert.Equal(t, "grid", state.Mode)
}

func TestOpenCloseDocument(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-1"})
	require.Equal(t, http.StatusCreated, w.Code)

	var state domain.WorkspaceState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	require.Len(t, state.Documents, 1)
	assert.Equal(t, domain.DocumentCaddyID("doc-1"), state.Documents[0].ID)

	w = doJSON(t, handler, "DELETE", "/workspaces/ws-1/documents/doc-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Empty(t, state.Documents)
}

func TestOpenDocumentRequiresID(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloseUnknownDocument(t *testing.T) {
	handler, _ := newTestHandler(t)

	doJSON(t, handler, "GET", "/workspaces/ws-1", nil)
	w := doJSON(t, handler, "DELETE", "/workspaces/ws-1/documents/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetModeRejectsUnknownToken(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "PUT", "/workspaces/ws-1/mode", map[string]string{"mode": "grid"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, handler, "PUT", "/workspaces/ws-1/mode", map[string]string{"mode": "mosaic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid layout mode")

	// Case sensitivity: tokens are exact.
	w = doJSON(t, handler, "PUT", "/workspaces/ws-1/mode", map[string]string{"mode": "Grid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComputeLayoutStacked(t *testing.T) {
	handler, _ := newTestHandler(t)

	doJSON(t, handler, "PUT", "/workspaces/ws-1/size", map[string]float64{"width": 1200, "height": 900})
	doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-1", IsActive: true})
	doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-2"})

	w := doJSON(t, handler, "POST", "/workspaces/ws-1/layout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LayoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stacked", resp.Mode)
	assert.Equal(t, "stacked-layout", resp.CSSClass)
	require.Len(t, resp.Documents, 2)

	active := resp.Documents[0]
	assert.Equal(t, domain.DocumentCaddyID("doc-1"), active.ID)
	assert.True(t, active.IsVisible)
	assert.Equal(t, 1000.0, active.Dimensions.Width)
	assert.Equal(t, 700.0, active.Dimensions.Height)
	assert.Equal(t, 100.0, active.Position.X)
	assert.Equal(t, 100.0, active.Position.Y)

	assert.False(t, resp.Documents[1].IsVisible)
}

func TestComputeLayoutActiveOverride(t *testing.T) {
	handler, _ := newTestHandler(t)

	doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-1", IsActive: true})
	doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-2"})

	w := doJSON(t, handler, "POST", "/workspaces/ws-1/layout", map[string]string{"active_document_id": "doc-2"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LayoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Documents[0].IsVisible)
	assert.True(t, resp.Documents[1].IsVisible)
}

func TestGestureAutoSwitchesToFreeform(t *testing.T) {
	handler, _ := newTestHandler(t)

	doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-1"})

	w := doJSON(t, handler, "POST", "/workspaces/ws-1/gestures", map[string]any{
		"action":      "drag",
		"document_id": "doc-1",
		"position":    map[string]float64{"x": 40, "y": 60},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var state domain.WorkspaceState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "freeform", state.Mode)
	require.NotNil(t, state.Document("doc-1"))
	assert.Equal(t, 40.0, state.Document("doc-1").CurrentPosition.X)
}

func TestGestureRejectsUnknownAction(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "POST", "/workspaces/ws-1/gestures", map[string]any{
		"action":      "teleport",
		"document_id": "doc-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetModes(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "GET", "/modes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var infos []ModeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 3)

	byMode := map[string]ModeInfo{}
	for _, info := range infos {
		byMode[info.Mode] = info
	}
	assert.False(t, byMode["stacked"].SupportsDragging)
	assert.False(t, byMode["grid"].SupportsResizing)
	assert.True(t, byMode["freeform"].SupportsDragging)
	assert.True(t, byMode["freeform"].SupportsResizing)
}

func TestDeleteWorkspace(t *testing.T) {
	handler, _ := newTestHandler(t)

	doJSON(t, handler, "GET", "/workspaces/ws-1", nil)
	w := doJSON(t, handler, "DELETE", "/workspaces/ws-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubscribeEventsRequiresWorkspaceID(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "GET", "/events", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeEventsReceivesDiff(t *testing.T) {
	handler, _ := newTestHandler(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest("GET", "/events?workspace_id=ws-1", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.ServeHTTP(w, req)
	}()

	// Wait for the subscription to register, then mutate the workspace.
	time.Sleep(100 * time.Millisecond)
	doJSON(t, handler, "POST", "/workspaces/ws-1/documents", domain.DocumentLayoutInfo{ID: "doc-1"})
	time.Sleep(100 * time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, "event: ping")
	assert.Contains(t, body, "doc-1")
	assert.Contains(t, body, `"opened"`)
}

func newExtractionHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := extraction.NewRegistry()
	reg.Register("text/plain", func(ctx context.Context, content []byte, opts extraction.Options) (string, error) {
		return string(content), nil
	})
	pipeline := extraction.NewPipeline(reg)
	ctx, cancel := context.WithCancel(context.Background())
	pipeline.Start(ctx)
	t.Cleanup(func() {
		cancel()
		pipeline.Wait()
	})

	mgr := workspace.NewManager(memory.NewStore())
	return NewHandler(mgr, WithExtractionPipeline(pipeline))
}

func TestSubmitExtractionAndPollStatus(t *testing.T) {
	handler := newExtractionHandler(t)

	w := doJSON(t, handler, "POST", "/extractions", map[string]any{
		"document_id":  "doc-1",
		"content_type": "text/plain",
		"content":      "preview me",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var dto extraction.StatusDTO
	require.Eventually(t, func() bool {
		resp := doJSON(t, handler, "GET", "/extractions/doc-1", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &dto))
		return dto.Status == extraction.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "preview me", dto.Preview)

	list := doJSON(t, handler, "GET", "/extractions", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "doc-1")
}

func TestSubmitExtractionValidation(t *testing.T) {
	handler := newExtractionHandler(t)

	w := doJSON(t, handler, "POST", "/extractions", map[string]any{"content": "no id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, handler, "POST", "/extractions", map[string]any{
		"document_id":  "doc-2",
		"content_type": "text/plain",
		"options":      map[string]any{"max_preview_bytes": "not a number"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractionRoutesAbsentWithoutPipeline(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := doJSON(t, handler, "GET", "/extractions/doc-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
