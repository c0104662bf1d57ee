package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/layout"
	"github.com/aretw0/easel/pkg/workspace"
)

// LayoutResponse provides a unified structure across adapters.
type LayoutResponse struct {
	Mode      string                        `json:"mode" jsonschema_description:"The committed layout mode"`
	CSSClass  string                        `json:"css_class" jsonschema_description:"CSS class for the mode's container"`
	Documents []domain.DocumentLayoutResult `json:"documents" jsonschema_description:"Computed placement per document"`
}

// WorkspaceResponse is the workspace snapshot returned by mutating tools.
type WorkspaceResponse struct {
	Workspace *domain.WorkspaceState `json:"workspace" jsonschema_description:"The workspace state after the operation"`
}

// Server wraps the Easel Engine and exposes it as an MCP Server.
type Server struct {
	engine    *easel.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *easel.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("easel-mcp", strings.TrimSpace(easel.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Baggage, Sentry-Trace")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: compute_layout
	layoutTool := mcp.NewTool("compute_layout",
		mcp.WithDescription("Compute document placements for a workspace in its current layout mode."),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("The workspace to lay out")),
		mcp.WithString("active_document_id", mcp.Description("Overrides which document is treated as active (optional)")),
		mcp.WithOutputSchema[LayoutResponse](),
	)
	s.mcpServer.AddTool(layoutTool, mcp.NewStructuredToolHandler(s.handleComputeLayout))

	// TOOL: open_document
	openTool := mcp.NewTool("open_document",
		mcp.WithDescription("Open a document in a workspace."),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("The target workspace")),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("The document to open")),
		mcp.WithBoolean("active", mcp.Description("Mark the document active (optional)")),
		mcp.WithOutputSchema[WorkspaceResponse](),
	)
	s.mcpServer.AddTool(openTool, mcp.NewStructuredToolHandler(s.handleOpenDocument))

	// TOOL: close_document
	closeTool := mcp.NewTool("close_document",
		mcp.WithDescription("Close a document in a workspace."),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("The target workspace")),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("The document to close")),
		mcp.WithOutputSchema[WorkspaceResponse](),
	)
	s.mcpServer.AddTool(closeTool, mcp.NewStructuredToolHandler(s.handleCloseDocument))

	// TOOL: set_layout_mode
	modeTool := mcp.NewTool("set_layout_mode",
		mcp.WithDescription("Switch a workspace to a layout mode: stacked, grid or freeform."),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("The target workspace")),
		mcp.WithString("mode", mcp.Required(), mcp.Description("Mode token (case-sensitive)")),
		mcp.WithOutputSchema[WorkspaceResponse](),
	)
	s.mcpServer.AddTool(modeTool, mcp.NewStructuredToolHandler(s.handleSetMode))

	// TOOL: apply_gesture
	gestureTool := mcp.NewTool("apply_gesture",
		mcp.WithDescription("Apply a drag or resize gesture to a document. Switches to freeform when the current mode does not allow the action."),
		mcp.WithString("workspace_id", mcp.Required(), mcp.Description("The target workspace")),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("The document being moved or resized")),
		mcp.WithString("action", mcp.Required(), mcp.Description("'drag' or 'resize'")),
		mcp.WithNumber("x", mcp.Description("New left edge in workspace coordinates")),
		mcp.WithNumber("y", mcp.Description("New top edge in workspace coordinates")),
		mcp.WithNumber("width", mcp.Description("New width (resize only)")),
		mcp.WithNumber("height", mcp.Description("New height (resize only)")),
		mcp.WithOutputSchema[WorkspaceResponse](),
	)
	s.mcpServer.AddTool(gestureTool, mcp.NewStructuredToolHandler(s.handleApplyGesture))

	// TOOL: list_modes
	s.mcpServer.AddTool(mcp.NewTool("list_modes",
		mcp.WithDescription("List the available layout modes and their interaction capabilities."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type modeInfo struct {
			Mode             string `json:"mode"`
			SupportsDragging bool   `json:"supports_dragging"`
			SupportsResizing bool   `json:"supports_resizing"`
			CSSClassName     string `json:"css_class_name"`
		}
		infos := make([]modeInfo, 0, 3)
		for _, m := range s.engine.Modes() {
			infos = append(infos, modeInfo{
				Mode:             m.String(),
				SupportsDragging: m.SupportsDragging(),
				SupportsResizing: m.SupportsResizing(),
				CSSClassName:     m.CSSClassName(),
			})
		}
		jsonBytes, _ := json.Marshal(infos)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleComputeLayout(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (LayoutResponse, error) {
	workspaceID, _ := args["workspace_id"].(string)
	activeID, _ := args["active_document_id"].(string)

	results, mode, err := s.engine.Layout(ctx, workspaceID, domain.DocumentCaddyID(activeID))
	if err != nil {
		return LayoutResponse{}, fmt.Errorf("layout failed: %w", err)
	}

	return LayoutResponse{
		Mode:      mode.String(),
		CSSClass:  mode.CSSClassName(),
		Documents: results,
	}, nil
}

func (s *Server) handleOpenDocument(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WorkspaceResponse, error) {
	workspaceID, _ := args["workspace_id"].(string)
	documentID, _ := args["document_id"].(string)
	active, _ := args["active"].(bool)

	state, err := s.engine.Open(ctx, workspaceID, domain.DocumentLayoutInfo{
		ID:       domain.DocumentCaddyID(documentID),
		IsActive: active,
	})
	if err != nil {
		return WorkspaceResponse{}, fmt.Errorf("open failed: %w", err)
	}
	return WorkspaceResponse{Workspace: state}, nil
}

func (s *Server) handleCloseDocument(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WorkspaceResponse, error) {
	workspaceID, _ := args["workspace_id"].(string)
	documentID, _ := args["document_id"].(string)

	state, err := s.engine.Close(ctx, workspaceID, domain.DocumentCaddyID(documentID))
	if err != nil {
		return WorkspaceResponse{}, fmt.Errorf("close failed: %w", err)
	}
	return WorkspaceResponse{Workspace: state}, nil
}

func (s *Server) handleSetMode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WorkspaceResponse, error) {
	workspaceID, _ := args["workspace_id"].(string)
	mode, _ := args["mode"].(string)

	state, err := s.engine.SetMode(ctx, workspaceID, mode)
	if err != nil {
		return WorkspaceResponse{}, fmt.Errorf("set mode failed: %w", err)
	}
	return WorkspaceResponse{Workspace: state}, nil
}

func (s *Server) handleApplyGesture(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WorkspaceResponse, error) {
	workspaceID, _ := args["workspace_id"].(string)
	documentID, _ := args["document_id"].(string)
	action, _ := args["action"].(string)

	act := layout.UserAction(action)
	if act != layout.ActionDrag && act != layout.ActionResize {
		return WorkspaceResponse{}, fmt.Errorf("unknown gesture action: %q", action)
	}

	g := workspace.Gesture{
		Action:     act,
		DocumentID: domain.DocumentCaddyID(documentID),
	}

	if x, okX := args["x"].(float64); okX {
		if y, okY := args["y"].(float64); okY {
			g.Position = &domain.Position{X: x, Y: y}
		}
	}
	if w, okW := args["width"].(float64); okW {
		if h, okH := args["height"].(float64); okH {
			if w < 0 || h < 0 {
				return WorkspaceResponse{}, fmt.Errorf("negative dimensions %gx%g", w, h)
			}
			dims := domain.NewDimensions(w, h)
			g.Dimensions = &dims
		}
	}

	state, err := s.engine.Gesture(ctx, workspaceID, g)
	if err != nil {
		return WorkspaceResponse{}, fmt.Errorf("gesture failed: %w", err)
	}
	return WorkspaceResponse{Workspace: state}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: easel://modes
	s.mcpServer.AddResource(mcp.NewResource("easel://modes", "Layout Mode Capabilities",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		type modeInfo struct {
			Mode             string `json:"mode"`
			SupportsDragging bool   `json:"supports_dragging"`
			SupportsResizing bool   `json:"supports_resizing"`
		}
		infos := make([]modeInfo, 0, 3)
		for _, m := range s.engine.Modes() {
			infos = append(infos, modeInfo{
				Mode:             m.String(),
				SupportsDragging: m.SupportsDragging(),
				SupportsResizing: m.SupportsResizing(),
			})
		}
		jsonBytes, _ := json.Marshal(infos)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "easel://modes",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
