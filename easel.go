package easel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/loam"

	loamAdapter "github.com/aretw0/easel/pkg/adapters/loam"
	"github.com/aretw0/easel/pkg/adapters/memory"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/layout"
	"github.com/aretw0/easel/pkg/ports"
	"github.com/aretw0/easel/pkg/workspace"
)

// Version identifies the library release. Binaries may override it at link time.
var Version = "0.1.0"

// Engine is the high-level entry point for the Easel library.
// It wraps the workspace manager and provides a simplified API for consumers.
type Engine struct {
	manager *workspace.Manager
	loader  ports.WorkspaceLoader
	store   ports.WorkspaceStore
	locker  ports.DistributedLocker
	sink    func(any)
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom WorkspaceLoader, bypassing the default Loam initialization.
func WithLoader(l ports.WorkspaceLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithStore injects a custom WorkspaceStore (default: in-memory).
func WithStore(s ports.WorkspaceStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLocker enables distributed locking for multi-process deployments.
func WithLocker(l ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEventSink registers a callback for layout and mode events.
func WithEventSink(fn func(any)) Option {
	return func(e *Engine) {
		e.sink = fn
	}
}

// New initializes a new Easel Engine.
// By default, it reads workspace definitions from a Loam repository at the
// given path. If WithLoader is provided, repoPath can be empty and Loam is
// skipped entirely.
func New(repoPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom loader is provided")
		}

		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		eng.Name = filepath.Base(absPath)

		// Strict mode keeps numeric frontmatter types consistent across the
		// JSON and Markdown/YAML adapters. ReadOnly avoids Loam's sandbox
		// behavior in dev mode; the engine never writes definitions back.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}

		typedRepo := loam.NewTypedRepository[loamAdapter.WorkspaceMetadata](repo)
		eng.loader = loamAdapter.New(typedRepo)
	} else if repoPath != "" {
		eng.Name = filepath.Base(repoPath)
	}

	if eng.store == nil {
		eng.store = memory.NewStore()
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("repo", eng.Name)
	}

	managerOpts := []workspace.Option{
		workspace.WithLogger(eng.logger),
	}
	if eng.locker != nil {
		managerOpts = append(managerOpts, workspace.WithLocker(eng.locker))
	}
	if eng.sink != nil {
		managerOpts = append(managerOpts, workspace.WithEventSink(eng.sink))
	}

	eng.manager = workspace.NewManager(eng.store, managerOpts...)

	return eng, nil
}

// Workspace returns the live state for a workspace. When the store has no
// snapshot yet, the definition loader seeds one; without a definition the
// workspace starts empty in the default mode.
func (e *Engine) Workspace(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	state, err := e.manager.Load(ctx, workspaceID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		return nil, err
	}

	if e.loader != nil {
		raw, loadErr := e.loader.GetWorkspace(workspaceID)
		if loadErr == nil {
			seeded := &domain.WorkspaceState{}
			if jsonErr := json.Unmarshal(raw, seeded); jsonErr != nil {
				return nil, fmt.Errorf("invalid workspace definition %q: %w", workspaceID, jsonErr)
			}
			if saveErr := e.manager.Save(ctx, workspaceID, seeded); saveErr != nil {
				return nil, saveErr
			}
			e.logger.Info("Workspace seeded from definition", "workspace_id", workspaceID)
			return seeded, nil
		}
		e.logger.Debug("No workspace definition found, starting empty", "workspace_id", workspaceID, "err", loadErr)
	}

	return e.manager.LoadOrCreate(ctx, workspaceID)
}

// Layout computes document placements for a workspace in its current mode.
// activeID optionally overrides which document is treated as active.
func (e *Engine) Layout(ctx context.Context, workspaceID string, activeID domain.DocumentCaddyID) ([]domain.DocumentLayoutResult, layout.Mode, error) {
	if _, err := e.Workspace(ctx, workspaceID); err != nil {
		return nil, layout.Mode{}, err
	}
	return e.manager.Layout(ctx, workspaceID, activeID)
}

// Open adds a document to the workspace.
func (e *Engine) Open(ctx context.Context, workspaceID string, doc domain.DocumentLayoutInfo) (*domain.WorkspaceState, error) {
	if _, err := e.Workspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	state, _, err := e.manager.OpenDocument(ctx, workspaceID, doc)
	return state, err
}

// Close removes a document from the workspace.
func (e *Engine) Close(ctx context.Context, workspaceID string, docID domain.DocumentCaddyID) (*domain.WorkspaceState, error) {
	state, _, err := e.manager.CloseDocument(ctx, workspaceID, docID)
	return state, err
}

// SetMode commits an explicit layout mode transition.
func (e *Engine) SetMode(ctx context.Context, workspaceID string, mode string) (*domain.WorkspaceState, error) {
	if _, err := e.Workspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	state, _, err := e.manager.SetMode(ctx, workspaceID, mode)
	return state, err
}

// Resize records a new workspace viewport size.
func (e *Engine) Resize(ctx context.Context, workspaceID string, size domain.Dimensions) (*domain.WorkspaceState, error) {
	if _, err := e.Workspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	state, _, err := e.manager.Resize(ctx, workspaceID, size)
	return state, err
}

// Gesture applies a manual drag or resize, switching to freeform first when
// the current mode does not support the action.
func (e *Engine) Gesture(ctx context.Context, workspaceID string, g workspace.Gesture) (*domain.WorkspaceState, error) {
	if _, err := e.Workspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	state, _, err := e.manager.ApplyGesture(ctx, workspaceID, g)
	return state, err
}

// Advise reports whether a manual action on the workspace's current mode
// would switch it to freeform, without committing anything.
func (e *Engine) Advise(ctx context.Context, workspaceID string, action layout.UserAction) (bool, error) {
	state, err := e.Workspace(ctx, workspaceID)
	if err != nil {
		return false, err
	}
	mode, err := layout.ParseMode(state.Mode)
	if err != nil {
		return false, err
	}
	return mode.ShouldAutoSwitchToFreeform(action), nil
}

// Modes lists the available layout modes.
func (e *Engine) Modes() []layout.Mode {
	return layout.Modes()
}

// Manager returns the underlying workspace manager for embedding in servers.
func (e *Engine) Manager() *workspace.Manager {
	return e.manager
}

// Loader returns the underlying WorkspaceLoader used by the engine.
func (e *Engine) Loader() ports.WorkspaceLoader {
	return e.loader
}
