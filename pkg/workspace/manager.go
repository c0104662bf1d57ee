package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/aretw0/easel/internal/logging"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu     sync.Mutex
	refs   int
	unlock ports.UnlockFunc // Function to release distributed lock (if any)
}

// Manager is the external owner of the committed layout mode. It orchestrates
// workspace access, ensuring safe concurrent operations, and is the component
// that decides whether to commit the engine's auto-switch advisory.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.WorkspaceStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker ports.DistributedLocker // Optional distributed locker
	logger *slog.Logger            // Logger for internal events (like deferred errors)

	onEvent func(any) // Optional event sink
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithEventSink registers a callback receiving domain events
// (domain.ModeEvent, domain.DocumentEvent, ...).
func WithEventSink(fn func(any)) Option {
	return func(m *Manager) {
		m.onEvent = fn
	}
}

// NewManager creates a new Workspace Manager with the given persistence store.
func NewManager(store ports.WorkspaceStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(workspaceID) after unlocking.
func (m *Manager) acquire(workspaceID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[workspaceID]
	if !exists {
		entry = &lockEntry{}
		m.locks[workspaceID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(workspaceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[workspaceID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, workspaceID)
	}
}

// WithLock executes a function while holding the lock for the workspace.
func (m *Manager) WithLock(ctx context.Context, workspaceID string, fn func(context.Context) error) error {
	entry := m.acquire(workspaceID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(workspaceID)
	}()

	// Distributed Locking
	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, workspaceID, 30*time.Second)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"workspace_id", workspaceID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// Load retrieves an existing workspace from the store.
func (m *Manager) Load(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	var state *domain.WorkspaceState
	err := m.WithLock(ctx, workspaceID, func(ctx context.Context) error {
		var err error
		state, err = m.store.Load(ctx, workspaceID)
		return err
	})
	return state, err
}

// LoadOrCreate tries to load a workspace. If not found, it initializes a new
// one in the default layout mode and persists it immediately to reserve the ID.
func (m *Manager) LoadOrCreate(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	var state *domain.WorkspaceState
	err := m.WithLock(ctx, workspaceID, func(ctx context.Context) error {
		var err error
		state, err = m.store.Load(ctx, workspaceID)
		if err == nil {
			return nil
		}

		if !errors.Is(err, domain.ErrWorkspaceNotFound) {
			return fmt.Errorf("failed to check workspace existence: %w", err)
		}

		state = domain.NewWorkspaceState(workspaceID)
		if err := m.store.Save(ctx, workspaceID, state); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}
		return nil
	})
	return state, err
}

// Save persists the workspace state.
func (m *Manager) Save(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error {
	return m.WithLock(ctx, workspaceID, func(ctx context.Context) error {
		state.UpdatedAt = time.Now().UTC()
		return m.store.Save(ctx, workspaceID, state)
	})
}

// Delete removes the workspace from the store.
func (m *Manager) Delete(ctx context.Context, workspaceID string) error {
	return m.WithLock(ctx, workspaceID, func(ctx context.Context) error {
		return m.store.Delete(ctx, workspaceID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying workspace store.
func (m *Manager) Store() ports.WorkspaceStore {
	return m.store
}

func (m *Manager) emit(event any) {
	if m.onEvent != nil {
		m.onEvent(event)
	}
}
