package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/easel/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const keyPrefix = "easel:workspace:"

// Store implements ports.WorkspaceStore using Redis.
// Workspace snapshots are serialized as JSON under a prefixed key.
type Store struct {
	client *backend.Client
	ttl    time.Duration
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithTTL sets an expiration on stored workspaces.
// Zero (the default) means entries never expire.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// NewFromClient creates a Store on top of an existing Redis client.
func NewFromClient(client *backend.Client, opts ...StoreOption) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save persists the state as JSON.
func (s *Store) Save(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace %s: %w", workspaceID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+workspaceID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis save failed for %s: %w", workspaceID, err)
	}
	return nil
}

// Load retrieves and deserializes the state.
func (s *Store) Load(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	data, err := s.client.Get(ctx, keyPrefix+workspaceID).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("redis load failed for %s: %w", workspaceID, err)
	}

	var state domain.WorkspaceState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace %s: %w", workspaceID, err)
	}
	return &state, nil
}

// Delete removes the state.
func (s *Store) Delete(ctx context.Context, workspaceID string) error {
	if err := s.client.Del(ctx, keyPrefix+workspaceID).Err(); err != nil {
		return fmt.Errorf("redis delete failed for %s: %w", workspaceID, err)
	}
	return nil
}

// List returns stored workspace IDs by scanning the key prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(keyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan failed: %w", err)
	}
	return ids, nil
}
