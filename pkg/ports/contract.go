package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunWorkspaceStoreContract runs a suite of tests to verify that a
// WorkspaceStore implementation adheres to the defined interface contract.
func RunWorkspaceStoreContract(t *testing.T, store WorkspaceStore) {
	ctx := context.Background()
	workspaceID := "contract-test-workspace-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewWorkspaceState(workspaceID)
		state.Mode = "grid"
		state.Size = domain.NewDimensions(1200, 900)
		state.Documents = []domain.DocumentLayoutInfo{
			{ID: "doc-1", CurrentPosition: domain.NewPosition(20, 20), CurrentDimensions: domain.NewDimensions(300, 250), IsActive: true, ZIndex: 5},
			{ID: "doc-2", CurrentPosition: domain.NewPosition(340, 20), CurrentDimensions: domain.NewDimensions(300, 250), ZIndex: 1},
		}

		err := store.Save(ctx, workspaceID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, workspaceID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.Mode, loaded.Mode)
		assert.Equal(t, state.Size, loaded.Size)
		require.Len(t, loaded.Documents, 2)
		assert.Equal(t, state.Documents[0], loaded.Documents[0])
		assert.Equal(t, state.Documents[1], loaded.Documents[1])
	})

	t.Run("Load returns isolated copies", func(t *testing.T) {
		loaded, err := store.Load(ctx, workspaceID)
		require.NoError(t, err)

		// Mutating the loaded snapshot must not leak into the store.
		loaded.Documents[0].CurrentPosition = domain.NewPosition(999, 999)
		loaded.Mode = "freeform"

		fresh, err := store.Load(ctx, workspaceID)
		require.NoError(t, err)
		assert.Equal(t, "grid", fresh.Mode)
		assert.Equal(t, domain.NewPosition(20, 20), fresh.Documents[0].CurrentPosition)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+workspaceID)
		assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, workspaceID, domain.NewWorkspaceState(workspaceID))
		require.NoError(t, err)

		err = store.Delete(ctx, workspaceID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, workspaceID)
		assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound, "Load after Delete should return ErrWorkspaceNotFound")
	})

	t.Run("List", func(t *testing.T) {
		a := workspaceID + "-list-a"
		b := workspaceID + "-list-b"
		require.NoError(t, store.Save(ctx, a, domain.NewWorkspaceState(a)))
		require.NoError(t, store.Save(ctx, b, domain.NewWorkspaceState(b)))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, a)
		assert.Contains(t, ids, b)
	})
}
