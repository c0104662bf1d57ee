package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	loamAdapter "github.com/aretw0/easel/pkg/adapters/loam"
	"github.com/aretw0/easel/pkg/layout"
)

// ValidateWorkspace checks a single workspace definition for problems that
// would surface at runtime: unknown mode tokens, negative sizes, duplicate
// or empty document IDs.
func ValidateWorkspace(repo core.Repository, workspaceID string) error {
	// We use the TypedRepository to easily parse metadata
	typedRepo := loam.NewTypedRepository[loamAdapter.WorkspaceMetadata](repo)
	ctx := context.Background()

	doc, err := typedRepo.Get(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("workspace '%s' not found: %w", workspaceID, err)
	}

	var errors []string
	meta := doc.Data

	if meta.Mode != "" {
		if _, err := layout.ParseMode(meta.Mode); err != nil {
			errors = append(errors, fmt.Sprintf("Unknown layout mode: '%s'", meta.Mode))
		}
	}

	if meta.Width < 0 || meta.Height < 0 {
		errors = append(errors, fmt.Sprintf("Negative workspace size: %gx%g", meta.Width, meta.Height))
	}

	seen := make(map[string]bool)
	activeCount := 0
	for i, d := range meta.Documents {
		if d.ID == "" {
			errors = append(errors, fmt.Sprintf("Document at index %d has no ID", i))
			continue
		}
		if seen[d.ID] {
			errors = append(errors, fmt.Sprintf("Duplicate document ID: '%s'", d.ID))
		}
		seen[d.ID] = true

		if d.Width < 0 || d.Height < 0 {
			errors = append(errors, fmt.Sprintf("Document '%s' has negative size: %gx%g", d.ID, d.Width, d.Height))
		}
		if d.Active {
			activeCount++
		}
	}

	if activeCount > 1 {
		errors = append(errors, fmt.Sprintf("%d documents marked active; stacked mode raises all of them unless an explicit active document is passed at layout time", activeCount))
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}

// ValidateRepository validates every workspace definition in the repository.
func ValidateRepository(repo core.Repository) error {
	typedRepo := loam.NewTypedRepository[loamAdapter.WorkspaceMetadata](repo)
	loader := loamAdapter.New(typedRepo)

	ids, err := loader.ListWorkspaces()
	if err != nil {
		return err
	}

	var errors []string
	for _, id := range ids {
		if err := ValidateWorkspace(repo, id); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", id, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%d invalid workspaces:\n%s", len(errors), strings.Join(errors, "\n"))
	}
	return nil
}
