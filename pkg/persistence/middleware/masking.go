package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
)

type maskingMiddleware struct {
	next     ports.WorkspaceStore
	patterns []*regexp.Regexp
}

// NewMaskingMiddleware creates a middleware that masks meta values whose
// keys match the patterns before they reach the store. Document titles and
// client annotations often carry user data; placement geometry does not.
func NewMaskingMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.WorkspaceStore) ports.WorkspaceStore {
		return &maskingMiddleware{next: next, patterns: patterns}
	}
}

func (m *maskingMiddleware) Save(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error {
	// Deep clone to avoid side effects on the in-memory state used by the
	// manager.
	cloned := state.Clone()

	if matchesAny(cloned.Name, m.patterns) {
		cloned.Name = "***"
	}
	maskMap(cloned.Meta, m.patterns)

	return m.next.Save(ctx, workspaceID, cloned)
}

func (m *maskingMiddleware) Load(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	return m.next.Load(ctx, workspaceID)
}

func (m *maskingMiddleware) Delete(ctx context.Context, workspaceID string) error {
	return m.next.Delete(ctx, workspaceID)
}

func (m *maskingMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func matchesAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		if matchesAny(k, patterns) {
			m[k] = "***"
			continue
		}

		// Recurse if map
		if subMap, ok := v.(map[string]any); ok {
			maskMap(subMap, patterns)
		}
	}
}
