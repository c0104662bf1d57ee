package extraction

import (
	"context"
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ExtractorFunc defines the signature for a content extractor.
// It receives the raw document bytes and decoded options, and returns the
// extracted preview text or an error.
type ExtractorFunc func(ctx context.Context, content []byte, opts Options) (string, error)

// Options configures an extraction run. Callers typically supply these as a
// generic map (from frontmatter or API payloads); DecodeOptions normalizes it.
type Options struct {
	// MaxPreviewBytes truncates the extracted preview. Zero means no limit.
	MaxPreviewBytes int `mapstructure:"max_preview_bytes"`

	// Metadata carries extractor-specific settings.
	Metadata map[string]string `mapstructure:"metadata"`
}

// DecodeOptions decodes a generic option map into a typed Options value.
func DecodeOptions(raw map[string]any) (Options, error) {
	var opts Options
	if err := mapstructure.Decode(raw, &opts); err != nil {
		return Options{}, fmt.Errorf("invalid extraction options: %w", err)
	}
	return opts, nil
}

// Registry manages the available extractors, keyed by content type.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]ExtractorFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]ExtractorFunc),
	}
}

// Register adds an extractor to the registry.
// If an extractor for the same content type exists, it is overwritten.
func (r *Registry) Register(contentType string, fn ExtractorFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[contentType] = fn
}

// Extract looks up an extractor by content type and executes it.
// Returns an error if no extractor is registered.
func (r *Registry) Extract(ctx context.Context, contentType string, content []byte, opts Options) (string, error) {
	r.mu.RLock()
	fn, ok := r.extractors[contentType]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("no extractor registered for content type: %s", contentType)
	}

	return fn(ctx, content, opts)
}
