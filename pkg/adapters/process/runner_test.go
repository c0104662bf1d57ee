package process

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/easel/pkg/extraction"
)

func TestRunner_Extract(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on sh")
	}

	runner := NewRunner()
	// cat echoes stdin back: identity extractor
	runner.Register("text/plain", "cat")

	t.Run("Runs Registered Extractor", func(t *testing.T) {
		fn, err := runner.Extractor("text/plain")
		require.NoError(t, err)

		preview, err := fn(context.Background(), []byte("hello easel"), extraction.Options{})
		assert.NoError(t, err)
		assert.Equal(t, "hello easel", preview)
	})

	t.Run("Fails For Unregistered Content Type", func(t *testing.T) {
		_, err := runner.Extractor("application/pdf")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not registered")
	})

	t.Run("Passes Options via Env Vars", func(t *testing.T) {
		runner.Register("x-env", "sh", "-c", "echo $EASEL_OPT_LANG")

		fn, err := runner.Extractor("x-env")
		require.NoError(t, err)

		preview, err := fn(context.Background(), nil, extraction.Options{
			Metadata: map[string]string{"lang": "pt-BR"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "pt-BR", preview)
	})

	t.Run("Truncates To Max Preview Bytes", func(t *testing.T) {
		fn, err := runner.Extractor("text/plain")
		require.NoError(t, err)

		preview, err := fn(context.Background(), []byte("0123456789"), extraction.Options{
			MaxPreviewBytes: 4,
		})
		assert.NoError(t, err)
		assert.Equal(t, "0123", preview)
	})

	t.Run("Surfaces Stderr On Failure", func(t *testing.T) {
		runner.Register("x-broken", "sh", "-c", "echo boom >&2; exit 1")

		fn, err := runner.Extractor("x-broken")
		require.NoError(t, err)

		_, err = fn(context.Background(), nil, extraction.Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestRegisterAll(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on sh")
	}

	runner := NewRunner()
	runner.Register("text/plain", "cat")

	registry := extraction.NewRegistry()
	runner.RegisterAll(registry)

	preview, err := registry.Extract(context.Background(), "text/plain", []byte("wired"), extraction.Options{})
	assert.NoError(t, err)
	assert.Equal(t, "wired", preview)
}

func TestLoadExtractors(t *testing.T) {
	dir := t.TempDir()

	t.Run("Loads YAML Config", func(t *testing.T) {
		path := filepath.Join(dir, "extractors.yaml")
		content := `
extractors:
  - content_type: text/plain
    command: cat
    description: identity extractor
  - content_type: ""
    command: ignored
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		configs, err := LoadExtractors(path)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, "cat", configs["text/plain"].Command)
	})

	t.Run("Loads JSON Config", func(t *testing.T) {
		path := filepath.Join(dir, "extractors.json")
		content := `{"extractors": [{"content_type": "text/html", "command": "lynx", "args": ["-dump"]}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		configs, err := LoadExtractors(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"-dump"}, configs["text/html"].Args)
	})

	t.Run("Missing File Means No Extractors", func(t *testing.T) {
		configs, err := LoadExtractors(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, configs)
	})
}
