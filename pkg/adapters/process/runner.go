package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aretw0/easel/pkg/extraction"
)

// Runner executes external extractor processes.
// It follows a Strict Registry pattern for security (Allow-Listing): only
// commands registered up front can run, never ad-hoc commands from content.
type Runner struct {
	registry map[string]RegisteredProcess
	baseDir  string
}

// RegisteredProcess defines an allowed command execution.
type RegisteredProcess struct {
	Command string
	Args    []string
	Env     map[string]string
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from a loaded config.
func WithRegistry(configs map[string]ExtractorConfig) RunnerOption {
	return func(r *Runner) {
		for contentType, cfg := range configs {
			r.registry[contentType] = RegisteredProcess{
				Command: cfg.Command,
				Args:    cfg.Args,
				Env:     cfg.Environment,
			}
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// NewRunner creates a new process Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]RegisteredProcess),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list for a content type.
func (r *Runner) Register(contentType string, command string, args ...string) {
	r.registry[contentType] = RegisteredProcess{
		Command: command,
		Args:    args,
	}
}

// Extractor returns an extraction.ExtractorFunc backed by the registered
// process for the content type. The function can be registered in an
// extraction.Registry alongside in-process extractors.
func (r *Runner) Extractor(contentType string) (extraction.ExtractorFunc, error) {
	proc, ok := r.registry[contentType]
	if !ok {
		return nil, fmt.Errorf("process extractor not registered: %s", contentType)
	}

	return func(ctx context.Context, content []byte, opts extraction.Options) (string, error) {
		return r.run(ctx, proc, content, opts)
	}, nil
}

// RegisterAll wires every registered process into the given registry.
func (r *Runner) RegisterAll(registry *extraction.Registry) {
	for contentType := range r.registry {
		fn, err := r.Extractor(contentType)
		if err != nil {
			continue
		}
		registry.Register(contentType, fn)
	}
}

// run executes the process: content on stdin, extracted preview on stdout.
// Extractor options travel as environment variables rather than command
// flags. This prevents flag injection from untrusted option values.
func (r *Runner) run(ctx context.Context, proc RegisteredProcess, content []byte, opts extraction.Options) (string, error) {
	cmd := exec.CommandContext(ctx, proc.Command, proc.Args...)
	cmd.Dir = r.baseDir

	env := []string{}
	for k, v := range proc.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	if opts.MaxPreviewBytes > 0 {
		env = append(env, fmt.Sprintf("EASEL_MAX_PREVIEW_BYTES=%d", opts.MaxPreviewBytes))
	}
	for k, v := range opts.Metadata {
		// Basic sanitization: keys must be alphanumeric
		env = append(env, fmt.Sprintf("EASEL_OPT_%s=%s", sanitizeEnvKey(k), v))
	}
	cmd.Env = append(cmd.Environ(), env...)

	cmd.Stdin = bytes.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("extractor failed: %w. Stderr: %s", err, stderr.String())
	}

	preview := strings.TrimSpace(stdout.String())
	if opts.MaxPreviewBytes > 0 && len(preview) > opts.MaxPreviewBytes {
		preview = preview[:opts.MaxPreviewBytes]
	}

	return preview, nil
}

func sanitizeEnvKey(k string) string {
	upper := strings.ToUpper(k)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, upper)
}
