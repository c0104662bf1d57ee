package extraction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/aretw0/easel/internal/logging"
	"github.com/aretw0/easel/pkg/domain"
)

// Status is a document's position in the extraction lifecycle.
// The lifecycle is independent from layout: None → Pending → Processing →
// {Completed | Error}.
type Status string

const (
	StatusNone       Status = "none"
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// StatusDTO is the externally visible extraction state for one document.
type StatusDTO struct {
	DocumentID domain.DocumentCaddyID `json:"document_id"`
	Status     Status                 `json:"status"`
	Preview    string                 `json:"preview,omitempty"`
	Err        string                 `json:"error,omitempty"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

type job struct {
	docID       domain.DocumentCaddyID
	contentType string
	content     []byte
	opts        Options
}

// Pipeline runs extractions in the background and tracks per-document status.
// Safe for concurrent use.
type Pipeline struct {
	registry *Registry
	logger   *slog.Logger

	mu       sync.RWMutex
	statuses map[domain.DocumentCaddyID]StatusDTO

	sink func(StatusDTO)

	jobs chan job
	wg   sync.WaitGroup
}

// PipelineOption configures the Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineLogger configures a logger for worker events.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithQueueSize sets the pending-job buffer (default 64).
func WithQueueSize(n int) PipelineOption {
	return func(p *Pipeline) {
		p.jobs = make(chan job, n)
	}
}

// WithStatusSink registers a callback invoked on every status transition.
// The callback runs on the worker goroutine and must not block.
func WithStatusSink(fn func(StatusDTO)) PipelineOption {
	return func(p *Pipeline) {
		p.sink = fn
	}
}

// NewPipeline creates a Pipeline over the given registry.
func NewPipeline(registry *Registry, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		registry: registry,
		logger:   logging.NewNop(),
		statuses: make(map[domain.DocumentCaddyID]StatusDTO),
		jobs:     make(chan job, 64),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the background worker. It runs until ctx is canceled.
func (p *Pipeline) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case j := <-p.jobs:
				p.process(ctx, j)
			}
		}
	}()
}

// Wait blocks until the worker has stopped (after ctx cancellation).
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Submit queues a document for extraction and marks it Pending.
// Returns an error when the queue is full rather than blocking the caller.
func (p *Pipeline) Submit(docID domain.DocumentCaddyID, contentType string, content []byte, opts Options) error {
	j := job{docID: docID, contentType: contentType, content: content, opts: opts}

	select {
	case p.jobs <- j:
		p.setStatus(StatusDTO{DocumentID: docID, Status: StatusPending})
		return nil
	default:
		return fmt.Errorf("extraction queue full, document %s rejected", docID)
	}
}

// Status returns the current extraction state for a document.
// Documents never submitted report StatusNone.
func (p *Pipeline) Status(docID domain.DocumentCaddyID) StatusDTO {
	p.mu.RLock()
	defer p.mu.RUnlock()

	dto, ok := p.statuses[docID]
	if !ok {
		return StatusDTO{DocumentID: docID, Status: StatusNone}
	}
	return dto
}

// StatusCounts returns how many tracked documents sit in each status.
func (p *Pipeline) StatusCounts() map[Status]int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	counts := make(map[Status]int)
	for _, dto := range p.statuses {
		counts[dto.Status]++
	}
	return counts
}

// Statuses returns a snapshot of all tracked documents.
func (p *Pipeline) Statuses() []StatusDTO {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]StatusDTO, 0, len(p.statuses))
	for _, dto := range p.statuses {
		out = append(out, dto)
	}
	return out
}

func (p *Pipeline) process(ctx context.Context, j job) {
	p.setStatus(StatusDTO{DocumentID: j.docID, Status: StatusProcessing})

	preview, err := p.registry.Extract(ctx, j.contentType, j.content, j.opts)
	if err != nil {
		p.logger.Warn("Extraction failed", "document_id", j.docID, "content_type", j.contentType, "err", err)
		p.setStatus(StatusDTO{DocumentID: j.docID, Status: StatusError, Err: err.Error()})
		return
	}

	if j.opts.MaxPreviewBytes > 0 && len(preview) > j.opts.MaxPreviewBytes {
		preview = preview[:j.opts.MaxPreviewBytes]
	}
	p.setStatus(StatusDTO{DocumentID: j.docID, Status: StatusCompleted, Preview: preview})
}

func (p *Pipeline) setStatus(dto StatusDTO) {
	dto.UpdatedAt = time.Now().UTC()
	p.mu.Lock()
	p.statuses[dto.DocumentID] = dto
	p.mu.Unlock()

	if p.sink != nil {
		p.sink(dto)
	}
}
