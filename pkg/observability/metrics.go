package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/easel/pkg/domain"
)

// Metrics collects engine counters and histograms on a private Prometheus
// registry, so multiple engines in one process never collide.
type Metrics struct {
	registry *prometheus.Registry

	layoutPasses       *prometheus.CounterVec
	layoutDuration     *prometheus.HistogramVec
	modeSwitches       *prometheus.CounterVec
	documentsOpen      *prometheus.GaugeVec
	extractionStatuses *prometheus.GaugeVec
}

// NewMetrics creates a Metrics with all collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		layoutPasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "easel_layout_passes_total",
				Help: "Total number of layout passes by mode",
			},
			[]string{"mode"},
		),
		layoutDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "easel_layout_duration_seconds",
				Help: "Duration of layout passes",
			},
			[]string{"mode"},
		),
		modeSwitches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "easel_mode_switches_total",
				Help: "Total number of committed mode transitions",
			},
			[]string{"to_mode", "auto"},
		),
		documentsOpen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "easel_documents_open",
				Help: "Documents currently tracked per workspace",
			},
			[]string{"workspace_id"},
		),
		extractionStatuses: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "easel_extraction_documents",
				Help: "Documents currently in each extraction status",
			},
			[]string{"status"},
		),
	}
	m.registry.MustRegister(m.layoutPasses, m.layoutDuration, m.modeSwitches, m.documentsOpen, m.extractionStatuses)
	return m
}

// Handler returns an http.Handler serving this registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveLayoutDuration records the wall time of one layout pass.
func (m *Metrics) ObserveLayoutDuration(mode string, d time.Duration) {
	m.layoutDuration.WithLabelValues(mode).Observe(d.Seconds())
}

// SetDocumentsOpen records the current document count for a workspace.
func (m *Metrics) SetDocumentsOpen(workspaceID string, n int) {
	m.documentsOpen.WithLabelValues(workspaceID).Set(float64(n))
}

// SetExtractionStatuses replaces the extraction gauge with a fresh snapshot
// of per-status document counts, dropping statuses no document holds.
func (m *Metrics) SetExtractionStatuses(counts map[string]int) {
	m.extractionStatuses.Reset()
	for status, n := range counts {
		m.extractionStatuses.WithLabelValues(status).Set(float64(n))
	}
}

// HandleEvent is an event sink for workspace managers. It inspects the event
// type and updates the matching collectors.
func (m *Metrics) HandleEvent(event any) {
	switch e := event.(type) {
	case domain.LayoutEvent:
		m.layoutPasses.WithLabelValues(e.Mode).Inc()
		m.documentsOpen.WithLabelValues(e.WorkspaceID).Set(float64(e.DocumentCount))
	case domain.ModeEvent:
		auto := "false"
		if e.AutoSwitched {
			auto = "true"
		}
		m.modeSwitches.WithLabelValues(e.ToMode, auto).Inc()
	}
}
