package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/easel/pkg/domain"
)

func TestHandleEventLayoutPass(t *testing.T) {
	m := NewMetrics()

	m.HandleEvent(domain.LayoutEvent{
		EventBase:     domain.EventBase{Type: domain.EventLayoutPass, WorkspaceID: "ws-1"},
		Mode:          "grid",
		DocumentCount: 3,
	})
	m.HandleEvent(domain.LayoutEvent{
		EventBase:     domain.EventBase{Type: domain.EventLayoutPass, WorkspaceID: "ws-1"},
		Mode:          "grid",
		DocumentCount: 4,
	})

	assert.Equal(t, float64(2), testutil.ToFloat64(m.layoutPasses.WithLabelValues("grid")))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.documentsOpen.WithLabelValues("ws-1")))
}

func TestHandleEventModeSwitch(t *testing.T) {
	m := NewMetrics()

	m.HandleEvent(domain.ModeEvent{
		EventBase:    domain.EventBase{Type: domain.EventModeSwitch, WorkspaceID: "ws-1"},
		FromMode:     "stacked",
		ToMode:       "freeform",
		AutoSwitched: true,
	})
	m.HandleEvent(domain.ModeEvent{
		EventBase: domain.EventBase{Type: domain.EventModeSwitch, WorkspaceID: "ws-1"},
		FromMode:  "freeform",
		ToMode:    "grid",
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.modeSwitches.WithLabelValues("freeform", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.modeSwitches.WithLabelValues("grid", "false")))
}

func TestHandleEventIgnoresUnknown(t *testing.T) {
	m := NewMetrics()

	// Document events carry no collector of their own; they must not panic.
	m.HandleEvent(domain.DocumentEvent{
		EventBase:  domain.EventBase{Type: domain.EventDocumentOpen, WorkspaceID: "ws-1"},
		DocumentID: "doc-1",
	})
	m.HandleEvent("not an event")
}

func TestSetExtractionStatuses(t *testing.T) {
	m := NewMetrics()

	m.SetExtractionStatuses(map[string]int{"pending": 2, "processing": 1})
	assert.Equal(t, float64(2), testutil.ToFloat64(m.extractionStatuses.WithLabelValues("pending")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.extractionStatuses.WithLabelValues("processing")))

	// Each snapshot replaces the previous one; drained statuses disappear.
	m.SetExtractionStatuses(map[string]int{"completed": 3})
	assert.Equal(t, float64(3), testutil.ToFloat64(m.extractionStatuses.WithLabelValues("completed")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.extractionStatuses.WithLabelValues("pending")))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := NewMetrics()
	m.ObserveLayoutDuration("stacked", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "easel_layout_duration_seconds")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.HandleEvent(domain.LayoutEvent{Mode: "stacked", DocumentCount: 1})

	assert.Equal(t, float64(1), testutil.ToFloat64(a.layoutPasses.WithLabelValues("stacked")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.layoutPasses.WithLabelValues("stacked")))
}
