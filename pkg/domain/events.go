package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventLayoutPass    EventType = "layout_pass"
	EventModeSwitch    EventType = "mode_switch"
	EventDocumentOpen  EventType = "document_open"
	EventDocumentClose EventType = "document_close"
	EventGesture       EventType = "gesture"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
	WorkspaceID string    `json:"workspace_id"`
}

// LayoutEvent records a completed layout pass.
type LayoutEvent struct {
	EventBase
	Mode          string `json:"mode"`
	DocumentCount int    `json:"document_count"`
}

// ModeEvent records a committed layout mode transition.
type ModeEvent struct {
	EventBase
	FromMode string `json:"from_mode"`
	ToMode   string `json:"to_mode"`
	// AutoSwitched is true when the transition was committed because of the
	// drag/resize auto-switch advisory rather than an explicit request.
	AutoSwitched bool `json:"auto_switched,omitempty"`
}

// DocumentEvent records a document entering or leaving the workspace.
type DocumentEvent struct {
	EventBase
	DocumentID DocumentCaddyID `json:"document_id"`
}
