package domain

import "errors"

// ErrInvalidLayoutMode is returned when a mode token cannot be parsed.
// Callers must validate externally supplied or persisted strings before acting.
var ErrInvalidLayoutMode = errors.New("invalid layout mode")

// ErrWorkspaceNotFound is returned when a workspace ID cannot be found in the store.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// ErrDocumentNotFound is returned when a document ID is not open in the workspace.
var ErrDocumentNotFound = errors.New("document not found")
