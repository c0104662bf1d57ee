/*
Package domain contains the core domain models for the Easel layout engine.

It defines the geometry value types (Position, Dimensions), the per-document
layout input/output records, and the workspace snapshot owned by the store.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Position / Dimensions: Immutable geometry values with bounds-constraining operations.
  - DocumentLayoutInfo: A document's positional/size/activity state as given to a layout pass.
  - DocumentLayoutResult: The computed, renderable state for one document after a pass.
  - WorkspaceState: The authoritative snapshot of a workspace (documents, committed mode, size).
*/
package domain
