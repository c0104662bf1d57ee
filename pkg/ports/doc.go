/*
Package ports defines the driven ports (interfaces) for the Easel engine.

These interfaces decouple the core layout logic from external implementations,
allowing the engine to work with various storage backends and definition sources.

# Key Interfaces

  - WorkspaceLoader: Responsible for loading workspace definitions (e.g., from Loam or Memory).
  - WorkspaceStore: Responsible for persisting and loading live WorkspaceState.
  - DistributedLocker: Provides distributed locking for handling concurrent workspace access.
*/
package ports
