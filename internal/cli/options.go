package cli

// RunOptions carries the standard CLI configuration shared by commands.
type RunOptions struct {
	// RepoPath is the directory holding workspace definitions.
	RepoPath string

	// Debug enables verbose logging to stderr.
	Debug bool

	// Store selects the snapshot backend: "memory", "file" or "redis".
	Store string

	// StorePath overrides the file store location (default .easel/workspaces).
	StorePath string

	// RedisAddr is the redis host:port (only for Store == "redis").
	RedisAddr string

	// EventSink receives layout and mode events (optional).
	EventSink func(any)
}
