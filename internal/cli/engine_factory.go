package cli

import (
	"fmt"
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/internal/logging"
	fileAdapter "github.com/aretw0/easel/pkg/adapters/file"
	redisAdapter "github.com/aretw0/easel/pkg/adapters/redis"
	"github.com/aretw0/easel/pkg/ports"
)

// CreateEngine initializes an Easel engine with standard CLI conventions.
func CreateEngine(opts RunOptions, logger *slog.Logger) (*easel.Engine, error) {
	engineOpts := []easel.Option{
		easel.WithLogger(logger),
	}

	store, locker, err := createStore(opts)
	if err != nil {
		return nil, err
	}
	if store != nil {
		engineOpts = append(engineOpts, easel.WithStore(store))
	}
	if locker != nil {
		engineOpts = append(engineOpts, easel.WithLocker(locker))
	}
	if opts.EventSink != nil {
		engineOpts = append(engineOpts, easel.WithEventSink(opts.EventSink))
	}

	engine, err := easel.New(opts.RepoPath, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, nil
}

// createStore maps the --store flag onto a WorkspaceStore. The memory
// backend returns nil so the engine falls back to its own default.
func createStore(opts RunOptions) (ports.WorkspaceStore, ports.DistributedLocker, error) {
	switch opts.Store {
	case "", "memory":
		return nil, nil, nil
	case "file":
		return fileAdapter.New(opts.StorePath), nil, nil
	case "redis":
		if opts.RedisAddr == "" {
			return nil, nil, fmt.Errorf("--redis-addr is required for the redis store")
		}
		client := backend.NewClient(&backend.Options{Addr: opts.RedisAddr})
		store := redisAdapter.NewFromClient(client)
		locker := redisAdapter.NewLocker(client, "easel:lock:")
		return store, locker, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s (supported: memory, file, redis)", opts.Store)
	}
}

// CreateLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout flow UI).
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
