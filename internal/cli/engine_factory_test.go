package cli

import (
	"testing"
)

func TestCreateStoreDefaultsToMemory(t *testing.T) {
	store, locker, err := createStore(RunOptions{})
	if err != nil {
		t.Fatalf("createStore failed: %v", err)
	}
	if store != nil || locker != nil {
		t.Error("Expected nil store/locker for the memory default")
	}
}

func TestCreateStoreFile(t *testing.T) {
	store, locker, err := createStore(RunOptions{Store: "file", StorePath: t.TempDir()})
	if err != nil {
		t.Fatalf("createStore failed: %v", err)
	}
	if store == nil {
		t.Error("Expected file store")
	}
	if locker != nil {
		t.Error("File store needs no distributed locker")
	}
}

func TestCreateStoreRedisRequiresAddr(t *testing.T) {
	if _, _, err := createStore(RunOptions{Store: "redis"}); err == nil {
		t.Error("Expected error without --redis-addr")
	}
}

func TestCreateStoreUnknownBackend(t *testing.T) {
	if _, _, err := createStore(RunOptions{Store: "dynamo"}); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestCreateEngineWithMemoryStore(t *testing.T) {
	engine, err := CreateEngine(RunOptions{RepoPath: t.TempDir()}, CreateLogger(false))
	if err != nil {
		t.Fatalf("CreateEngine failed: %v", err)
	}
	if engine == nil {
		t.Fatal("Expected engine")
	}
}
