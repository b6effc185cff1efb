package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/calumma/wfctl/internal/output"
)

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	state := &WorkspaceState{
		Backend: "git",
		Remote:  "http://example.com/repo",
		Tracked: []string{"b.txt", "a.txt", "b.txt"},
	}

	if err := SaveState(dir, state); err != nil {
		t.Fatalf("SaveState() unexpected error: %v", err)
	}

	loaded, err := LoadState(dir)
	if err != nil {
		t.Fatalf("LoadState() unexpected error: %v", err)
	}
	if loaded.Backend != "git" || loaded.Remote != "http://example.com/repo" {
		t.Errorf("LoadState() = %+v, want backend and remote preserved", loaded)
	}
	if want := []string{"a.txt", "b.txt"}; !reflect.DeepEqual(loaded.Tracked, want) {
		t.Errorf("Tracked = %v, want sorted deduplicated %v", loaded.Tracked, want)
	}
}

func TestLoadStateUninitialized(t *testing.T) {
	_, err := LoadState(t.TempDir())
	if err == nil {
		t.Fatal("LoadState() expected error for uninitialized directory")
	}
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != output.ExitUserError {
		t.Errorf("LoadState() error = %v, want a user error", err)
	}
}

func TestLoadStateMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, StateDir), 0o755); err != nil {
		t.Fatalf("creating state dir: %v", err)
	}
	if err := os.WriteFile(StatePath(dir), []byte("backend: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing state file: %v", err)
	}

	_, err := LoadState(dir)
	if err == nil {
		t.Fatal("LoadState() expected error for malformed state")
	}
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != output.ExitUserError {
		t.Errorf("LoadState() error = %v, want a user error", err)
	}
}

func TestLoadStateMissingBackend(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, StateDir), 0o755); err != nil {
		t.Fatalf("creating state dir: %v", err)
	}
	if err := os.WriteFile(StatePath(dir), []byte("remote: http://example.com\n"), 0o644); err != nil {
		t.Fatalf("writing state file: %v", err)
	}

	if _, err := LoadState(dir); err == nil {
		t.Error("LoadState() expected error when backend is missing")
	}
}

func TestSaveStateRequiresBackend(t *testing.T) {
	if err := SaveState(t.TempDir(), &WorkspaceState{}); err == nil {
		t.Error("SaveState() expected error for empty backend")
	}
}

func TestAddTracked(t *testing.T) {
	state := &WorkspaceState{Backend: "git"}
	state.AddTracked("nested/file.txt")
	state.AddTracked("a.txt", "nested/file.txt")

	if want := []string{"a.txt", "nested/file.txt"}; !reflect.DeepEqual(state.Tracked, want) {
		t.Errorf("Tracked = %v, want %v", state.Tracked, want)
	}
}

func TestStateExists(t *testing.T) {
	dir := t.TempDir()
	if StateExists(dir) {
		t.Error("StateExists() = true before SaveState")
	}
	if err := SaveState(dir, &WorkspaceState{Backend: "git"}); err != nil {
		t.Fatalf("SaveState() unexpected error: %v", err)
	}
	if !StateExists(dir) {
		t.Error("StateExists() = false after SaveState")
	}
}
