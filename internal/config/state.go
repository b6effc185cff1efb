package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/calumma/wfctl/internal/output"
)

const (
	// StateDir is the per-workspace metadata directory.
	StateDir = ".wfctl"
	// stateFile holds the workspace state inside StateDir.
	stateFile = "workspace.yml"
)

// WorkspaceState is the persisted CLI-layer view of a workspace: which
// backend manages it, where it syncs to, and which paths are tracked.
// The core workspace types stay process-ephemeral; this file is how the
// CLI rebuilds the same workspace on the next invocation.
type WorkspaceState struct {
	Backend string   `yaml:"backend"`
	Remote  string   `yaml:"remote,omitempty"`
	Tracked []string `yaml:"tracked,omitempty"`
}

// StatePath returns the state file path for a working directory.
func StatePath(workingDir string) string {
	return filepath.Join(workingDir, StateDir, stateFile)
}

// StateExists reports whether a workspace state file exists under dir.
func StateExists(workingDir string) bool {
	_, err := os.Stat(StatePath(workingDir))
	return err == nil
}

// LoadState reads the workspace state for a working directory.
// Returns a user error if the workspace was never initialized.
func LoadState(workingDir string) (*WorkspaceState, error) {
	path := StatePath(workingDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewUserError("not a wfctl workspace: " + workingDir + " (run 'wfctl init' first)")
		}
		return nil, output.NewSystemErrorWithCause("failed to read workspace state: "+path, err)
	}

	var state WorkspaceState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, output.NewUserError("failed to parse workspace state " + path + ": " + err.Error())
	}
	if state.Backend == "" {
		return nil, output.NewUserError("workspace state is missing a backend: " + path)
	}
	return &state, nil
}

// SaveState writes the workspace state, creating the metadata directory
// if needed. Tracked paths are stored sorted and deduplicated.
func SaveState(workingDir string, state *WorkspaceState) error {
	if state.Backend == "" {
		return output.NewUserError("workspace state requires a backend")
	}
	state.Tracked = dedupeSorted(state.Tracked)

	dir := filepath.Join(workingDir, StateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create workspace metadata directory", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return output.NewSystemError("failed to serialize workspace state: " + err.Error())
	}
	if err := atomicWrite(filepath.Join(dir, stateFile), data); err != nil {
		return output.NewSystemErrorWithCause("failed to write workspace state", err)
	}
	return nil
}

// AddTracked records additional tracked paths, keeping the list sorted
// and free of duplicates.
func (s *WorkspaceState) AddTracked(paths ...string) {
	s.Tracked = dedupeSorted(append(s.Tracked, paths...))
}

func dedupeSorted(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.yml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
