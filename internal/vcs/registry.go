package vcs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/workspace"
)

// registered is the closed set of supported backends, in detection
// precedence order. For the shared ".git" marker the exec backend wins
// when the git binary is present; gogit covers environments without one.
var registered = []Backend{
	gitBackend{},
	hgBackend{},
	gogitBackend{},
}

// Get returns the backend registered under name. "hg" is accepted as an
// alias for "mercurial".
func Get(name string) (Backend, error) {
	lookup := strings.ToLower(name)
	if lookup == "hg" {
		lookup = "mercurial"
	}
	for _, backend := range registered {
		if backend.Name() == lookup {
			return backend, nil
		}
	}
	return nil, output.NewUserError("unknown backend: " + name + " (available: " + strings.Join(Names(), ", ") + ")")
}

// Names returns the registered backend names in precedence order.
func Names() []string {
	names := make([]string, 0, len(registered))
	for _, backend := range registered {
		names = append(names, backend.Name())
	}
	return names
}

// Available returns the registered backends usable in the current
// environment.
func Available() []Backend {
	var usable []Backend
	for _, backend := range registered {
		if backend.Available() {
			usable = append(usable, backend)
		}
	}
	return usable
}

// Detect selects a backend from the marker directory already present in
// dir. Backends whose tool is unavailable are passed over, so a ".git"
// working directory on a machine without the git binary detects as gogit.
func Detect(dir string) (Backend, error) {
	for _, backend := range registered {
		if !backend.Available() {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, backend.Marker()))
		if err == nil && info.IsDir() {
			return backend, nil
		}
	}
	return nil, output.NewUserError("no known VCS marker found in " + dir)
}

// NewCmdWorkspace wires a command to a command-driven workspace in one
// step: the workspace's dispatch table is derived from the command and
// initialization (clone or fresh-init) happens here unless the marker
// already exists.
func NewCmdWorkspace(dir string, cmd *Command, diag workspace.Diagnostics) (*workspace.Workspace, error) {
	return workspace.NewCmd(dir, workspace.CmdOptions{
		Marker:      cmd.Marker(),
		Table:       cmd.Table(),
		Diagnostics: diag,
	})
}
