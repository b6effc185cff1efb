package mcp

import (
	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/vcs"
	"github.com/calumma/wfctl/internal/workspace"
)

// Session binds the MCP tools to one working directory. State is
// re-read on every call so concurrent CLI invocations stay visible.
type Session struct {
	dir  string
	diag workspace.Diagnostics
}

// NewSession creates a session for the given working directory.
// diag may be nil.
func NewSession(dir string, diag workspace.Diagnostics) *Session {
	if diag == nil {
		diag = workspace.NopDiagnostics()
	}
	return &Session{dir: dir, diag: diag}
}

// Dir returns the session's working directory.
func (s *Session) Dir() string {
	return s.dir
}

// open reconstructs the workspace from the persisted state file. The
// returned workspace has every tracked path re-registered.
func (s *Session) open() (*config.WorkspaceState, *vcs.Command, *workspace.Workspace, error) {
	state, err := config.LoadState(s.dir)
	if err != nil {
		return nil, nil, nil, err
	}

	backend, err := vcs.Get(state.Backend)
	if err != nil {
		return nil, nil, nil, err
	}

	cmd := vcs.NewCommand(backend, state.Remote).WithDiagnostics(s.diag)
	ws, err := vcs.NewCmdWorkspace(s.dir, cmd, s.diag)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, path := range state.Tracked {
		if err := ws.AddFile(path); err != nil {
			return nil, nil, nil, err
		}
	}
	return state, cmd, ws, nil
}
