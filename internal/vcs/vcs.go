package vcs

import (
	"log/slog"

	"github.com/calumma/wfctl/internal/workspace"
)

// Backend is the adapter contract one concrete VCS implementation
// fulfills. Backends construct tool invocations (or library calls) only;
// target resolution, ordering, and credential handling live in Command.
type Backend interface {
	// Name is the registry key, e.g. "git".
	Name() string

	// Marker is the metadata directory that marks an initialized
	// working directory, e.g. ".git".
	Marker() string

	// DefaultRemote is the backend's standard destination token used
	// when no remote URL is stored, e.g. "origin".
	DefaultRemote() string

	// Available reports whether the underlying tool or library is
	// usable in the current environment.
	Available() bool

	// Clone populates the working directory from remote.
	Clone(ws *workspace.Workspace, remote string) error

	// InitNew creates a fresh, empty versioned tree.
	InitNew(ws *workspace.Workspace) error

	// Add stages a single workspace-relative path for the next commit.
	Add(ws *workspace.Workspace, path string) error

	// Commit records all currently staged paths. With zero staged
	// changes every backend silently skips the commit.
	Commit(ws *workspace.Workspace, message string, committer workspace.Committer) error

	// Push transmits committed history to the resolved target.
	Push(ws *workspace.Workspace, target string) error

	// Pull brings history from the resolved target into the workspace.
	Pull(ws *workspace.Workspace, target string) error

	// ReadRemote returns the remote URL persisted in the workspace's
	// backend configuration, or "" when none is stored.
	ReadRemote(ws *workspace.Workspace) (string, error)

	// WriteRemote persists the remote URL in the workspace's backend
	// configuration.
	WriteRemote(ws *workspace.Workspace, remote string) error

	// ResetToRemote discards local changes in favor of the target's
	// current state.
	ResetToRemote(ws *workspace.Workspace, target string) error
}

// defaultCommitter is used when neither the command nor the save options
// carry an identity. Backends that require one (all of them) would
// otherwise fail on environments without global tool configuration.
var defaultCommitter = workspace.Committer{Name: "wfctl", Email: "wfctl@localhost"}

// Command binds a Backend to the generic lifecycle protocol. A Command is
// supplied to exactly one workspace at a time; it holds the mutable remote
// and the committer identity for the next commit, both cheap to
// reconstruct on every process run.
type Command struct {
	backend   Backend
	remote    string
	committer workspace.Committer
	diag      workspace.Diagnostics
}

// NewCommand creates a command for the given backend. remote may be empty
// for local-only workspaces.
func NewCommand(backend Backend, remote string) *Command {
	return &Command{
		backend: backend,
		remote:  remote,
		diag:    workspace.NopDiagnostics(),
	}
}

// WithDiagnostics sets the sink for non-fatal reports (skipped pushes,
// empty commits). Returns the command for chaining.
func (c *Command) WithDiagnostics(diag workspace.Diagnostics) *Command {
	c.diag = diag
	return c
}

// Name returns the backend registry name.
func (c *Command) Name() string {
	return c.backend.Name()
}

// Marker returns the backend marker directory.
func (c *Command) Marker() string {
	return c.backend.Marker()
}

// Remote returns the in-memory remote, "" when none is configured.
func (c *Command) Remote() string {
	return c.remote
}

// SetRemote replaces the in-memory remote. The stored value is untouched
// until WriteRemote or UpdateRemote runs.
func (c *Command) SetRemote(remote string) {
	c.remote = remote
}

// SetCommitter sets the identity attributed to subsequent commits.
func (c *Command) SetCommitter(name, email string) {
	c.committer = workspace.Committer{Name: name, Email: email}
}

// Table derives the workspace command table from this command.
func (c *Command) Table() workspace.CommandTable {
	return workspace.CommandTable{
		Init: c.Init,
		Save: c.Save,
	}
}

// Init bootstraps the working directory: clone when a remote is
// configured, fresh-init otherwise.
func (c *Command) Init(ws *workspace.Workspace, _ workspace.InitOptions) error {
	if c.remote != "" {
		return c.backend.Clone(ws, c.remote)
	}
	return c.backend.InitNew(ws)
}

// Save runs the fixed save protocol: every tracked path is added in
// lexicographic order, then exactly one commit, then at most one push.
// Multiple Save calls never batch into one commit. Any primitive failure
// propagates uncaught.
func (c *Command) Save(ws *workspace.Workspace, opts workspace.SaveOptions) error {
	for _, path := range ws.TrackedSubpaths() {
		if err := c.backend.Add(ws, path); err != nil {
			return err
		}
	}

	committer := opts.Committer
	if committer.IsZero() {
		committer = c.committer
	}
	if committer.IsZero() {
		committer = defaultCommitter
	}

	if err := c.backend.Commit(ws, opts.Message, committer); err != nil {
		return err
	}

	return c.Push(ws, opts.Username, opts.Password)
}

// Push transmits history to the resolved remote target. When no remote is
// configured anywhere, neither in memory nor in the workspace's stored
// configuration, push is a diagnostics-only no-op: local-only workspaces
// are a supported mode, not an error.
func (c *Command) Push(ws *workspace.Workspace, username, password string) error {
	target, ok, err := c.resolveTarget(ws, username, password)
	if err != nil {
		return err
	}
	if !ok {
		c.diag.Record(slog.LevelInfo, "no remote configured, skipping push", "dir", ws.WorkingDir())
		return nil
	}
	return c.backend.Push(ws, target)
}

// Pull brings history from the resolved remote target. Like Push it is a
// no-op when no remote is configured.
func (c *Command) Pull(ws *workspace.Workspace, username, password string) error {
	target, ok, err := c.resolveTarget(ws, username, password)
	if err != nil {
		return err
	}
	if !ok {
		c.diag.Record(slog.LevelInfo, "no remote configured, skipping pull", "dir", ws.WorkingDir())
		return nil
	}
	return c.backend.Pull(ws, target)
}

// ResetToRemote discards local workspace changes in favor of the remote's
// current state. Unlike push/pull a missing remote is an error here: the
// caller asked to converge on a remote that does not exist.
func (c *Command) ResetToRemote(ws *workspace.Workspace) error {
	target, ok, err := c.resolveTarget(ws, "", "")
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoRemote
	}
	return c.backend.ResetToRemote(ws, target)
}

// resolveTarget reconciles the remote and resolves the transfer target.
// ok is false when no remote is configured anywhere.
func (c *Command) resolveTarget(ws *workspace.Workspace, username, password string) (target string, ok bool, err error) {
	if err := c.UpdateRemote(ws); err != nil {
		return "", false, err
	}
	if c.remote == "" {
		return "", false, nil
	}
	target, err = c.GetRemote(ws, ResolveOptions{Username: username, Password: password})
	if err != nil {
		return "", false, err
	}
	return target, true, nil
}

// ReadRemote returns the remote persisted in the workspace configuration,
// "" when none is stored.
func (c *Command) ReadRemote(ws *workspace.Workspace) (string, error) {
	return c.backend.ReadRemote(ws)
}

// WriteRemote persists the in-memory remote to the workspace
// configuration.
func (c *Command) WriteRemote(ws *workspace.Workspace) error {
	return c.backend.WriteRemote(ws, c.remote)
}

// UpdateRemote reconciles the in-memory remote with the stored one. A
// freshly constructed command against an initialized workspace loads the
// stored value; an in-memory value differing from storage is written
// back; with both unset nothing happens. Reconciling twice in a row
// performs no second write.
func (c *Command) UpdateRemote(ws *workspace.Workspace) error {
	stored, err := c.backend.ReadRemote(ws)
	if err != nil {
		return err
	}
	if c.remote == "" {
		c.remote = stored
		return nil
	}
	if c.remote != stored {
		return c.backend.WriteRemote(ws, c.remote)
	}
	return nil
}
