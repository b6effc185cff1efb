package workspace

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Workspace is the in-memory handle to a managed working directory.
// The zero value is not usable; construct with New or NewCmd.
type Workspace struct {
	workingDir string
	files      map[string]struct{}

	// Command-driven configuration. A plain workspace leaves these zero
	// and Save degrades to a no-op.
	marker      string
	table       CommandTable
	initialized bool

	diag Diagnostics
}

// CmdOptions configures a command-driven workspace.
type CmdOptions struct {
	// Marker is the backend metadata directory (relative to the working
	// directory) whose presence means "already initialized". Required.
	Marker string

	// Table binds the init and save phases. Missing entries degrade to
	// no-ops with a diagnostic.
	Table CommandTable

	// Diagnostics receives non-fatal reports. Nil means discard.
	Diagnostics Diagnostics
}

// New creates a plain workspace for the given directory. The directory is
// normalized to an absolute path. Save on a plain workspace does nothing:
// the filesystem state is the source of truth.
func New(workingDir string) (*Workspace, error) {
	abs, err := filepath.Abs(filepath.Clean(workingDir))
	if err != nil {
		return nil, err
	}
	ws := &Workspace{
		workingDir: abs,
		diag:       NopDiagnostics(),
	}
	ws.Reset()
	return ws, nil
}

// NewCmd creates a command-driven workspace. The marker is checked once:
// if workingDir/marker exists as a directory the workspace is considered
// initialized and the init phase is skipped; otherwise the table's init
// phase runs (clone or fresh-init, per the backend's own remote state).
// A missing marker option fails with ErrNoMarker before any side effect.
func NewCmd(workingDir string, opts CmdOptions) (*Workspace, error) {
	if opts.Marker == "" {
		return nil, ErrNoMarker
	}

	ws, err := New(workingDir)
	if err != nil {
		return nil, err
	}
	ws.marker = opts.Marker
	ws.table = opts.Table
	if opts.Diagnostics != nil {
		ws.diag = opts.Diagnostics
	}

	if ws.checkMarker() {
		ws.diag.Record(slog.LevelDebug, "workspace already initialized", "dir", ws.workingDir)
		ws.initialized = true
		return ws, nil
	}

	if err := ws.initPhase()(ws, InitOptions{}); err != nil {
		return nil, err
	}
	ws.initialized = true
	return ws, nil
}

// WorkingDir returns the absolute, normalized workspace root.
func (w *Workspace) WorkingDir() string {
	return w.workingDir
}

// Marker returns the marker path, empty for plain workspaces.
func (w *Workspace) Marker() string {
	return w.marker
}

// checkMarker reports whether the marker directory exists on disk.
func (w *Workspace) checkMarker() bool {
	target := filepath.Join(w.workingDir, w.marker)
	info, err := os.Stat(target)
	return err == nil && info.IsDir()
}

// Reset clears the tracked path set without touching disk. Used when a
// workspace is reconstructed for a directory populated externally.
func (w *Workspace) Reset() {
	w.files = make(map[string]struct{})
}

// AddFile registers a file for the next save. The path may be absolute or
// relative to the working directory. The resolved location must be
// strictly inside the working directory; anything that equals or escapes
// the root fails with an *OutOfBoundsError and leaves the tracked set
// unchanged. Adding the same path twice is a no-op.
func (w *Workspace) AddFile(name string) error {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.workingDir, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(w.workingDir, path)
	if err != nil || !isSubpath(rel) {
		return &OutOfBoundsError{Path: name, WorkingDir: w.workingDir}
	}

	w.files[rel] = struct{}{}
	return nil
}

// isSubpath reports whether a Rel result stays inside the root.
// "." means the root itself, which is not a trackable subpath.
func isSubpath(rel string) bool {
	if rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// TrackedSubpaths returns the tracked workspace-relative paths in
// lexicographic order, so batch adds are reproducible across runs.
func (w *Workspace) TrackedSubpaths() []string {
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Save runs the save lifecycle phase: add every tracked path, commit once,
// push at most once. On a plain workspace, or when the table has no save
// entry, this is a no-op. Backend failures propagate unmodified; the
// working directory is left in whatever partial state the backend
// produced, so the failure remains inspectable.
func (w *Workspace) Save(opts SaveOptions) error {
	return w.savePhase()(w, opts)
}
