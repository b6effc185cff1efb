package workspace

import "log/slog"

// InitFunc performs the init lifecycle phase for a workspace.
type InitFunc func(ws *Workspace, opts InitOptions) error

// SaveFunc performs the save lifecycle phase for a workspace.
type SaveFunc func(ws *Workspace, opts SaveOptions) error

// CommandTable binds the two recognized lifecycle phases to a backend.
// A nil phase is not an error: lookup degrades to a shared no-op and the
// missing phase is reported through the workspace diagnostics sink. This
// keeps partial tables (a read-only backend with no save) safe to use.
type CommandTable struct {
	Init InitFunc
	Save SaveFunc
}

// initPhase returns the bound init function, or a no-op when unbound.
func (w *Workspace) initPhase() InitFunc {
	if w.table.Init == nil {
		w.diag.Record(slog.LevelInfo, "lifecycle phase not defined, using no-op", "phase", "init")
		return func(*Workspace, InitOptions) error { return nil }
	}
	return w.table.Init
}

// savePhase returns the bound save function, or a no-op when unbound.
func (w *Workspace) savePhase() SaveFunc {
	if w.table.Save == nil {
		w.diag.Record(slog.LevelInfo, "lifecycle phase not defined, using no-op", "phase", "save")
		return func(*Workspace, SaveOptions) error { return nil }
	}
	return w.table.Save
}
