// Package workspace provides the version-control-agnostic working
// directory abstraction for wfctl.
//
// A Workspace owns a working directory and the set of file paths tracked
// for the next save. It comes in two configurations:
//
//   - Plain: the filesystem is the source of truth and Save is a no-op.
//     Used for directories managed entirely outside wfctl.
//   - Command-driven: constructed with a marker (a backend metadata
//     directory such as ".git") and a CommandTable binding the init and
//     save lifecycle phases to a backend.
//
// # Construction and initialization
//
// Command-driven construction is idempotent against an already-initialized
// directory: the marker is checked exactly once, and the init phase runs
// only when the marker directory is absent.
//
//	ws, err := workspace.NewCmd(dir, workspace.CmdOptions{
//	    Marker: cmd.Marker(),
//	    Table:  cmd.Table(),
//	})
//
// # Tracking files
//
// AddFile accepts absolute or workspace-relative paths and validates that
// the resolved location is strictly inside the working directory. Paths
// that equal or escape the root fail with an *OutOfBoundsError.
//
//	if err := ws.AddFile("data/model.xml"); err != nil { ... }
//	paths := ws.TrackedSubpaths() // lexicographic order
//
// # Diagnostics
//
// Non-fatal conditions (a lifecycle phase with no registered handler) are
// reported through an injected Diagnostics sink rather than a process-wide
// logger. Callers that do not care pass nil and get a silent sink.
package workspace
