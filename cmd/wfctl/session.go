// Package main provides the entry point for the wfctl CLI.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/logging"
	"github.com/calumma/wfctl/internal/vcs"
	"github.com/calumma/wfctl/internal/workspace"
)

// workingDir resolves the --dir persistent flag to an absolute path.
// Falls back to "." when resolution fails; workspace construction
// re-validates the path.
func workingDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil || dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

// diagnostics builds the slog-backed diagnostics sink for workspace and
// command internals. Diagnostics go to stderr so they never corrupt
// --json output on stdout.
func diagnostics(cmd *cobra.Command) workspace.Diagnostics {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.New(logging.Options{
		Verbose: verbose,
		JSON:    isJSONMode(cmd),
		Writer:  cmd.ErrOrStderr(),
	})
	return workspace.SlogDiagnostics(logger)
}

// openWorkspace reconstructs the workspace recorded in the state file:
// backend lookup, command wiring, and re-registration of tracked paths.
func openWorkspace(cmd *cobra.Command) (*config.WorkspaceState, *vcs.Command, *workspace.Workspace, error) {
	dir := workingDir(cmd)

	state, err := config.LoadState(dir)
	if err != nil {
		return nil, nil, nil, err
	}

	backend, err := vcs.Get(state.Backend)
	if err != nil {
		return nil, nil, nil, err
	}

	diag := diagnostics(cmd)
	command := vcs.NewCommand(backend, state.Remote).WithDiagnostics(diag)
	ws, err := vcs.NewCmdWorkspace(dir, command, diag)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, path := range state.Tracked {
		if err := ws.AddFile(path); err != nil {
			return nil, nil, nil, err
		}
	}
	return state, command, ws, nil
}

// resolveCommitter merges the identity flags with the global config.
// Flags win; an unset pair falls through to the command's default.
func resolveCommitter(name, email string) workspace.Committer {
	committer := workspace.Committer{Name: name, Email: email}
	if !committer.IsZero() {
		return committer
	}

	cfg, err := config.Load()
	if err != nil {
		return workspace.Committer{}
	}
	return workspace.Committer{Name: cfg.Committer.Name, Email: cfg.Committer.Email}
}
