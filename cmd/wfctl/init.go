// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/vcs"
)

// initFlags holds the command-line flags for the init command.
type initFlags struct {
	backend string
	remote  string
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace in the working directory",
		Long: `Initialize a versioned workspace in the working directory.

With --remote the directory is populated by cloning; without it a fresh
empty repository is created. A directory that already carries the
backend's marker is adopted as-is. The backend defaults to the global
config's default_backend, falling back to auto-detection of an existing
marker.

Examples:
  wfctl init --backend git
  wfctl init --backend gogit --remote http://example.com/repo
  wfctl init -C /path/to/dir --backend mercurial`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.backend, "backend", "b", "", "Backend managing the workspace (git, mercurial, gogit)")
	cmd.Flags().StringVarP(&flags.remote, "remote", "r", "", "Remote to clone from and sync with")
	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, flags *initFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	dir := workingDir(cmd)

	if config.StateExists(dir) {
		err := output.NewConflictError("workspace already initialized: " + dir)
		printer.Error(err)
		return err
	}

	backend, err := chooseBackend(dir, flags.backend)
	if err != nil {
		printer.Error(err)
		return err
	}

	diag := diagnostics(cmd)
	command := vcs.NewCommand(backend, flags.remote).WithDiagnostics(diag)
	if _, err := vcs.NewCmdWorkspace(dir, command, diag); err != nil {
		printer.Error(err)
		return err
	}

	state := &config.WorkspaceState{Backend: backend.Name(), Remote: flags.remote}
	if err := config.SaveState(dir, state); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"dir":     dir,
			"backend": backend.Name(),
			"remote":  flags.remote,
		})
	}

	printer.KeyValue("Initialized", dir)
	printer.KeyValue("Backend", backend.Name())
	if flags.remote != "" {
		printer.KeyValue("Remote", flags.remote)
	}
	return nil
}

// chooseBackend resolves the backend for a new workspace: the explicit
// flag, then the configured default, then marker auto-detection.
func chooseBackend(dir, name string) (vcs.Backend, error) {
	if name != "" {
		return vcs.Get(name)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DefaultBackend != "" {
		return vcs.Get(cfg.DefaultBackend)
	}

	if backend, err := vcs.Detect(dir); err == nil {
		return backend, nil
	}
	return nil, output.NewUserError("no backend selected: pass --backend or set default_backend in the global config")
}
