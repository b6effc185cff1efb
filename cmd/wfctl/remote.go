// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/vcs"
	"github.com/calumma/wfctl/internal/workspace"
)

// remoteFlags holds the command-line flags for the remote command.
type remoteFlags struct {
	username string
	password string
	resolved bool
}

// newRemoteCmd creates the remote command.
func newRemoteCmd() *cobra.Command {
	flags := &remoteFlags{}

	cmd := &cobra.Command{
		Use:   "remote [URL]",
		Short: "Show or set the sync remote",
		Long: `Show the workspace's sync remote, or persist a new one.

Without arguments the stored remote is printed; --resolved applies the
credential rules and prints the transfer target instead (the backend's
default token when nothing is stored). With a URL argument the remote is
written to the backend configuration and the workspace state file.

Examples:
  wfctl remote
  wfctl remote --resolved --username u --password p
  wfctl remote http://example.com/repo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemote(cmd, args, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.resolved, "resolved", false, "Print the resolved transfer target")
	cmd.Flags().StringVar(&flags.username, "username", "", "Username injected into the resolved target")
	cmd.Flags().StringVar(&flags.password, "password", "", "Password injected into the resolved target")
	return cmd
}

// runRemote executes the remote command.
func runRemote(cmd *cobra.Command, args []string, flags *remoteFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	state, command, ws, err := openWorkspace(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(args) == 1 {
		return setRemote(cmd, printer, state, command, ws, args[0])
	}

	if err := command.UpdateRemote(ws); err != nil {
		printer.Error(err)
		return err
	}

	value := command.Remote()
	if flags.resolved {
		value, err = command.GetRemote(ws, vcs.ResolveOptions{
			Username: flags.username,
			Password: flags.password,
		})
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"remote": value})
	}
	if value == "" {
		printer.Println("no remote configured")
		return nil
	}
	printer.Println(value)
	return nil
}

// setRemote persists a new remote in backend storage and the state file.
func setRemote(cmd *cobra.Command, printer *output.Printer, state *config.WorkspaceState, command *vcs.Command, ws *workspace.Workspace, remote string) error {
	command.SetRemote(remote)
	if err := command.WriteRemote(ws); err != nil {
		printer.Error(err)
		return err
	}

	state.Remote = remote
	if err := config.SaveState(workingDir(cmd), state); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"remote": remote})
	}
	printer.KeyValue("Remote", remote)
	return nil
}
