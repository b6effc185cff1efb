// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/envfile"
	"github.com/calumma/wfctl/internal/output"
)

// pullFlags holds the command-line flags for the pull command.
type pullFlags struct {
	username string
	password string
}

// newPullCmd creates the pull command.
func newPullCmd() *cobra.Command {
	flags := &pullFlags{}

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Bring remote history into the workspace",
		Long: `Pull history from the configured remote into the workspace.

With no remote configured the command is a no-op: local-only workspaces
are a supported mode, not an error.

Examples:
  wfctl pull
  wfctl pull --username u --password p`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPull(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.username, "username", "", "Username for the pull source")
	cmd.Flags().StringVar(&flags.password, "password", "", "Password or token for the pull source")
	return cmd
}

// runPull executes the pull command.
func runPull(cmd *cobra.Command, flags *pullFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	_, command, ws, err := openWorkspace(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	username, password := flags.username, flags.password
	if username == "" && password == "" {
		username, password = envfile.Credentials()
	}

	if err := command.Pull(ws, username, password); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"remote": command.Remote()})
	}
	if command.Remote() == "" {
		printer.Println("no remote configured, nothing pulled")
		return nil
	}
	printer.KeyValue("Pulled from", command.Remote())
	return nil
}
