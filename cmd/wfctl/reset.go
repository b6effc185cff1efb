// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/output"
)

// newResetCmd creates the reset command.
func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard local changes in favor of the remote",
		Long: `Reset the workspace to the remote's current state, discarding
uncommitted local changes. Unlike pull, a missing remote is an error:
there is nothing to converge on.

Examples:
  wfctl reset --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm discarding local changes")
	return cmd
}

// runReset executes the reset command.
func runReset(cmd *cobra.Command, yes bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if !yes {
		err := output.NewUserError("reset discards local changes: re-run with --yes to confirm")
		printer.Error(err)
		return err
	}

	_, command, ws, err := openWorkspace(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := command.ResetToRemote(ws); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"remote": command.Remote()})
	}
	printer.KeyValue("Reset to", command.Remote())
	return nil
}
