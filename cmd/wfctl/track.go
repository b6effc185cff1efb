// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/output"
)

// newTrackCmd creates the track command.
func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <paths...>",
		Short: "Register paths for the next save",
		Long: `Register workspace-relative paths for the next save.

Paths may be given relative to the working directory or absolute; either
way they must resolve inside the working directory. Tracking the same
path twice is harmless. The registration persists in the workspace state
file until the paths are saved or untracked.

Examples:
  wfctl track model.xml data/params.txt
  wfctl track --json src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTrack,
	}
}

// runTrack executes the track command.
func runTrack(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	state, _, ws, err := openWorkspace(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	for _, path := range args {
		if err := ws.AddFile(path); err != nil {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}
	}

	state.Tracked = ws.TrackedSubpaths()
	if err := config.SaveState(workingDir(cmd), state); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"tracked": state.Tracked})
	}

	for _, path := range state.Tracked {
		printer.Println(path)
	}
	return nil
}
