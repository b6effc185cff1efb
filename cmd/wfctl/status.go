// Package main provides the entry point for the wfctl CLI.
package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Dir         string   `json:"dir"`
	Backend     string   `json:"backend"`
	Remote      string   `json:"remote,omitempty"`
	Initialized bool     `json:"initialized"`
	Tracked     []string `json:"tracked,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show workspace state",
		Long: `Show the current state of the workspace.

Displays the working directory, the backend managing it, the configured
remote, and the paths registered for the next save.

Examples:
  wfctl status          # Show human-readable status
  wfctl status --json   # Output status as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	state, command, ws, err := openWorkspace(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	info, statErr := os.Stat(filepath.Join(ws.WorkingDir(), command.Marker()))
	result := &statusResult{
		Dir:         ws.WorkingDir(),
		Backend:     state.Backend,
		Remote:      state.Remote,
		Initialized: statErr == nil && info.IsDir(),
		Tracked:     ws.TrackedSubpaths(),
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"dir":         result.Dir,
			"backend":     result.Backend,
			"remote":      result.Remote,
			"initialized": result.Initialized,
			"tracked":     result.Tracked,
		})
	}

	printer.KeyValue("Directory", result.Dir)
	printer.KeyValue("Backend", result.Backend)
	printer.KeyValue("Initialized", formatBool(result.Initialized))
	if result.Remote != "" {
		printer.KeyValue("Remote", result.Remote)
	}
	printer.KeyValue("Tracked", strconv.Itoa(len(result.Tracked)))
	for _, path := range result.Tracked {
		printer.Println("  " + path)
	}
	return nil
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
