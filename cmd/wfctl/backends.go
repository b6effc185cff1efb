// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/vcs"
)

// newBackendsCmd creates the backends command.
func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List registered backends and their availability",
		Long: `List every registered backend with its marker directory, default
remote token, and whether its tool or library is usable here.

Examples:
  wfctl backends
  wfctl backends --json`,
		Args: cobra.NoArgs,
		RunE: runBackends,
	}
}

// runBackends executes the backends command.
func runBackends(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if printer.IsJSON() {
		var list []map[string]any
		for _, name := range vcs.Names() {
			backend, err := vcs.Get(name)
			if err != nil {
				return err
			}
			list = append(list, map[string]any{
				"name":           backend.Name(),
				"marker":         backend.Marker(),
				"default_remote": backend.DefaultRemote(),
				"available":      backend.Available(),
			})
		}
		return printer.Success(map[string]any{"backends": list})
	}

	headers := []string{"NAME", "MARKER", "DEFAULT REMOTE", "AVAILABLE"}
	var rows [][]string
	for _, name := range vcs.Names() {
		backend, err := vcs.Get(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			backend.Name(),
			backend.Marker(),
			backend.DefaultRemote(),
			formatBool(backend.Available()),
		})
	}
	printer.Table(headers, rows)
	return nil
}
