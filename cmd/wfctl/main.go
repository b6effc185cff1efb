// Package main provides the entry point for the wfctl CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/envfile"
	"github.com/calumma/wfctl/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor enables styled output when stdout is a terminal.
func useColor(cmd *cobra.Command) bool {
	return output.IsTTY(cmd.OutOrStdout())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the wfctl CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wfctl",
		Short: "Version-controlled workspace manager",
		Long: `wfctl manages versioned workspaces behind a uniform save protocol.

A workspace is a working directory whose files are tracked and saved
through an interchangeable VCS backend (git, mercurial, or the embedded
go-git engine). Every save stages the tracked paths, records exactly one
commit, and pushes when a remote is configured.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'wfctl --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load workspace and global env files for sync credentials.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles(workingDir(cmd))
		return nil
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("dir", "C", ".", "Working directory of the workspace")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug diagnostics")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	// Define command groups and add commands
	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. <dir>/.wfctl/env      (per-workspace, gitignored)
//  2. <dir>/.env            (per-workspace)
//  3. ~/.config/wfctl/env   (global fallback)
func loadEnvFiles(dir string) {
	_ = envfile.LoadWorkspace(dir)

	if configDir := config.Dir(); configDir != "" {
		_ = envfile.Load(filepath.Join(configDir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "workspace", Title: "Workspace Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "sync", Title: "Sync Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Workspace commands: init, track, save, status
	addGroupedCommand(cmd, newInitCmd(), "workspace")
	addGroupedCommand(cmd, newTrackCmd(), "workspace")
	addGroupedCommand(cmd, newSaveCmd(), "workspace")
	addGroupedCommand(cmd, newStatusCmd(), "workspace")

	// Sync commands: remote, pull, reset
	addGroupedCommand(cmd, newRemoteCmd(), "sync")
	addGroupedCommand(cmd, newPullCmd(), "sync")
	addGroupedCommand(cmd, newResetCmd(), "sync")

	// Admin commands: backends, mcp
	addGroupedCommand(cmd, newBackendsCmd(), "admin")
	addGroupedCommand(cmd, newMCPCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
