// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/envfile"
	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/workspace"
)

// saveFlags holds the command-line flags for the save command.
type saveFlags struct {
	message  string
	name     string
	email    string
	username string
	password string
}

// newSaveCmd creates the save command.
func newSaveCmd() *cobra.Command {
	flags := &saveFlags{}

	cmd := &cobra.Command{
		Use:   "save [paths...]",
		Short: "Commit tracked paths and push to the remote",
		Long: `Save the workspace: stage every tracked path in lexicographic order,
record exactly one commit, then push when a remote is configured.

Extra paths given as arguments are tracked before saving. With no remote
the push is skipped and the workspace stays local-only. Credentials for
authenticated remotes come from --username/--password or the
WFCTL_USERNAME/WFCTL_PASSWORD environment variables.

Examples:
  wfctl save -m "update parameters"
  wfctl save -m "add results" results/out.csv
  wfctl save -m "sync" --username ci --password "$TOKEN"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, args, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Commit message (required)")
	cmd.Flags().StringVar(&flags.name, "name", "", "Committer name (overrides config)")
	cmd.Flags().StringVar(&flags.email, "email", "", "Committer email (overrides config)")
	cmd.Flags().StringVar(&flags.username, "username", "", "Username for the push target")
	cmd.Flags().StringVar(&flags.password, "password", "", "Password or token for the push target")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

// runSave executes the save command.
func runSave(cmd *cobra.Command, args []string, flags *saveFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	state, command, ws, err := openWorkspace(cmd)
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

	if len(ws.TrackedSubpaths()) == 0 {
		userErr := output.NewUserError("nothing tracked: run 'wfctl track' or pass paths to save")
		printer.Error(userErr)
		return userErr
	}

	username, password := flags.username, flags.password
	if username == "" && password == "" {
		username, password = envfile.Credentials()
	}

	opts := workspace.SaveOptions{
		Message:   flags.message,
		Committer: resolveCommitter(flags.name, flags.email),
		Username:  username,
		Password:  password,
	}
	if err := ws.Save(opts); err != nil {
		printer.Error(err)
		return err
	}

	// Persist tracked paths and any remote learned from backend storage.
	state.Tracked = ws.TrackedSubpaths()
	state.Remote = command.Remote()
	if err := config.SaveState(workingDir(cmd), state); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"saved":   len(state.Tracked),
			"message": flags.message,
			"remote":  state.Remote,
		})
	}

	printer.KeyValue("Saved", flags.message)
	if state.Remote != "" {
		printer.KeyValue("Pushed to", state.Remote)
	}
	return nil
}
