// Package output provides structured output and error handling for the
// wfctl CLI.
//
// The Printer is the single interface commands write through. It switches
// between human-readable output (lipgloss-styled when attached to a TTY)
// and JSON based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "workspace initialized"})
//	printer.Error(err)
//
// Errors carry exit codes through *ExitError:
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: user error (bad args, unknown backend)
//	output.ExitSystemError // 2: system error (VCS tool failed, I/O error)
//	output.ExitConflict    // 3: conflict (state mismatch)
//
// Construct them with NewUserError, NewSystemError,
// NewSystemErrorWithCause, and NewConflictError; GetExitCode extracts the
// code for the process exit status.
package output
