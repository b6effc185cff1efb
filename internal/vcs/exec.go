package vcs

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/calumma/wfctl/internal/output"
)

// run executes an external VCS tool with the given arguments, in dir when
// dir is non-empty. It captures stdout and returns it as a trimmed
// string. Returns an *output.ExitError on failure with the tool's stderr
// folded into the message.
func run(ctx context.Context, dir, tool string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError(tool + " not found: ensure " + tool + " is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause(tool+" command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// toolAvailable reports whether an executable is reachable through PATH.
func toolAvailable(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}
