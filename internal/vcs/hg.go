package vcs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/workspace"
)

// hgBackend drives the Mercurial binary through os/exec. The default path
// is persisted in .hg/hgrc, which this backend reads and writes directly
// because hg has no config-set command for repository paths.
type hgBackend struct{}

func (hgBackend) Name() string          { return "mercurial" }
func (hgBackend) Marker() string        { return ".hg" }
func (hgBackend) DefaultRemote() string { return "default" }
func (hgBackend) Available() bool       { return toolAvailable("hg") }

func (hgBackend) Clone(ws *workspace.Workspace, remote string) error {
	_, err := run(context.Background(), "", "hg", "clone", remote, ws.WorkingDir())
	return err
}

func (hgBackend) InitNew(ws *workspace.Workspace) error {
	_, err := run(context.Background(), "", "hg", "init", ws.WorkingDir())
	return err
}

func (hgBackend) Add(ws *workspace.Workspace, path string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "hg", "add", path)
	return err
}

func (hgBackend) Commit(ws *workspace.Workspace, message string, committer workspace.Committer) error {
	ctx := context.Background()
	dir := ws.WorkingDir()

	// Added, modified, or removed files pending commit.
	pending, err := run(ctx, dir, "hg", "status", "-amr")
	if err != nil {
		return err
	}
	if pending == "" {
		return nil
	}

	_, err = run(ctx, dir, "hg", "commit", "-m", message, "-u", committer.String())
	return err
}

func (hgBackend) Push(ws *workspace.Workspace, target string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "hg", "push", target)
	return err
}

func (hgBackend) Pull(ws *workspace.Workspace, target string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "hg", "pull", "-u", target)
	return err
}

func (hgBackend) ReadRemote(ws *workspace.Workspace) (string, error) {
	return readHgrcDefault(hgrcPath(ws))
}

func (hgBackend) WriteRemote(ws *workspace.Workspace, remote string) error {
	return writeHgrcDefault(hgrcPath(ws), remote)
}

func (hgBackend) ResetToRemote(ws *workspace.Workspace, target string) error {
	ctx := context.Background()
	dir := ws.WorkingDir()
	if _, err := run(ctx, dir, "hg", "pull", target); err != nil {
		return err
	}
	_, err := run(ctx, dir, "hg", "update", "--clean")
	return err
}

// hgrcPath returns the repository configuration file location.
func hgrcPath(ws *workspace.Workspace) string {
	return filepath.Join(ws.WorkingDir(), ".hg", "hgrc")
}

// readHgrcDefault extracts the default path from an hgrc file. A missing
// file or missing entry means no remote is stored.
func readHgrcDefault(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", output.NewSystemErrorWithCause("reading "+path, err)
	}

	inPaths := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "["):
			inPaths = line == "[paths]"
		case inPaths:
			if key, value, found := strings.Cut(line, "="); found && strings.TrimSpace(key) == "default" {
				return strings.TrimSpace(value), nil
			}
		}
	}
	return "", nil
}

// writeHgrcDefault sets the default path in an hgrc file, preserving any
// other content. The [paths] section and the entry are created on demand.
func writeHgrcDefault(path, remote string) error {
	entry := "default = " + remote

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return output.NewSystemErrorWithCause("reading "+path, err)
		}
		data = nil
	}

	var lines []string
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	replaced := false
	pathsAt := -1
	inPaths := false
	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inPaths = trimmed == "[paths]"
			if inPaths {
				pathsAt = idx
			}
			continue
		}
		if inPaths {
			if key, _, found := strings.Cut(trimmed, "="); found && strings.TrimSpace(key) == "default" {
				lines[idx] = entry
				replaced = true
				break
			}
		}
	}

	switch {
	case replaced:
		// Entry updated in place.
	case pathsAt >= 0:
		// Section exists without a default entry: insert right after it.
		lines = append(lines[:pathsAt+1], append([]string{entry}, lines[pathsAt+1:]...)...)
	default:
		lines = append(lines, "[paths]", entry)
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return output.NewSystemErrorWithCause("writing "+path, err)
	}
	return nil
}
