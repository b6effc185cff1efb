package vcs

import (
	"context"

	"github.com/calumma/wfctl/internal/workspace"
)

// gitBackend drives the git binary through os/exec.
type gitBackend struct{}

func (gitBackend) Name() string          { return "git" }
func (gitBackend) Marker() string        { return ".git" }
func (gitBackend) DefaultRemote() string { return "origin" }
func (gitBackend) Available() bool       { return toolAvailable("git") }

func (gitBackend) Clone(ws *workspace.Workspace, remote string) error {
	_, err := run(context.Background(), "", "git", "clone", remote, ws.WorkingDir())
	return err
}

func (gitBackend) InitNew(ws *workspace.Workspace) error {
	_, err := run(context.Background(), "", "git", "init", ws.WorkingDir())
	return err
}

func (gitBackend) Add(ws *workspace.Workspace, path string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "git", "add", "--", path)
	return err
}

func (gitBackend) Commit(ws *workspace.Workspace, message string, committer workspace.Committer) error {
	ctx := context.Background()
	dir := ws.WorkingDir()

	staged, err := run(ctx, dir, "git", "diff", "--cached", "--name-only")
	if err != nil {
		return err
	}
	if staged == "" {
		// Nothing staged: skip the commit rather than fail.
		return nil
	}

	_, err = run(ctx, dir, "git",
		"-c", "user.name="+committer.Name,
		"-c", "user.email="+committer.Email,
		"commit", "--allow-empty-message", "-m", message)
	return err
}

func (gitBackend) Push(ws *workspace.Workspace, target string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "git", "push", target, "HEAD")
	return err
}

func (gitBackend) Pull(ws *workspace.Workspace, target string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "git", "pull", target)
	return err
}

// ReadRemote reads remote.origin.url from the repository configuration.
// git config exits non-zero for an unset key, which maps to "no remote
// stored" rather than a failure.
func (gitBackend) ReadRemote(ws *workspace.Workspace) (string, error) {
	out, err := run(context.Background(), ws.WorkingDir(), "git", "config", "--get", "remote.origin.url")
	if err != nil {
		return "", nil
	}
	return out, nil
}

func (gitBackend) WriteRemote(ws *workspace.Workspace, remote string) error {
	_, err := run(context.Background(), ws.WorkingDir(), "git", "config", "remote.origin.url", remote)
	return err
}

func (gitBackend) ResetToRemote(ws *workspace.Workspace, target string) error {
	ctx := context.Background()
	dir := ws.WorkingDir()
	if _, err := run(ctx, dir, "git", "fetch", target); err != nil {
		return err
	}
	_, err := run(ctx, dir, "git", "reset", "--hard", "FETCH_HEAD")
	return err
}
