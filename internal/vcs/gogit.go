package vcs

import (
	"errors"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/calumma/wfctl/internal/output"
	"github.com/calumma/wfctl/internal/workspace"
)

// gogitBackend manages git repositories through the go-git library,
// needing no external binary. It shares the ".git" marker with the exec
// backend; the two are interchangeable on the same working directory.
type gogitBackend struct{}

// incomingRemoteName holds refs fetched by ResetToRemote.
const incomingRemoteName = "incoming"

func (gogitBackend) Name() string          { return "gogit" }
func (gogitBackend) Marker() string        { return ".git" }
func (gogitBackend) DefaultRemote() string { return "origin" }
func (gogitBackend) Available() bool       { return true }

func (gogitBackend) Clone(ws *workspace.Workspace, remote string) error {
	_, err := gogit.PlainClone(ws.WorkingDir(), false, &gogit.CloneOptions{URL: remote})
	if err != nil {
		return output.NewSystemErrorWithCause("go-git clone from "+remote, err)
	}
	return nil
}

func (gogitBackend) InitNew(ws *workspace.Workspace) error {
	if _, err := gogit.PlainInit(ws.WorkingDir(), false); err != nil {
		return output.NewSystemErrorWithCause("go-git init at "+ws.WorkingDir(), err)
	}
	return nil
}

func (gogitBackend) Add(ws *workspace.Workspace, path string) error {
	tree, err := openWorktree(ws)
	if err != nil {
		return err
	}
	if _, err := tree.Add(filepath.ToSlash(path)); err != nil {
		return output.NewSystemErrorWithCause("go-git add "+path, err)
	}
	return nil
}

func (gogitBackend) Commit(ws *workspace.Workspace, message string, committer workspace.Committer) error {
	tree, err := openWorktree(ws)
	if err != nil {
		return err
	}

	status, err := tree.Status()
	if err != nil {
		return output.NewSystemErrorWithCause("go-git status", err)
	}
	if !hasStagedChanges(status) {
		return nil
	}

	signature := &object.Signature{
		Name:  committer.Name,
		Email: committer.Email,
		When:  time.Now(),
	}
	_, err = tree.Commit(message, &gogit.CommitOptions{Author: signature, Committer: signature})
	if err != nil {
		return output.NewSystemErrorWithCause("go-git commit", err)
	}
	return nil
}

func (gogitBackend) Push(ws *workspace.Workspace, target string) error {
	repo, err := openRepo(ws)
	if err != nil {
		return err
	}
	err = repo.Push(&gogit.PushOptions{
		RemoteURL: target,
		RefSpecs:  []config.RefSpec{"refs/heads/*:refs/heads/*"},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return output.NewSystemErrorWithCause("go-git push to "+target, err)
	}
	return nil
}

func (gogitBackend) Pull(ws *workspace.Workspace, target string) error {
	tree, err := openWorktree(ws)
	if err != nil {
		return err
	}
	err = tree.Pull(&gogit.PullOptions{RemoteURL: target})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return output.NewSystemErrorWithCause("go-git pull from "+target, err)
	}
	return nil
}

func (gogitBackend) ReadRemote(ws *workspace.Workspace) (string, error) {
	repo, err := openRepo(ws)
	if err != nil {
		return "", err
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", output.NewSystemErrorWithCause("go-git config", err)
	}
	remote, ok := cfg.Remotes["origin"]
	if !ok || len(remote.URLs) == 0 {
		return "", nil
	}
	return remote.URLs[0], nil
}

func (gogitBackend) WriteRemote(ws *workspace.Workspace, remote string) error {
	repo, err := openRepo(ws)
	if err != nil {
		return err
	}
	cfg, err := repo.Config()
	if err != nil {
		return output.NewSystemErrorWithCause("go-git config", err)
	}

	if existing, ok := cfg.Remotes["origin"]; ok {
		existing.URLs = []string{remote}
	} else {
		cfg.Remotes["origin"] = &config.RemoteConfig{
			Name: "origin",
			URLs: []string{remote},
		}
	}

	if err := repo.SetConfig(cfg); err != nil {
		return output.NewSystemErrorWithCause("go-git set config", err)
	}
	return nil
}

func (gogitBackend) ResetToRemote(ws *workspace.Workspace, target string) error {
	repo, err := openRepo(ws)
	if err != nil {
		return err
	}

	err = repo.Fetch(&gogit.FetchOptions{
		RemoteURL: target,
		RefSpecs:  []config.RefSpec{config.RefSpec("+refs/heads/*:refs/remotes/" + incomingRemoteName + "/*")},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return output.NewSystemErrorWithCause("go-git fetch from "+target, err)
	}

	head, err := repo.Head()
	if err != nil {
		return output.NewSystemErrorWithCause("go-git resolve HEAD", err)
	}
	remoteRef, err := repo.Reference(
		plumbing.NewRemoteReferenceName(incomingRemoteName, head.Name().Short()), true)
	if err != nil {
		return output.NewSystemErrorWithCause("go-git resolve remote branch", err)
	}

	tree, err := openWorktree(ws)
	if err != nil {
		return err
	}
	err = tree.Reset(&gogit.ResetOptions{Commit: remoteRef.Hash(), Mode: gogit.HardReset})
	if err != nil {
		return output.NewSystemErrorWithCause("go-git reset", err)
	}
	return nil
}

// openRepo opens the repository at the workspace root.
func openRepo(ws *workspace.Workspace) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(ws.WorkingDir())
	if err != nil {
		return nil, output.NewSystemErrorWithCause("go-git open "+ws.WorkingDir(), err)
	}
	return repo, nil
}

// openWorktree opens the working tree of the repository at the workspace
// root.
func openWorktree(ws *workspace.Workspace) (*gogit.Worktree, error) {
	repo, err := openRepo(ws)
	if err != nil {
		return nil, err
	}
	tree, err := repo.Worktree()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("go-git worktree", err)
	}
	return tree, nil
}

// hasStagedChanges reports whether any file has staged modifications.
func hasStagedChanges(status gogit.Status) bool {
	for _, fileStatus := range status {
		if fileStatus.Staging != gogit.Unmodified && fileStatus.Staging != gogit.Untracked {
			return true
		}
	}
	return false
}
