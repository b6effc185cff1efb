package vcs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calumma/wfctl/internal/workspace"
)

// skipWithoutGit skips tests that shell out to the git binary.
func skipWithoutGit(t *testing.T) {
	t.Helper()
	if !toolAvailable("git") {
		t.Skip("git is not available")
	}
}

func TestGitInitNewCreatesMarker(t *testing.T) {
	skipWithoutGit(t)
	ws := newTestWorkspace(t)

	if err := (gitBackend{}).InitNew(ws); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}

	info, err := os.Stat(filepath.Join(ws.WorkingDir(), ".git"))
	if err != nil || !info.IsDir() {
		t.Errorf("marker directory missing after InitNew: %v", err)
	}
}

func TestGitSaveCycle(t *testing.T) {
	skipWithoutGit(t)
	backend := gitBackend{}
	cmd := NewCommand(backend, "")
	ws := newTestWorkspace(t)
	if err := backend.InitNew(ws); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}

	writeWorkspaceFile(t, ws, "model.xml", "<model/>")
	writeWorkspaceFile(t, ws, filepath.Join("data", "params.txt"), "alpha=1")
	for _, name := range []string{"model.xml", filepath.Join("data", "params.txt")} {
		if err := ws.AddFile(name); err != nil {
			t.Fatalf("AddFile(%q) unexpected error: %v", name, err)
		}
	}

	opts := workspace.SaveOptions{
		Message:   "initial commit",
		Committer: workspace.Committer{Name: "Tester", Email: "test@example.com"},
	}
	if err := cmd.Save(ws, opts); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	log, err := run(context.Background(), ws.WorkingDir(), "git", "log", "--format=%s %an <%ae>")
	if err != nil {
		t.Fatalf("git log: %v", err)
	}
	if !strings.Contains(log, "initial commit Tester <test@example.com>") {
		t.Errorf("git log = %q, want the committed message and identity", log)
	}

	files, err := run(context.Background(), ws.WorkingDir(), "git", "ls-files")
	if err != nil {
		t.Fatalf("git ls-files: %v", err)
	}
	for _, want := range []string{"model.xml", "data/params.txt"} {
		if !strings.Contains(files, want) {
			t.Errorf("ls-files = %q, want %q included", files, want)
		}
	}
}

func TestGitCommitSkipsWhenNothingStaged(t *testing.T) {
	skipWithoutGit(t)
	backend := gitBackend{}
	ws := newTestWorkspace(t)
	if err := backend.InitNew(ws); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}

	err := backend.Commit(ws, "empty", workspace.Committer{Name: "T", Email: "t@example.com"})
	if err != nil {
		t.Fatalf("Commit() with nothing staged = %v, want nil", err)
	}
}

func TestGitCloneViaWorkspaceConstruction(t *testing.T) {
	skipWithoutGit(t)
	backend := gitBackend{}

	// Source repository with one commit.
	source := NewCommand(backend, "")
	sourceWs := newTestWorkspace(t)
	if err := backend.InitNew(sourceWs); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}
	writeWorkspaceFile(t, sourceWs, "file.txt", "content")
	if err := sourceWs.AddFile("file.txt"); err != nil {
		t.Fatalf("AddFile() unexpected error: %v", err)
	}
	opts := workspace.SaveOptions{
		Message:   "seed",
		Committer: workspace.Committer{Name: "Tester", Email: "test@example.com"},
	}
	if err := source.Save(sourceWs, opts); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	// Command-driven construction against an empty target clones.
	target := filepath.Join(t.TempDir(), "clone")
	cmd := NewCommand(backend, sourceWs.WorkingDir())
	cloned, err := NewCmdWorkspace(target, cmd, nil)
	if err != nil {
		t.Fatalf("NewCmdWorkspace() unexpected error: %v", err)
	}

	info, statErr := os.Stat(filepath.Join(cloned.WorkingDir(), ".git"))
	if statErr != nil || !info.IsDir() {
		t.Errorf("marker missing in clone: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(cloned.WorkingDir(), "file.txt")); statErr != nil {
		t.Errorf("cloned content missing: %v", statErr)
	}
}

func TestGitPushToBareRemote(t *testing.T) {
	skipWithoutGit(t)
	backend := gitBackend{}
	ws := newTestWorkspace(t)
	if err := backend.InitNew(ws); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}

	remote := filepath.Join(t.TempDir(), "remote.git")
	if _, err := run(context.Background(), "", "git", "init", "--bare", remote); err != nil {
		t.Fatalf("creating bare remote: %v", err)
	}

	cmd := NewCommand(backend, remote)
	writeWorkspaceFile(t, ws, "file.txt", "content")
	if err := ws.AddFile("file.txt"); err != nil {
		t.Fatalf("AddFile() unexpected error: %v", err)
	}
	opts := workspace.SaveOptions{
		Message:   "pushed work",
		Committer: workspace.Committer{Name: "Tester", Email: "test@example.com"},
	}
	if err := cmd.Save(ws, opts); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	log, err := run(context.Background(), remote, "git", "log", "--all", "--format=%s")
	if err != nil {
		t.Fatalf("git log on remote: %v", err)
	}
	if !strings.Contains(log, "pushed work") {
		t.Errorf("remote log = %q, want the pushed commit", log)
	}
}

func TestGitRemoteRoundTrip(t *testing.T) {
	skipWithoutGit(t)
	backend := gitBackend{}
	ws := newTestWorkspace(t)
	if err := backend.InitNew(ws); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}

	stored, err := backend.ReadRemote(ws)
	if err != nil {
		t.Fatalf("ReadRemote() unexpected error: %v", err)
	}
	if stored != "" {
		t.Errorf("ReadRemote() on fresh repo = %q, want empty", stored)
	}

	if err := backend.WriteRemote(ws, "http://example.com/repo"); err != nil {
		t.Fatalf("WriteRemote() unexpected error: %v", err)
	}
	stored, err = backend.ReadRemote(ws)
	if err != nil {
		t.Fatalf("ReadRemote() unexpected error: %v", err)
	}
	if stored != "http://example.com/repo" {
		t.Errorf("ReadRemote() = %q, want the written URL", stored)
	}
}

func TestGitResetToRemote(t *testing.T) {
	skipWithoutGit(t)
	backend := gitBackend{}

	// Seed a source repository.
	source := NewCommand(backend, "")
	sourceWs := newTestWorkspace(t)
	if err := backend.InitNew(sourceWs); err != nil {
		t.Fatalf("InitNew() unexpected error: %v", err)
	}
	writeWorkspaceFile(t, sourceWs, "file.txt", "original")
	if err := sourceWs.AddFile("file.txt"); err != nil {
		t.Fatalf("AddFile() unexpected error: %v", err)
	}
	opts := workspace.SaveOptions{
		Message:   "seed",
		Committer: workspace.Committer{Name: "Tester", Email: "test@example.com"},
	}
	if err := source.Save(sourceWs, opts); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	// Clone it, then diverge the local file.
	target := filepath.Join(t.TempDir(), "clone")
	cmd := NewCommand(backend, sourceWs.WorkingDir())
	cloned, err := NewCmdWorkspace(target, cmd, nil)
	if err != nil {
		t.Fatalf("NewCmdWorkspace() unexpected error: %v", err)
	}
	writeWorkspaceFile(t, cloned, "file.txt", "diverged")

	if err := cmd.ResetToRemote(cloned); err != nil {
		t.Fatalf("ResetToRemote() unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cloned.WorkingDir(), "file.txt"))
	if err != nil {
		t.Fatalf("reading file after reset: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("file content = %q, want %q", string(data), "original")
	}
}
