// Package vcs drives external version-control backends through a small,
// backend-agnostic contract.
//
// A Backend implements the five primitive operations (clone, init-new,
// add, commit, push) plus remote-URL persistence for one concrete tool or
// library. Command wraps a Backend with the generic protocol every
// backend shares: init clones when a remote is configured and fresh-inits
// otherwise; save adds the tracked paths in lexicographic order, commits
// once, and pushes at most once.
//
//	backend, err := vcs.Get("git")
//	cmd := vcs.NewCommand(backend, "https://example.com/repo")
//	ws, err := workspace.NewCmd(dir, workspace.CmdOptions{
//	    Marker: cmd.Marker(),
//	    Table:  cmd.Table(),
//	})
//	err = ws.Save(workspace.SaveOptions{Message: "update model"})
//
// Three backends are registered: "git" and "mercurial" shell out to their
// respective tools, "gogit" uses the go-git library and needs no external
// binary. Get looks a backend up by name; Detect picks one from the
// marker directory already present in a working directory.
//
// Backend failures propagate unmodified. The package never retries or
// rolls back: a save whose commit succeeded but whose push failed leaves
// the working directory in that exact state for inspection.
package vcs
