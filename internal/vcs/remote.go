package vcs

import (
	"errors"
	"net/url"

	"github.com/calumma/wfctl/internal/workspace"
)

// ErrNoRemote is returned by operations that require a remote when none
// is configured in memory or in the workspace's stored configuration.
var ErrNoRemote = errors.New("no remote configured for workspace")

// ResolveOptions controls remote target resolution.
type ResolveOptions struct {
	// TargetRemote overrides both the stored remote and the backend
	// default when set. Highest precedence.
	TargetRemote string

	// Username and Password are injected into the target's authority
	// component when both are present and the target is a URL with a
	// host. The stored remote is never mutated.
	Username string
	Password string
}

// GetRemote resolves the transfer target for the workspace. Precedence:
// an explicit TargetRemote, then the stored remote, then the backend's
// default token. Credentials are injected only into the returned
// short-lived string and never persisted.
func (c *Command) GetRemote(ws *workspace.Workspace, opts ResolveOptions) (string, error) {
	base := opts.TargetRemote
	if base == "" {
		stored, err := c.backend.ReadRemote(ws)
		if err != nil {
			return "", err
		}
		base = stored
	}
	if base == "" {
		base = c.backend.DefaultRemote()
	}

	if opts.Username == "" || opts.Password == "" {
		return base, nil
	}
	return injectCredentials(base, opts.Username, opts.Password), nil
}

// injectCredentials rewrites the authority of target to
// username:password@host. Targets that do not parse as a URL with an
// authority component (filesystem paths, bare tokens like "origin") are
// returned unchanged.
func injectCredentials(target, username, password string) string {
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		return target
	}
	parsed.User = url.UserPassword(username, password)
	return parsed.String()
}
