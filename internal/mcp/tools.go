package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/calumma/wfctl/internal/config"
	"github.com/calumma/wfctl/internal/envfile"
	"github.com/calumma/wfctl/internal/workspace"
)

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Dir          string `json:"dir"              jsonschema:"absolute working directory"`
	Backend      string `json:"backend"          jsonschema:"backend managing the workspace"`
	Remote       string `json:"remote,omitempty" jsonschema:"configured sync remote"`
	Initialized  bool   `json:"initialized"      jsonschema:"whether the backend marker directory exists"`
	TrackedCount int    `json:"tracked_count"    jsonschema:"number of tracked paths"`
}

func handleStatus(session *Session) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		state, cmd, ws, err := session.open()
		if err != nil {
			return nil, StatusOutput{}, err
		}

		info, statErr := os.Stat(filepath.Join(ws.WorkingDir(), cmd.Marker()))
		out := StatusOutput{
			Dir:          ws.WorkingDir(),
			Backend:      state.Backend,
			Remote:       state.Remote,
			Initialized:  statErr == nil && info.IsDir(),
			TrackedCount: len(state.Tracked),
		}
		return nil, out, nil
	}
}

// --- Tracked tool ---

// TrackedInput is the input for the tracked tool (no parameters needed).
type TrackedInput struct{}

// TrackedOutput is the output for the tracked tool.
type TrackedOutput struct {
	Paths []string `json:"paths" jsonschema:"tracked workspace-relative paths in lexicographic order"`
}

func handleTracked(session *Session) mcp.ToolHandlerFor[TrackedInput, TrackedOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TrackedInput) (*mcp.CallToolResult, TrackedOutput, error) {
		_, _, ws, err := session.open()
		if err != nil {
			return nil, TrackedOutput{}, err
		}
		return nil, TrackedOutput{Paths: ws.TrackedSubpaths()}, nil
	}
}

// --- Track tool ---

// TrackInput is the input for the track tool.
type TrackInput struct {
	Paths []string `json:"paths" jsonschema:"paths to register, relative to the working directory"`
}

// TrackOutput is the output for the track tool.
type TrackOutput struct {
	Paths []string `json:"paths" jsonschema:"all tracked paths after the update"`
}

func handleTrack(session *Session) mcp.ToolHandlerFor[TrackInput, TrackOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TrackInput) (*mcp.CallToolResult, TrackOutput, error) {
		if len(input.Paths) == 0 {
			return nil, TrackOutput{}, errors.New("paths must not be empty")
		}

		state, _, ws, err := session.open()
		if err != nil {
			return nil, TrackOutput{}, err
		}

		for _, path := range input.Paths {
			if err := ws.AddFile(path); err != nil {
				return nil, TrackOutput{}, fmt.Errorf("tracking %s: %w", path, err)
			}
		}

		state.Tracked = ws.TrackedSubpaths()
		if err := saveSessionState(session, state); err != nil {
			return nil, TrackOutput{}, err
		}
		return nil, TrackOutput{Paths: state.Tracked}, nil
	}
}

// --- Save tool ---

// SaveInput is the input for the save tool.
type SaveInput struct {
	Message string `json:"message"         jsonschema:"commit message"`
	Name    string `json:"name,omitempty"  jsonschema:"committer name override"`
	Email   string `json:"email,omitempty" jsonschema:"committer email override"`
}

// SaveOutput is the output for the save tool.
type SaveOutput struct {
	Saved   int    `json:"saved"            jsonschema:"number of paths included in the save"`
	Remote  string `json:"remote,omitempty" jsonschema:"remote the save was pushed to, empty for local-only"`
	Message string `json:"message"          jsonschema:"commit message used"`
}

func handleSave(session *Session) mcp.ToolHandlerFor[SaveInput, SaveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveOutput, error) {
		if input.Message == "" {
			return nil, SaveOutput{}, errors.New("message must not be empty")
		}

		state, cmd, ws, err := session.open()
		if err != nil {
			return nil, SaveOutput{}, err
		}

		username, password := envfile.Credentials()
		opts := workspace.SaveOptions{
			Message:   input.Message,
			Committer: workspace.Committer{Name: input.Name, Email: input.Email},
			Username:  username,
			Password:  password,
		}
		if err := ws.Save(opts); err != nil {
			return nil, SaveOutput{}, fmt.Errorf("saving workspace: %w", err)
		}

		// The save may have learned the remote from backend storage.
		if cmd.Remote() != state.Remote {
			state.Remote = cmd.Remote()
			if err := saveSessionState(session, state); err != nil {
				return nil, SaveOutput{}, err
			}
		}

		out := SaveOutput{
			Saved:   len(ws.TrackedSubpaths()),
			Remote:  cmd.Remote(),
			Message: input.Message,
		}
		return nil, out, nil
	}
}

// --- Remote tools ---

// RemoteGetInput is the input for the remote_get tool (no parameters needed).
type RemoteGetInput struct{}

// RemoteGetOutput is the output for the remote_get tool.
type RemoteGetOutput struct {
	Remote string `json:"remote" jsonschema:"stored sync remote, empty when local-only"`
}

func handleRemoteGet(session *Session) mcp.ToolHandlerFor[RemoteGetInput, RemoteGetOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ RemoteGetInput) (*mcp.CallToolResult, RemoteGetOutput, error) {
		_, cmd, ws, err := session.open()
		if err != nil {
			return nil, RemoteGetOutput{}, err
		}
		if err := cmd.UpdateRemote(ws); err != nil {
			return nil, RemoteGetOutput{}, fmt.Errorf("reading remote: %w", err)
		}
		return nil, RemoteGetOutput{Remote: cmd.Remote()}, nil
	}
}

// RemoteSetInput is the input for the remote_set tool.
type RemoteSetInput struct {
	Remote string `json:"remote" jsonschema:"remote URL to persist"`
}

// RemoteSetOutput is the output for the remote_set tool.
type RemoteSetOutput struct {
	Remote string `json:"remote" jsonschema:"the remote now stored in the workspace"`
}

func handleRemoteSet(session *Session) mcp.ToolHandlerFor[RemoteSetInput, RemoteSetOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RemoteSetInput) (*mcp.CallToolResult, RemoteSetOutput, error) {
		if input.Remote == "" {
			return nil, RemoteSetOutput{}, errors.New("remote must not be empty")
		}

		state, cmd, ws, err := session.open()
		if err != nil {
			return nil, RemoteSetOutput{}, err
		}

		cmd.SetRemote(input.Remote)
		if err := cmd.WriteRemote(ws); err != nil {
			return nil, RemoteSetOutput{}, fmt.Errorf("writing remote: %w", err)
		}

		state.Remote = input.Remote
		if err := saveSessionState(session, state); err != nil {
			return nil, RemoteSetOutput{}, err
		}
		return nil, RemoteSetOutput{Remote: input.Remote}, nil
	}
}

func saveSessionState(session *Session, state *config.WorkspaceState) error {
	return config.SaveState(session.dir, state)
}
