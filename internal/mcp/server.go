// Package mcp provides a Model Context Protocol server for wfctl.
// It exposes workspace operations as MCP tools that any MCP-capable
// agent can use against a fixed working directory.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all wfctl tools registered.
// The session's working directory is fixed for the server's lifetime.
func NewServer(version string, session *Session) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "wfctl",
		Version: version,
	}, nil)
	registerTools(server, session)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all wfctl tools to the server.
func registerTools(server *mcp.Server, session *Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show workspace state: working directory, backend, remote, and tracked path count.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(session))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tracked",
		Description: "List the workspace-relative paths registered for the next save.",
		Annotations: readOnlyAnnotations(),
	}, handleTracked(session))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "track",
		Description: "Register paths for the next save. Paths must stay inside the working directory.",
		Annotations: writeAnnotations(),
	}, handleTrack(session))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save",
		Description: "Commit every tracked path with the given message and push when a remote is configured.",
		Annotations: writeAnnotations(),
	}, handleSave(session))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remote_get",
		Description: "Return the sync remote stored in the workspace, empty when the workspace is local-only.",
		Annotations: readOnlyAnnotations(),
	}, handleRemoteGet(session))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remote_set",
		Description: "Persist a new sync remote in the workspace configuration.",
		Annotations: writeAnnotations(),
	}, handleRemoteSet(session))
}
