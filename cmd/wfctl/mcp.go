// Package main provides the entry point for the wfctl CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	wfctlmcp "github.com/calumma/wfctl/internal/mcp"
)

// newMCPCmd creates the mcp command for running as an MCP server.
func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run wfctl as a Model Context Protocol (MCP) server over stdio.

This exposes workspace operations as MCP tools that any MCP-capable
agent environment can use. The working directory is fixed for the
server's lifetime; pass -C to serve a different workspace.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "wfctl": {
        "command": "wfctl",
        "args": ["mcp", "-C", "/path/to/workspace"]
      }
    }
  }

Available tools: status, tracked, track, save, remote_get, remote_set`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := wfctlmcp.NewSession(workingDir(cmd), diagnostics(cmd))
			server := wfctlmcp.NewServer(buildVersion(), session)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
