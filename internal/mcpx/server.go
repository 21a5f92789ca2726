package mcpx

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/8adimka/Go_Weather_MCP/internal/errorsx"
	"github.com/8adimka/Go_Weather_MCP/internal/tools/registry"
)

// NewServer builds an MCP server exposing every registered tool.
func NewServer(name, version string, reg *registry.ToolRegistry) (*server.MCPServer, error) {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, tool := range reg.GetAll() {
		schema, err := json.Marshal(tool.Parameters())
		if err != nil {
			return nil, errorsx.Wrapf(err, "marshal schema for tool %s", tool.Name())
		}

		s.AddTool(mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), schema), handler(tool))
		slog.Info("Tool exposed over MCP", "name", tool.Name())
	}

	return s, nil
}

// handler adapts a registry tool to the MCP tool call contract. Execute
// errors become protocol-level tool errors; rendered result strings
// (including the fixed failure strings) are returned as text content.
func handler(tool registry.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tool.Execute(ctx, req.GetArguments())
		if err != nil {
			slog.ErrorContext(ctx, "Tool execution failed", "tool", tool.Name(), "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

// ServeStdio serves the MCP protocol on stdin/stdout until the stream
// closes. Logs must already be routed to stderr by this point.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
