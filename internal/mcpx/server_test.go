package mcpx

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/8adimka/Go_Weather_MCP/internal/tools/registry"
)

type stubTool struct {
	result string
	err    error
}

func (s *stubTool) Name() string        { return "stub_tool" }
func (s *stubTool) Description() string { return "stub tool" }
func (s *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}
func (s *stubTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return s.result, s.err
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "stub_tool"
	req.Params.Arguments = args
	return req
}

func TestNewServer(t *testing.T) {
	reg := registry.NewToolRegistry()
	reg.Register(&stubTool{result: "ok"})

	s, err := NewServer("weather-mcp", "1.0.0", reg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s == nil {
		t.Fatal("Expected non-nil server")
	}
}

func TestHandler_TextResult(t *testing.T) {
	h := handler(&stubTool{result: "Current weather in Astana: clear sky, 21.5°C"})

	result, err := h(context.Background(), callRequest(map[string]any{"city": "Astana"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("Expected non-error result")
	}

	if len(result.Content) != 1 {
		t.Fatalf("Expected one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	if text.Text != "Current weather in Astana: clear sky, 21.5°C" {
		t.Errorf("Unexpected text %q", text.Text)
	}
}

func TestHandler_ExecuteError(t *testing.T) {
	h := handler(&stubTool{err: errors.New("city is required")})

	result, err := h(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Execute errors must map to tool errors, not protocol errors: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result")
	}
}
