package registry

import (
	"context"
	"testing"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub tool" }
func (s *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (s *stubTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return "ok", nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewToolRegistry()
	tool := &stubTool{name: "get_current_weather"}

	reg.Register(tool)

	if got := reg.Get("get_current_weather"); got != tool {
		t.Errorf("Expected registered tool, got %v", got)
	}
	if got := reg.Get("unknown"); got != nil {
		t.Errorf("Expected nil for unknown tool, got %v", got)
	}
	if !reg.HasTool("get_current_weather") {
		t.Error("Expected HasTool to report registered tool")
	}
	if reg.Count() != 1 {
		t.Errorf("Expected count 1, got %d", reg.Count())
	}
}

func TestRegistry_OverwriteKeepsCount(t *testing.T) {
	reg := NewToolRegistry()
	reg.Register(&stubTool{name: "get_weather_alerts"})
	reg.Register(&stubTool{name: "get_weather_alerts"})

	if reg.Count() != 1 {
		t.Errorf("Expected count 1 after overwrite, got %d", reg.Count())
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewToolRegistry()
	reg.Register(&stubTool{name: "get_weather_forecast"})
	reg.Register(&stubTool{name: "get_current_weather"})
	reg.Register(&stubTool{name: "get_weather_alerts"})

	want := []string{"get_current_weather", "get_weather_alerts", "get_weather_forecast"}
	got := reg.GetToolNames()
	if len(got) != len(want) {
		t.Fatalf("Expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected names %v, got %v", want, got)
			break
		}
	}

	tools := reg.GetAll()
	for i, tool := range tools {
		if tool.Name() != want[i] {
			t.Errorf("GetAll order mismatch at %d: expected %s, got %s", i, want[i], tool.Name())
		}
	}
}
