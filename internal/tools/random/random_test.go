package random_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/8adimka/Go_Weather_MCP/internal/tools/random"
)

func TestRandomNumberTool_Name(t *testing.T) {
	tool := random.New()
	expected := "get_random_number"

	if name := tool.Name(); name != expected {
		t.Errorf("Expected name %q, got %q", expected, name)
	}
}

func TestRandomNumberTool_Execute(t *testing.T) {
	tool := random.New()
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"min": float64(1), // JSON numbers arrive as float64
			"max": float64(10),
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		n, err := strconv.Atoi(result)
		if err != nil {
			t.Fatalf("Result is not an integer: %q", result)
		}
		if n < 1 || n > 10 {
			t.Errorf("Result %d out of range [1, 10]", n)
		}
	}
}

func TestRandomNumberTool_SingleValueRange(t *testing.T) {
	tool := random.New()

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"min": 7,
		"max": 7,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "7" {
		t.Errorf("Expected \"7\", got %q", result)
	}
}

func TestRandomNumberTool_InvalidArgs(t *testing.T) {
	tool := random.New()
	ctx := context.Background()

	cases := []map[string]interface{}{
		{},
		{"min": 1},
		{"max": 10},
		{"min": "one", "max": 10},
		{"min": 10, "max": 1},
	}

	for _, args := range cases {
		if _, err := tool.Execute(ctx, args); err == nil {
			t.Errorf("Expected error for args %v", args)
		}
	}
}
