package random

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/8adimka/Go_Weather_MCP/internal/tools/registry"
)

// RandomNumberTool generates a random integer within a range
type RandomNumberTool struct{}

// New creates a new RandomNumberTool instance
func New() *RandomNumberTool {
	return &RandomNumberTool{}
}

// Name returns the tool name
func (t *RandomNumberTool) Name() string {
	return "get_random_number"
}

// Description returns the tool description
func (t *RandomNumberTool) Description() string {
	return "Generates a random number between the given minimum and maximum (inclusive)."
}

// Parameters returns the JSON schema for parameters
func (t *RandomNumberTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"min": map[string]interface{}{
				"type":        "integer",
				"description": "Minimum value (inclusive)",
			},
			"max": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum value (inclusive)",
			},
		},
		"required": []string{"min", "max"},
	}
}

// Execute returns a random integer in [min, max]
func (t *RandomNumberTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	min, ok := toInt(args["min"])
	if !ok {
		return "", errors.New("min is required")
	}
	max, ok := toInt(args["max"])
	if !ok {
		return "", errors.New("max is required")
	}
	if min > max {
		return "", fmt.Errorf("min %d is greater than max %d", min, max)
	}

	return fmt.Sprintf("%d", min+rand.IntN(max-min+1)), nil
}

// toInt accepts the numeric encodings JSON arguments arrive in.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Ensure RandomNumberTool implements registry.Tool interface
var _ registry.Tool = (*RandomNumberTool)(nil)
