package agent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petasbytes/library-agent/internal/agent"
)

func TestInstructions_ContainsFirmwareAndFormattingBlocks(t *testing.T) {
	got := agent.Instructions()

	assert.Contains(t, got, "# FIRMWARE")
	assert.Contains(t, got, "doc comment")
	assert.Contains(t, got, "'os'")
	assert.Contains(t, got, "'subprocess'")
	assert.Contains(t, got, "save_tool")
	assert.Contains(t, got, "developer mode")
	assert.Contains(t, got, "# FORMATTING")

	// Firmware precedes formatting.
	assert.Less(t, strings.Index(got, "# FIRMWARE"), strings.Index(got, "# FORMATTING"))
}

func TestInstructions_IsStable(t *testing.T) {
	assert.Equal(t, agent.Instructions(), agent.Instructions())
}
