package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "agent-memory", CLIName())
	assert.Equal(t, "Agent Memory", DisplayName())
	assert.Equal(t, "AGENT_MEMORY", EnvPrefix())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "AGENT_MEMORY_SKILL_DIR", EnvVar("skill_dir"))
	assert.Equal(t, "AGENT_MEMORY_NO_COLOR", EnvVar("NO_COLOR"))
}
