package cli

import (
	"io"

	"github.com/agentx-labs/agent-memory/internal/config"
	"github.com/agentx-labs/agent-memory/internal/scaffold"
)

// runInit scaffolds the agent memory tree into target.
func runInit(out io.Writer, target string) error {
	s := scaffold.New(out)
	s.Color = !config.GetBool(config.KeyNoColor) && useColor(out)

	_, err := s.Init(target)
	return err
}
