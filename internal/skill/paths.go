package skill

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/agent-memory/internal/config"
)

// AssetsDir is the directory under the skill root that holds template assets.
const AssetsDir = "assets"

// executable is swapped out by tests.
var executable = os.Executable

// Dir returns the skill installation directory.
// It checks the skill_dir setting first (flag, AGENT_MEMORY_SKILL_DIR, or
// config file), then falls back to the parent of the directory containing
// the running binary, i.e. <skill>/bin/.. .
func Dir() (string, error) {
	if v := config.Get(config.KeySkillDir); v != "" {
		abs, err := filepath.Abs(v)
		if err != nil {
			return "", fmt.Errorf("resolving skill directory %s: %w", v, err)
		}
		return abs, nil
	}
	return dirFromExecutable()
}

func dirFromExecutable() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	// Follow symlinks so a binary linked into $PATH still finds its assets.
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// AssetPath returns the absolute path of a template asset given its path
// relative to the skill directory, e.g. "assets/deep-index-template.md".
func AssetPath(skillDir, rel string) string {
	return filepath.Join(skillDir, filepath.FromSlash(rel))
}
