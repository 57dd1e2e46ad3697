//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/agent-memory/internal/cli"
	"github.com/stretchr/testify/require"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, keeps ~/.agentmem/config.yaml out of the way
	SkillDir   string // AGENT_MEMORY_SKILL_DIR, the repository root with assets/
	ProjectDir string // an empty mock project
}

// result captures one CLI invocation.
type result struct {
	Code   int
	Stdout string
	Stderr string
}

// setupTestEnv creates isolated temp directories and points the CLI at the
// assets/ bundled in this repository. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	env := &testEnv{
		HomeDir:    t.TempDir(),
		SkillDir:   repoRoot,
		ProjectDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("AGENT_MEMORY_SKILL_DIR", env.SkillDir)
	t.Setenv("NO_COLOR", "1")

	return env
}

// copySkill duplicates the bundled assets into a scratch skill directory so a
// test can remove files without touching the repository.
func copySkill(t *testing.T, env *testEnv) string {
	t.Helper()

	dir := t.TempDir()
	src := filepath.Join(env.SkillDir, "assets")
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", e.Name()), data, 0644))
	}
	return dir
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(args, &stdout, &stderr)
	return result{Code: code, Stdout: stdout.String(), Stderr: stderr.String()}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}
