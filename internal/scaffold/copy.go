package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/agent-memory/internal/platform"
	"github.com/agentx-labs/agent-memory/internal/skill"
)

// Outcome is the result of copying one template.
type Outcome struct {
	Template Template
	Path     string // absolute destination path
	Err      error
}

// OK reports whether the template was copied.
func (o Outcome) OK() bool { return o.Err == nil }

// CopyTemplate copies a template asset from skillDir into targetDir,
// creating intermediate directories and overwriting any existing file.
// Permission bits and timestamps follow the source. Failures are returned in
// the Outcome rather than aborting, so the caller can carry on with the rest.
func CopyTemplate(skillDir, targetDir string, t Template) Outcome {
	src := skill.AssetPath(skillDir, t.Source)
	dst := filepath.Join(targetDir, filepath.FromSlash(t.Dest))
	out := Outcome{Template: t, Path: dst}

	info, err := os.Stat(src)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out.Err = &TemplateMissingError{Path: src}
		return out
	case err != nil:
		out.Err = fmt.Errorf("reading template %s: %w", src, err)
		return out
	case !info.Mode().IsRegular():
		out.Err = &TemplateMissingError{Path: src}
		return out
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		out.Err = fmt.Errorf("creating directory %s: %w", filepath.Dir(dst), err)
		return out
	}

	if err := copyFile(src, dst, info); err != nil {
		out.Err = fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return out
}

// copyFile copies a single file from src to dst, preserving permissions and
// modification time.
func copyFile(src, dst string, srcInfo os.FileInfo) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	// WriteFile leaves the mode of an existing file untouched.
	return platform.CopyMetadata(dst, srcInfo)
}
