package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/agent-memory/internal/skill"
)

// generatedFiles is the number of files written besides the templates
// (README.md and .gitignore).
const generatedFiles = 2

// Result holds the outcome of a scaffold run.
type Result struct {
	Target   string
	Files    []string // absolute paths written, in order
	Outcomes []Outcome
}

// Copied returns the number of templates copied successfully.
func (r *Result) Copied() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of templates that could not be copied.
func (r *Result) Failed() int { return len(r.Outcomes) - r.Copied() }

// Created returns the total number of files written, generated ones included.
func (r *Result) Created() int { return r.Copied() + generatedFiles }

// EntryPoint returns the absolute path of the first document to read.
func (r *Result) EntryPoint() string {
	return filepath.Join(r.Target, filepath.FromSlash(EntryPoint))
}

// Scaffolder creates the agent memory tree in a target directory.
type Scaffolder struct {
	// Out receives progress lines. Defaults to io.Discard.
	Out io.Writer
	// Color enables colored status tags.
	Color bool
	// TemplateBaseDir returns the skill directory holding assets/.
	TemplateBaseDir func() (string, error)
	// Templates is the mapping to copy, in order.
	Templates []Template
}

// New returns a Scaffolder that writes progress to out and locates
// templates relative to the installed binary.
func New(out io.Writer) *Scaffolder {
	return &Scaffolder{
		Out:             out,
		TemplateBaseDir: skill.Dir,
		Templates:       Templates(),
	}
}

// ResolveTarget returns the absolute target directory for arg, or the
// current working directory when arg is empty. The directory must already
// exist; it is never created.
func ResolveTarget(arg string) (string, error) {
	var target string
	if arg == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		target = cwd
	} else {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", arg, err)
		}
		target = abs
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &TargetNotFoundError{Path: target}
		}
		return "", fmt.Errorf("checking target %s: %w", target, err)
	}
	if !info.IsDir() {
		return "", &TargetNotFoundError{Path: target, NotDir: true}
	}
	return target, nil
}

// WriteReadme writes the generated README.md into the docs root of
// targetDir, overwriting any existing copy. It returns the path written.
func WriteReadme(targetDir string) (string, error) {
	return writeGenerated(targetDir, readmePath(), readmeContent)
}

// WriteGitignore writes the generated .gitignore into the docs root of
// targetDir, overwriting any existing copy. It returns the path written.
func WriteGitignore(targetDir string) (string, error) {
	return writeGenerated(targetDir, gitignorePath(), gitignoreContent)
}

func writeGenerated(targetDir, rel, content string) (string, error) {
	p := filepath.Join(targetDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", p, err)
	}
	return p, nil
}

// Init scaffolds the agent memory tree into the directory named by arg
// (the working directory when empty).
//
// A missing target, an unlocatable skill directory, or a failed README or
// .gitignore write aborts the run with an error. Template copy failures do
// not: they are reported, recorded in Result.Outcomes, and skipped.
func (s *Scaffolder) Init(arg string) (*Result, error) {
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	r := newReporter(out, s.Color)

	target, err := ResolveTarget(arg)
	if err != nil {
		return nil, err
	}

	r.banner(target)

	locate := s.TemplateBaseDir
	if locate == nil {
		locate = skill.Dir
	}
	base, err := locate()
	if err != nil {
		return nil, fmt.Errorf("locating templates: %w", err)
	}

	res := &Result{Target: target}

	readme, err := WriteReadme(target)
	if err != nil {
		return nil, err
	}
	r.created(readme)
	res.Files = append(res.Files, readme)

	for _, t := range s.Templates {
		o := CopyTemplate(base, target, t)
		res.Outcomes = append(res.Outcomes, o)
		if !o.OK() {
			r.failed(o.Err)
			continue
		}
		r.created(o.Path)
		res.Files = append(res.Files, o.Path)
	}

	gitignore, err := WriteGitignore(target)
	if err != nil {
		return nil, err
	}
	r.created(gitignore)
	res.Files = append(res.Files, gitignore)

	r.summary(res)
	return res, nil
}
