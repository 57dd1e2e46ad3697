package scaffold

import (
	_ "embed"
	"path"
)

// DocsDir is the documentation root created under the target directory.
const DocsDir = ".agent-memory"

// Generated file names, relative to DocsDir.
const (
	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
)

// EntryPoint is the first document a reader should open, relative to the
// target directory.
const EntryPoint = DocsDir + "/01-system/00-index.md"

//go:embed generated/README.md
var readmeContent string

//go:embed generated/gitignore
var gitignoreContent string

// Template maps one bundled asset to its place in the documentation tree.
// Both paths use forward slashes.
type Template struct {
	Dest   string // relative to the target directory
	Source string // relative to the skill directory
}

// templates is the fixed layout, in copy and report order.
var templates = []Template{
	// System layer.
	{Dest: DocsDir + "/01-system/00-index.md", Source: "assets/system-index-template.md"},
	{Dest: DocsDir + "/01-system/01-context.md", Source: "assets/system-context-template.md"},
	{Dest: DocsDir + "/01-system/02-architecture.md", Source: "assets/system-architecture-template.md"},
	{Dest: DocsDir + "/01-system/03-tech-stack.md", Source: "assets/system-tech-stack-template.md"},
	{Dest: DocsDir + "/01-system/04-data-model.md", Source: "assets/system-data-model-template.md"},
	{Dest: DocsDir + "/01-system/05-conventions.md", Source: "assets/system-conventions-template.md"},

	// Module layer.
	{Dest: DocsDir + "/02-modules/00-index.md", Source: "assets/modules-index-template.md"},

	// Deep layer.
	{Dest: DocsDir + "/03-deep/00-index.md", Source: "assets/deep-index-template.md"},
}

// Templates returns a copy of the template mapping table.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// ReadmeContent returns the generated README.md body.
func ReadmeContent() string { return readmeContent }

// GitignoreContent returns the generated .gitignore body.
func GitignoreContent() string { return gitignoreContent }

func readmePath() string    { return path.Join(DocsDir, ReadmeFile) }
func gitignorePath() string { return path.Join(DocsDir, GitignoreFile) }
