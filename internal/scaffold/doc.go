// Package scaffold lays out the agent memory documentation tree in a target
// project. It copies the bundled template assets into .agent-memory/ following
// a fixed mapping table, writes a generated README.md and .gitignore, and
// reports one status line per file on an io.Writer.
//
// A missing template is not fatal: the copy loop records a per-template
// Outcome and keeps going, and the final Result counts what was created.
package scaffold
