// Package skill locates the agent-memory installation directory, the folder
// that ships the bundled assets/ templates next to bin/agent-memory. Lookup
// is independent of the caller's working directory.
package skill
