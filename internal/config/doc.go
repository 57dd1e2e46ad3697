// Package config manages user-level settings stored at ~/.agentmem/config.yaml.
// Values may also come from AGENT_MEMORY_* environment variables or from
// command-line flags bound to the same keys, flags taking precedence.
package config
