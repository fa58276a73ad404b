package port

import (
	"fmt"

	"github.com/dockgen-io/dockgen/internal/config"
)

// Well-known defaults per project type.
const (
	DotnetDefaultPort = 80
	NodeDefaultPort   = 3000
	GoDefaultPort     = 8080
)

// Default returns the default exposed port for a project type.
// User defaults (config.toml) take precedence over catalog defaults.
func Default(projectType string, userDefaults *config.UserDefaults) int {
	if userDefaults != nil && userDefaults.Port != 0 {
		return userDefaults.Port
	}

	if t, ok := config.TypeByName(projectType); ok {
		return t.DefaultPort
	}

	return NodeDefaultPort
}

// Validate checks that a port is usable for a container port mapping.
func Validate(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", port)
	}
	return nil
}

// DebugPort returns the host-side port used for the debug compose file.
// The debug flavor maps the same container port; publishing on a distinct
// host port keeps a running release container from colliding with debug runs.
func DebugPort(port int) int {
	if port < 65535-10000 {
		return port + 10000
	}
	return port
}
