package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dockgen-io/dockgen/internal/errors"
)

// serviceNameRegex validates compose service names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
// Maximum length is 63 characters (common container name limit).
var serviceNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateServiceName checks if a service name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("service name cannot be empty")
	}

	if !serviceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid service name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// sanitizeNameRegex matches characters not valid in service names.
var sanitizeNameRegex = regexp.MustCompile(`[^a-z0-9_-]`)

// SuggestServiceName derives a valid service name from a project path.
func SuggestServiceName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	base = sanitizeNameRegex.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-")

	if base == "" {
		return "app"
	}
	if len(base) > 63 {
		base = strings.TrimRight(base[:63], "-")
	}
	return base
}

// Options is the one-shot configuration for a scaffolding run.
// It is collected either from command-line flags or from the wizard.
type Options struct {
	ProjectType  string // "dotnet", "nodejs", or "golang"
	ImageName    string // Base image, e.g. "microsoft/aspnet:1.0.0-rc1-update1"
	ServiceName  string // Compose service / image name for the project
	Port         int    // Port exposed by the container
	ProjectDir   string // Directory being scaffolded
	IsWebProject bool   // Web projects get port mappings and server directives
	Force        bool   // Overwrite existing artifacts
}

// Validate checks that the Options are complete and consistent.
func (o *Options) Validate() error {
	if o.ProjectDir == "" {
		return fmt.Errorf("project directory is required")
	}
	if _, ok := TypeByName(o.ProjectType); !ok {
		return fmt.Errorf("unknown project type: %s", o.ProjectType)
	}
	if _, ok := ImageByName(o.ImageName); !ok {
		return fmt.Errorf("unknown base image: %s", o.ImageName)
	}
	if err := ValidateServiceName(o.ServiceName); err != nil {
		return err
	}
	if o.Port < 1 || o.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", o.Port)
	}
	return nil
}

// UserDefaults are optional per-user defaults loaded from config.toml.
type UserDefaults struct {
	Port   int               `toml:"port"`   // Default exposed port (0 = per-type default)
	Images map[string]string `toml:"images"` // Default image per project type
}

// DefaultConfigPath returns the path of the user defaults file,
// typically ~/.config/dockgen/config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dockgen", "config.toml"), nil
}

// LoadUserDefaults reads user defaults from the given TOML file.
// A missing file is not an error; zero-value defaults are returned.
func LoadUserDefaults(path string) (*UserDefaults, error) {
	var defaults UserDefaults

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &defaults, nil
	}

	if _, err := toml.DecodeFile(path, &defaults); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse %s", path), err)
	}

	return &defaults, nil
}
