package app

import (
	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/generator"
	"github.com/dockgen-io/dockgen/internal/logging"
	"github.com/dockgen-io/dockgen/internal/system"
)

// App holds the application dependencies
type App struct {
	// FS is the filesystem used for all reads and writes
	FS system.FileSystem

	// UserDefaults are the optional per-user defaults from config.toml
	UserDefaults *config.UserDefaults
}

// Option is a function that configures the App
type Option func(*App)

// WithFS sets a custom filesystem
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithUserDefaults sets custom user defaults
func WithUserDefaults(defaults *config.UserDefaults) Option {
	return func(a *App) {
		a.UserDefaults = defaults
	}
}

// New creates a new App with the given options.
// If user defaults are not provided, they are loaded from the default
// config path; a missing or unreadable file falls back to zero defaults.
func New(opts ...Option) *App {
	app := &App{
		FS: system.DefaultFS(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.UserDefaults == nil {
		path, err := config.DefaultConfigPath()
		if err == nil {
			defaults, err := config.LoadUserDefaults(path)
			if err != nil {
				logging.Debug("failed to load user defaults", "path", path, "error", err)
			} else {
				app.UserDefaults = defaults
			}
		}
		if app.UserDefaults == nil {
			app.UserDefaults = &config.UserDefaults{}
		}
	}

	return app
}

// Scaffold runs a generation for the given options using the app's filesystem.
func (a *App) Scaffold(opts *config.Options) (*generator.Result, error) {
	return generator.New(a.FS, opts).Run()
}

// Default is the default application instance
var Default = New()

// SetDefault replaces the default application instance (used by tests).
func SetDefault(a *App) {
	Default = a
}
