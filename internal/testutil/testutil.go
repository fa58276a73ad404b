package testutil

import (
	"testing"

	"github.com/dockgen-io/dockgen/internal/app"
	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	FS       *system.MockFS
	Defaults *config.UserDefaults
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a new test environment with a mock filesystem
// installed as the default app instance.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	fs := system.NewMockFS()
	defaults := &config.UserDefaults{}

	testApp := app.New(
		app.WithFS(fs),
		app.WithUserDefaults(defaults),
	)

	originalDefault := app.Default
	app.SetDefault(testApp)

	return &TestEnv{
		T:        t,
		FS:       fs,
		Defaults: defaults,
		App:      testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// AddProject creates a project directory with the markers of the given type.
func (e *TestEnv) AddProject(dir, projectType string) {
	e.T.Helper()

	e.FS.AddDir(dir)
	switch projectType {
	case "dotnet":
		e.AddManifest(dir, "project_basic.json")
	case "nodejs":
		e.FS.AddFile(dir+"/package.json", []byte(`{"name":"app","main":"server.js"}`), 0644)
	case "golang":
		e.FS.AddFile(dir+"/go.mod", []byte("module example.com/app\n"), 0644)
	default:
		e.T.Fatalf("unknown project type %q", projectType)
	}
}

// AddManifest writes a project.json fixture into the project directory.
func (e *TestEnv) AddManifest(dir, fixture string) {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("failed to load fixture %s: %v", fixture, err)
	}
	e.FS.AddFile(dir+"/project.json", data, 0644)
}

// AddEntryPoint writes a Program.cs fixture into the project directory.
func (e *TestEnv) AddEntryPoint(dir, fixture string) {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("failed to load fixture %s: %v", fixture, err)
	}
	e.FS.AddFile(dir+"/Program.cs", data, 0644)
}

// FileContents returns the contents of a file in the mock filesystem.
func (e *TestEnv) FileContents(path string) string {
	e.T.Helper()

	data, ok := e.FS.GetFile(path)
	if !ok {
		e.T.Fatalf("file %s not found", path)
	}
	return string(data)
}

// DefaultOptions returns valid scaffold options for an RC1 .NET web project.
func DefaultOptions(dir string) *config.Options {
	return &config.Options{
		ProjectType:  "dotnet",
		ImageName:    "microsoft/aspnet:1.0.0-rc1-update1",
		ServiceName:  "webapp",
		Port:         80,
		ProjectDir:   dir,
		IsWebProject: true,
	}
}
