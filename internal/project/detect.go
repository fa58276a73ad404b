// Package project detects the type of an existing project directory.
package project

import (
	"path/filepath"
	"strings"

	"github.com/dockgen-io/dockgen/internal/system"
)

// Well-known project files checked during detection.
const (
	ManifestFile   = "project.json"
	EntryPointFile = "Program.cs"
	StartupFile    = "Startup.cs"
	PackageFile    = "package.json"
	GoModFile      = "go.mod"
)

// Detect infers the project type from directory contents.
// Returns the project type identifier ("dotnet", "nodejs", "golang")
// and true on a confident match, or ("", false) when nothing matched.
// .NET markers are checked first since RC-era web projects often carry
// a package.json for client-side tooling as well.
func Detect(fs system.FileSystem, dir string) (string, bool) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var hasManifest, hasEntryPoint, hasMSBuild, hasPackage, hasGoMod, hasGoSource bool
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case name == ManifestFile:
			hasManifest = true
		case name == EntryPointFile || name == StartupFile:
			hasEntryPoint = true
		case strings.HasSuffix(name, ".csproj") || strings.HasSuffix(name, ".xproj"):
			hasMSBuild = true
		case name == PackageFile:
			hasPackage = true
		case name == GoModFile:
			hasGoMod = true
		case strings.HasSuffix(name, ".go"):
			hasGoSource = true
		}
	}

	switch {
	case hasManifest || hasMSBuild || hasEntryPoint:
		return "dotnet", true
	case hasPackage:
		return "nodejs", true
	case hasGoMod || hasGoSource:
		return "golang", true
	}

	return "", false
}

// IsWeb reports whether the project looks like a web project.
// For .NET this means an ASP.NET entry point or a project.json with a
// Kestrel dependency; other project types default to web.
func IsWeb(fs system.FileSystem, dir, projectType string) bool {
	if projectType != "dotnet" {
		return true
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Name() == StartupFile {
			return true
		}
	}

	data, err := fs.ReadFile(filepath.Join(dir, ManifestFile))
	if err == nil && strings.Contains(string(data), "Kestrel") {
		return true
	}

	data, err = fs.ReadFile(filepath.Join(dir, EntryPointFile))
	if err == nil && strings.Contains(string(data), "WebHostBuilder") {
		return true
	}

	return false
}
