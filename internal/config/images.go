package config

// PatchStyle selects how an existing project file is made container-ready.
type PatchStyle string

const (
	// StyleNone means no project file patching is performed.
	StyleNone PatchStyle = "none"

	// StyleManifest patches the project.json command mapping (RC1-era ASP.NET).
	StyleManifest PatchStyle = "manifest"

	// StyleEntryPoint patches the Program.cs host builder chain (RC2-era ASP.NET).
	StyleEntryPoint PatchStyle = "entrypoint"
)

// ProjectType describes one supported project flavor.
type ProjectType struct {
	Name        string // Identifier used in flags ("dotnet", "nodejs", "golang")
	Display     string // Human-readable name for the wizard
	DefaultPort int    // Default exposed port for web projects
	WorkDir     string // Working directory inside the container; debug mounts target it
	Images      []Image
}

// Image describes a supported base image for a project type.
type Image struct {
	Name        string     // Full image reference
	Description string
	Style       PatchStyle // Project-file patch style this image requires
	DebugPort   int        // Remote debugger port (0 = none)
}

// projectTypes is the catalog of supported project types and base images.
var projectTypes = []ProjectType{
	{
		Name:        "dotnet",
		Display:     ".NET Core",
		DefaultPort: 80,
		WorkDir:     "/app",
		Images: []Image{
			{
				Name:        "microsoft/aspnet:1.0.0-rc1-update1",
				Description: "ASP.NET 5 RC1 (project.json command model)",
				Style:       StyleManifest,
			},
			{
				Name:        "microsoft/dotnet:1.0.0-preview1",
				Description: ".NET Core RC2 (Program.cs host builder)",
				Style:       StyleEntryPoint,
			},
		},
	},
	{
		Name:        "nodejs",
		Display:     "Node.js",
		DefaultPort: 3000,
		WorkDir:     "/src",
		Images: []Image{
			{Name: "node:argon", Description: "Node.js 4 LTS", Style: StyleNone},
			{Name: "node:latest", Description: "Node.js current", Style: StyleNone},
		},
	},
	{
		Name:        "golang",
		Display:     "Go",
		DefaultPort: 8080,
		WorkDir:     "/go/src/app",
		Images: []Image{
			{Name: "golang:1.6", Description: "Go 1.6", Style: StyleNone},
			{Name: "golang:latest", Description: "Go current", Style: StyleNone},
		},
	},
}

// Types returns the catalog of supported project types.
func Types() []ProjectType {
	return projectTypes
}

// TypeByName looks up a project type by its identifier.
func TypeByName(name string) (ProjectType, bool) {
	for _, t := range projectTypes {
		if t.Name == name {
			return t, true
		}
	}
	return ProjectType{}, false
}

// ImageByName looks up an image across all project types.
func ImageByName(name string) (Image, bool) {
	for _, t := range projectTypes {
		for _, img := range t.Images {
			if img.Name == name {
				return img, true
			}
		}
	}
	return Image{}, false
}

// DefaultImage returns the first catalog image for a project type.
func DefaultImage(projectType string) (Image, bool) {
	t, ok := TypeByName(projectType)
	if !ok || len(t.Images) == 0 {
		return Image{}, false
	}
	return t.Images[0], true
}
