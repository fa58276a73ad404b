// Package config holds the scaffolding options and the catalog of
// supported project types and base images.
//
// # Options
//
// Options is the one-shot prompt/config object driving a generation run.
// It is populated from command-line flags or the interactive wizard and
// validated once before any file is touched:
//
//	opts := &config.Options{
//	    ProjectType: "dotnet",
//	    ImageName:   "microsoft/aspnet:1.0.0-rc1-update1",
//	    ServiceName: "myapp",
//	    Port:        80,
//	    ProjectDir:  "/path/to/project",
//	}
//	if err := opts.Validate(); err != nil { ... }
//
// # Image Catalog
//
// The catalog maps each project type to its supported base images, and
// each image to the project-file patch style it requires. For .NET the
// RC1-era image implies project.json command patching while the RC2-era
// image implies Program.cs host-builder patching.
//
// # User Defaults
//
// Optional per-user defaults (port, per-type image) are loaded from
// ~/.config/dockgen/config.toml when present.
package config
