// Package generator renders the Docker deployment artifacts for a project.
//
// A generation run produces, inside the project directory:
//
//   - Dockerfile.debug and Dockerfile (release)
//   - docker-compose.debug.yml and docker-compose.yml
//   - dockerTask.sh and dockerTask.ps1
//   - .vscode/tasks.json with a composeForDebug task
//
// All artifacts are rendered from Go templates driven by a single
// TemplateData value built from the scaffolding options:
//
//	gen := generator.New(fs, opts)
//	result, err := gen.Run()
//
// Existing artifact files are skipped unless the force option is set.
// After writing the artifacts, .NET web projects get their project.json
// or Program.cs patched (see the patcher package) so the container can
// actually start the server.
//
// Output paths are joined with filepath-securejoin so a crafted service
// or artifact name cannot escape the project directory.
package generator
