package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"text/template"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/errors"
	"github.com/dockgen-io/dockgen/internal/logging"
	"github.com/dockgen-io/dockgen/internal/patcher"
	"github.com/dockgen-io/dockgen/internal/port"
	"github.com/dockgen-io/dockgen/internal/system"
)

// Generated artifact file names.
const (
	DockerfileRelease = "Dockerfile"
	DockerfileDebug   = "Dockerfile.debug"
	ComposeRelease    = "docker-compose.yml"
	ComposeDebug      = "docker-compose.debug.yml"
	ShellTaskScript   = "dockerTask.sh"
	PowershellScript  = "dockerTask.ps1"
	VSCodeTasksFile   = ".vscode/tasks.json"
)

// Generator renders and writes the deployment artifacts for one project.
type Generator struct {
	fs   system.FileSystem
	opts *config.Options
}

// Result reports what a generation run produced.
type Result struct {
	Written []string        // Artifact paths written this run
	Skipped []string        // Existing artifacts left in place (no --force)
	Patch   *patcher.Result // Project-file patch outcome (nil for non-.NET projects)
}

// New creates a Generator for the given options.
func New(fsys system.FileSystem, opts *config.Options) *Generator {
	return &Generator{fs: fsys, opts: opts}
}

// artifact pairs a relative output path with its rendered content.
type artifact struct {
	name    string
	mode    fs.FileMode
	content string
}

// Run validates the options, renders every artifact, writes them into the
// project directory, and finally patches the project manifest or entry
// point when the chosen image requires it. File writes are the only side
// effect.
func (g *Generator) Run() (*Result, error) {
	if err := g.opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if !g.fs.IsDir(g.opts.ProjectDir) {
		return nil, fmt.Errorf("project directory not found: %s", g.opts.ProjectDir)
	}

	artifacts, err := g.renderAll()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, a := range artifacts {
		path, err := securejoin.SecureJoin(g.opts.ProjectDir, a.name)
		if err != nil {
			return nil, fmt.Errorf("invalid artifact path %s: %w", a.name, err)
		}

		if g.fs.Exists(path) && !g.opts.Force {
			logging.Debug("artifact exists, skipping", "path", path)
			result.Skipped = append(result.Skipped, path)
			continue
		}

		if dir := filepath.Dir(path); dir != g.opts.ProjectDir {
			if err := g.fs.MkdirAll(dir, 0755); err != nil {
				return nil, errors.WriteError(dir, err)
			}
		}

		if err := g.fs.WriteFile(path, []byte(a.content), a.mode); err != nil {
			return nil, errors.WriteError(path, err)
		}
		logging.Debug("wrote artifact", "path", path)
		result.Written = append(result.Written, path)
	}

	img, _ := config.ImageByName(g.opts.ImageName)
	if img.Style != config.StyleNone && g.opts.IsWebProject {
		patchResult, err := patcher.Apply(g.fs, g.opts.ProjectDir, img.Style)
		if err != nil {
			return nil, err
		}
		result.Patch = patchResult
	}

	return result, nil
}

// renderAll renders the full artifact set for the configured project.
func (g *Generator) renderAll() ([]artifact, error) {
	renders := []struct {
		name   string
		mode   fs.FileMode
		render func() (string, error)
	}{
		{DockerfileDebug, 0644, func() (string, error) { return g.RenderDockerfile(true) }},
		{DockerfileRelease, 0644, func() (string, error) { return g.RenderDockerfile(false) }},
		{ComposeDebug, 0644, func() (string, error) { return g.RenderCompose(true) }},
		{ComposeRelease, 0644, func() (string, error) { return g.RenderCompose(false) }},
		{ShellTaskScript, 0755, g.RenderShellTask},
		{PowershellScript, 0644, g.RenderPowershellTask},
		{VSCodeTasksFile, 0644, g.RenderVSCodeTasks},
	}

	artifacts := make([]artifact, 0, len(renders))
	for _, r := range renders {
		content, err := r.render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", r.name, err)
		}
		artifacts = append(artifacts, artifact{name: r.name, mode: r.mode, content: content})
	}
	return artifacts, nil
}

// buildTemplateData constructs TemplateData from the generator options.
func (g *Generator) buildTemplateData(debug bool) *TemplateData {
	img, _ := config.ImageByName(g.opts.ImageName)
	projectType, _ := config.TypeByName(g.opts.ProjectType)
	return &TemplateData{
		ServiceName:  g.opts.ServiceName,
		ImageName:    g.opts.ImageName,
		Port:         g.opts.Port,
		HostPort:     port.DebugPort(g.opts.Port),
		IsWebProject: g.opts.IsWebProject,
		Debug:        debug,
		ProjectType:  g.opts.ProjectType,
		WorkDir:      projectType.WorkDir,
		ManifestRun:  img.Style == config.StyleManifest,
	}
}

// RenderDockerfile renders the Dockerfile for the debug or release flavor.
func (g *Generator) RenderDockerfile(debug bool) (string, error) {
	return execute(dockerfileTemplate, g.buildTemplateData(debug))
}

// RenderCompose renders the compose file for the debug or release flavor.
func (g *Generator) RenderCompose(debug bool) (string, error) {
	return execute(composeTemplate, g.buildTemplateData(debug))
}

// RenderShellTask renders the bash task script.
func (g *Generator) RenderShellTask() (string, error) {
	return execute(shellTaskTemplate, g.buildTemplateData(false))
}

// RenderPowershellTask renders the PowerShell task script.
func (g *Generator) RenderPowershellTask() (string, error) {
	return execute(powershellTaskTemplate, g.buildTemplateData(false))
}

// RenderVSCodeTasks renders the editor task configuration.
func (g *Generator) RenderVSCodeTasks() (string, error) {
	return execute(vscodeTasksTemplate, g.buildTemplateData(true))
}

func execute(t *template.Template, data *TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
