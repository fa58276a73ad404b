package generator

import (
	"strings"
	"text/template"

	shellquote "github.com/kballard/go-shellquote"
)

// TemplateData holds all data needed to render the deployment artifacts.
type TemplateData struct {
	ServiceName  string // Compose service / image name
	ImageName    string // Base image reference
	Port         int    // Container port exposed by web projects
	HostPort     int    // Host-side port for the debug compose flavor
	IsWebProject bool   // Web projects get EXPOSE and port mappings
	Debug        bool   // Debug flavor (development env, source volume)
	ProjectType  string // "dotnet", "nodejs", or "golang"
	WorkDir      string // Container working directory; the debug volume mounts here
	ManifestRun  bool   // RC1-style manifest command model (dnu/dnx)
}

// shellQuoteArgs quotes arguments for safe inclusion in a generated shell script.
func shellQuoteArgs(args ...string) string {
	return shellquote.Join(args...)
}

// psEscape escapes a string for a single-quoted PowerShell literal.
func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// dockerfileTemplateText renders Dockerfile and Dockerfile.debug per project type.
const dockerfileTemplateText = `FROM {{.ImageName}}
{{if eq .ProjectType "dotnet"}}
{{- if .ManifestRun}}ADD project.json {{.WorkDir}}/
WORKDIR {{.WorkDir}}
RUN ["dnu", "restore"]
ADD . {{.WorkDir}}
{{- if .Debug}}
ENV ASPNET_ENV Development
{{- end}}
{{- if .IsWebProject}}
EXPOSE {{.Port}}
{{- end}}
ENTRYPOINT ["dnx", "-p", "project.json", "web"]
{{- else}}COPY . {{.WorkDir}}
WORKDIR {{.WorkDir}}
RUN ["dotnet", "restore"]
RUN ["dotnet", "build"]
{{- if .Debug}}
ENV ASPNETCORE_ENVIRONMENT Development
{{- end}}
{{- if .IsWebProject}}
EXPOSE {{.Port}}
{{- end}}
ENTRYPOINT ["dotnet", "run"]
{{- end}}
{{- else if eq .ProjectType "nodejs"}}
COPY package.json {{.WorkDir}}/package.json
WORKDIR {{.WorkDir}}
RUN npm install{{if .Debug}}
RUN npm install -g nodemon{{end}}
COPY . {{.WorkDir}}
{{- if .Debug}}
ENV NODE_ENV development
{{- end}}
{{- if .IsWebProject}}
EXPOSE {{.Port}}
{{- end}}
{{- if .Debug}}
CMD ["nodemon", "-L", "server.js"]
{{- else}}
CMD ["node", "server.js"]
{{- end}}
{{- else if eq .ProjectType "golang"}}
COPY . {{.WorkDir}}
WORKDIR {{.WorkDir}}
RUN go get -d ./...
{{- if .Debug}}
{{- if .IsWebProject}}
EXPOSE {{.Port}}
{{- end}}
ENTRYPOINT ["go", "run", "."]
{{- else}}
RUN go build -o /go/bin/app .
{{- if .IsWebProject}}
EXPOSE {{.Port}}
{{- end}}
ENTRYPOINT ["/go/bin/app"]
{{- end}}
{{- end}}
`

// composeTemplateText renders docker-compose.yml and docker-compose.debug.yml.
const composeTemplateText = `version: '2'

services:
  {{.ServiceName}}:
    image: {{.ServiceName}}{{if .Debug}}:debug{{else}}:latest{{end}}
    build:
      context: .
      dockerfile: {{if .Debug}}Dockerfile.debug{{else}}Dockerfile{{end}}
{{- if .IsWebProject}}
    ports:
      - "{{if .Debug}}{{.HostPort}}{{else}}{{.Port}}{{end}}:{{.Port}}"
{{- end}}
{{- if .Debug}}
    volumes:
      - .:{{.WorkDir}}
    environment:
      - ENVIRONMENT=development
{{- end}}
`

// shellTaskTemplateText renders dockerTask.sh (bash flavor).
const shellTaskTemplateText = `#!/bin/bash

imageName={{shellQuote .ServiceName}}
projectName={{shellQuote .ServiceName}}
publicPort={{.Port}}

# Builds the Docker image.
buildImage () {
  if [[ -z $ENVIRONMENT ]]; then
    ENVIRONMENT=debug
  fi

  if [[ $ENVIRONMENT = "release" ]]; then
    dockerFileName="Dockerfile"
    tag="latest"
  else
    dockerFileName="Dockerfile.$ENVIRONMENT"
    tag=$ENVIRONMENT
  fi

  if [[ ! -f $dockerFileName ]]; then
    echo "$ENVIRONMENT is not a valid parameter. File '$dockerFileName' does not exist."
  else
    echo "Building the image $imageName ($ENVIRONMENT)."
    docker build -f "$dockerFileName" -t "$imageName:$tag" .
  fi
}

# Runs docker-compose.
compose () {
  if [[ -z $ENVIRONMENT ]]; then
    ENVIRONMENT=debug
  fi

  if [[ $ENVIRONMENT = "release" ]]; then
    composeFileName="docker-compose.yml"
  else
    composeFileName="docker-compose.$ENVIRONMENT.yml"
  fi

  if [[ ! -f $composeFileName ]]; then
    echo "$ENVIRONMENT is not a valid parameter. File '$composeFileName' does not exist."
  else
    echo "Running compose with $composeFileName."
    docker-compose -f $composeFileName -p $projectName kill
    docker-compose -f $composeFileName -p $projectName rm -f
    docker-compose -f $composeFileName -p $projectName up -d
  fi
}

# Removes containers and images for this project.
clean () {
  docker-compose -f docker-compose.yml -p $projectName down --rmi local 2> /dev/null
  docker-compose -f docker-compose.debug.yml -p $projectName down --rmi local 2> /dev/null
}

# Shows the usage for the script.
showUsage () {
  echo "Usage: dockerTask.sh [COMMAND] (ENVIRONMENT)"
  echo "    Runs build or compose using the specified environment (debug or release)"
  echo ""
  echo "Commands:"
  echo "    build: Builds a Docker image ('$imageName')."
  echo "    compose: Runs docker-compose."
  echo "    composeForDebug: Builds the image and runs docker-compose for debugging."
  echo "    clean: Removes the images and containers."
  echo ""
  echo "Environments:"
  echo "    debug: Uses debug environment."
  echo "    release: Uses release environment."
}

if [ $# -eq 0 ]; then
  showUsage
else
  ENVIRONMENT=$(echo "$2" | tr "[:upper:]" "[:lower:]")

  case "$1" in
    "compose")
      compose
      ;;
    "composeForDebug")
      ENVIRONMENT=debug
      buildImage
      compose
      ;;
    "build")
      buildImage
      ;;
    "clean")
      clean
      ;;
    *)
      showUsage
      ;;
  esac
fi
`

// powershellTaskTemplateText renders dockerTask.ps1 (Windows flavor).
const powershellTaskTemplateText = `<#
.SYNOPSIS
Builds and runs a Docker image for '{{psEscape .ServiceName}}'.
.PARAMETER Build
Builds a Docker image.
.PARAMETER Compose
Runs docker-compose.
.PARAMETER ComposeForDebug
Builds the image and runs docker-compose for debugging.
.PARAMETER Clean
Removes the images and containers.
.PARAMETER Environment
The enviorment to build for (Debug or Release), defaults to Debug.
#>

Param(
    [Parameter(Mandatory = $False, ParameterSetName = "Build")]
    [switch]$Build,
    [Parameter(Mandatory = $False, ParameterSetName = "Compose")]
    [switch]$Compose,
    [Parameter(Mandatory = $False, ParameterSetName = "ComposeForDebug")]
    [switch]$ComposeForDebug,
    [Parameter(Mandatory = $False, ParameterSetName = "Clean")]
    [switch]$Clean,
    [parameter(Mandatory = $False)]
    [ValidateNotNullOrEmpty()]
    [String]$Environment = "Debug"
)

$imageName = '{{psEscape .ServiceName}}'
$projectName = '{{psEscape .ServiceName}}'
$publicPort = {{.Port}}

# Builds the Docker image.
function BuildImage () {
    $environmentLower = $Environment.ToLowerInvariant()
    if ($environmentLower -eq "release") {
        $dockerFileName = "Dockerfile"
        $tag = "latest"
    }
    else {
        $dockerFileName = "Dockerfile.$environmentLower"
        $tag = $environmentLower
    }

    if (Test-Path $dockerFileName) {
        Write-Host "Building the image $imageName ($Environment)."
        docker build -f $dockerFileName -t "${imageName}:$tag" .
    }
    else {
        Write-Error -Message "$Environment is not a valid parameter. File '$dockerFileName' does not exist." -Category InvalidArgument
    }
}

# Runs docker-compose.
function Compose () {
    $environmentLower = $Environment.ToLowerInvariant()
    if ($environmentLower -eq "release") {
        $composeFileName = "docker-compose.yml"
    }
    else {
        $composeFileName = "docker-compose.$environmentLower.yml"
    }

    if (Test-Path $composeFileName) {
        Write-Host "Running compose with $composeFileName."
        docker-compose -f $composeFileName -p $projectName kill
        docker-compose -f $composeFileName -p $projectName rm -f
        docker-compose -f $composeFileName -p $projectName up -d
    }
    else {
        Write-Error -Message "$Environment is not a valid parameter. File '$composeFileName' does not exist." -Category InvalidArgument
    }
}

# Removes containers and images for this project.
function Clean () {
    docker-compose -f docker-compose.yml -p $projectName down --rmi local
    docker-compose -f docker-compose.debug.yml -p $projectName down --rmi local
}

if ($Build) {
    BuildImage
}
elseif ($Compose) {
    Compose
}
elseif ($ComposeForDebug) {
    $Environment = "Debug"
    BuildImage
    Compose
}
elseif ($Clean) {
    Clean
}
`

// vscodeTasksTemplateText renders .vscode/tasks.json.
const vscodeTasksTemplateText = `{
  "version": "0.1.0",
  "command": "bash",
  "isShellCommand": true,
  "args": [],
  "showOutput": "always",
  "tasks": [
    {
      "taskName": "composeForDebug",
      "suppressTaskName": true,
      "args": [
        "-c",
        "./dockerTask.sh composeForDebug"
      ],
      "isBuildCommand": false,
      "showOutput": "always"
    }
  ]
}
`

var (
	dockerfileTemplate     *template.Template
	composeTemplate        *template.Template
	shellTaskTemplate      *template.Template
	powershellTaskTemplate *template.Template
	vscodeTasksTemplate    *template.Template
)

func init() {
	funcs := template.FuncMap{
		"shellQuote": shellQuoteArgs,
		"psEscape":   psEscape,
	}
	dockerfileTemplate = template.Must(template.New("dockerfile").Funcs(funcs).Parse(dockerfileTemplateText))
	composeTemplate = template.Must(template.New("compose").Funcs(funcs).Parse(composeTemplateText))
	shellTaskTemplate = template.Must(template.New("shellTask").Funcs(funcs).Parse(shellTaskTemplateText))
	powershellTaskTemplate = template.Must(template.New("powershellTask").Funcs(funcs).Parse(powershellTaskTemplateText))
	vscodeTasksTemplate = template.Must(template.New("vscodeTasks").Funcs(funcs).Parse(vscodeTasksTemplateText))
}
