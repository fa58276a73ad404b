package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dockgen-io/dockgen/internal/app"
	"github.com/dockgen-io/dockgen/internal/config"
	"github.com/dockgen-io/dockgen/internal/errors"
	"github.com/dockgen-io/dockgen/internal/generator"
	"github.com/dockgen-io/dockgen/internal/logging"
	"github.com/dockgen-io/dockgen/internal/port"
	"github.com/dockgen-io/dockgen/internal/project"
	"github.com/dockgen-io/dockgen/internal/tui"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [path]",
	Short: "Add Docker assets to a project",
	Long: `scaffold generates Dockerfiles, compose files, task scripts and a
VS Code tasks entry for the project in the given directory (default ".").

Without --non-interactive a wizard collects the project type, base
image, service name and port. With --non-interactive everything is
taken from flags, falling back to project detection and per-type
defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScaffold,
}

var (
	scaffoldType           string
	scaffoldImage          string
	scaffoldName           string
	scaffoldPort           int
	scaffoldForce          bool
	scaffoldNonInteractive bool
)

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldType, "type", "t", "", "Project type (dotnet, nodejs, golang); detected when omitted")
	scaffoldCmd.Flags().StringVarP(&scaffoldImage, "image", "i", "", "Base image; the type's default when omitted")
	scaffoldCmd.Flags().StringVarP(&scaffoldName, "name", "n", "", "Service name; derived from the directory when omitted")
	scaffoldCmd.Flags().IntVarP(&scaffoldPort, "port", "p", 0, "Port the container exposes; the type's default when omitted")
	scaffoldCmd.Flags().BoolVarP(&scaffoldForce, "force", "f", false, "Overwrite existing artifacts")
	scaffoldCmd.Flags().BoolVar(&scaffoldNonInteractive, "non-interactive", false, "Skip the wizard and use flags only")
	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	a := app.Default

	var opts *config.Options
	var err error

	if scaffoldNonInteractive {
		opts, err = scaffoldOptionsFromFlags(a, args)
	} else {
		opts, err = tui.RunWizard(a.FS, a.UserDefaults)
	}
	if err != nil {
		return err
	}
	opts.Force = scaffoldForce

	logging.Debug("scaffolding project",
		"dir", opts.ProjectDir,
		"type", opts.ProjectType,
		"image", opts.ImageName,
		"port", opts.Port,
		"web", opts.IsWebProject)

	result, err := a.Scaffold(opts)
	if err != nil {
		return err
	}

	displayScaffoldResult(opts, result)
	return nil
}

// scaffoldOptionsFromFlags builds scaffold options without the wizard,
// filling anything not given on the command line from project detection
// and per-type defaults.
func scaffoldOptionsFromFlags(a *app.App, args []string) (*config.Options, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "invalid project path", err)
	}
	if !a.FS.IsDir(dir) {
		return nil, errors.ProjectNotFound(dir)
	}

	projectType := scaffoldType
	if projectType == "" {
		detected, ok := project.Detect(a.FS, dir)
		if !ok {
			return nil, errors.New(errors.ExitProjectNotFound,
				fmt.Sprintf("could not detect the project type of %s; pass --type", dir))
		}
		projectType = detected
	}
	if _, ok := config.TypeByName(projectType); !ok {
		return nil, errors.UnknownProjectType(projectType)
	}

	image := scaffoldImage
	if image == "" {
		if userImage, ok := a.UserDefaults.Images[projectType]; ok {
			image = userImage
		} else {
			img, _ := config.DefaultImage(projectType)
			image = img.Name
		}
	}
	if _, ok := config.ImageByName(image); !ok {
		return nil, errors.UnknownImage(image)
	}

	name := scaffoldName
	if name == "" {
		name = config.SuggestServiceName(dir)
	}
	if err := config.ValidateServiceName(name); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	exposedPort := scaffoldPort
	if exposedPort == 0 {
		exposedPort = port.Default(projectType, a.UserDefaults)
	}
	if err := port.Validate(exposedPort); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	return &config.Options{
		ProjectType:  projectType,
		ImageName:    image,
		ServiceName:  name,
		Port:         exposedPort,
		ProjectDir:   dir,
		IsWebProject: project.IsWeb(a.FS, dir, projectType),
	}, nil
}

func displayScaffoldResult(opts *config.Options, result *generator.Result) {
	for _, path := range result.Written {
		logSuccess("Wrote %s", path)
	}
	for _, path := range result.Skipped {
		logWarning("Skipped %s (already exists, use --force)", path)
	}

	if p := result.Patch; p != nil {
		switch {
		case p.Patched && p.BackupPath != "":
			logSuccess("Patched %s (backup at %s)", p.File, p.BackupPath)
		case p.Patched:
			logSuccess("Patched %s", p.File)
		case p.Skipped:
			logInfo("No %s found, nothing to patch", filepath.Base(p.File))
		default:
			logInfo("%s already configured, left unchanged", p.File)
		}
	}

	logSuccess("Docker support added to %s", opts.ProjectDir)
	fmt.Printf("  Build:  ./dockerTask.sh build\n")
	fmt.Printf("  Run:    ./dockerTask.sh compose\n")
	fmt.Printf("  Debug:  ./dockerTask.sh composeForDebug\n")
}
