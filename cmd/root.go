package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dockgen-io/dockgen/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "dockgen",
	Short: "Docker asset generator for existing projects",
	Long: `dockgen adds Docker support to an existing project.

It generates debug and release Dockerfiles, compose files, a task
script for building and running the containers, and a VS Code tasks
entry. For ASP.NET web projects it also rewires the project so the
server listens on all interfaces inside the container.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)
