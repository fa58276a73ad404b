package main

import (
	"os"

	"github.com/dockgen-io/dockgen/cmd"
	"github.com/dockgen-io/dockgen/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
