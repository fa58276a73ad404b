package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dockgen-io/dockgen/internal/config"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List supported project types and base images",
	RunE:  runImages,
}

func init() {
	rootCmd.AddCommand(imagesCmd)
}

func runImages(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tIMAGE\tPORT\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-----\t----\t-----------")

	for _, t := range config.Types() {
		for i, img := range t.Images {
			name := img.Name
			if i == 0 {
				name += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.Name, name, t.DefaultPort, img.Description)
		}
	}

	return w.Flush()
}
