package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/datatypes"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered data formats",
	Long: `List the scientific and engineering data formats registered with the
platform, keyed by file extension.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  EXTENSION\tKIND\tNAME\n")
		for _, ext := range datatypes.Extensions() {
			f, _ := datatypes.Lookup(ext)
			fmt.Fprintf(w, "  .%s\t%s\t%s\n", f.Extension, f.Kind, f.Name)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
