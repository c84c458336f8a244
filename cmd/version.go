package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of containment-vessel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("containment-vessel v%s\n", Version)
		fmt.Println("Reactor containment building geometry synthesis")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
