package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the loxi version.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("loxi version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
