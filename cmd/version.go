package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	Root.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), PrettyVersion())
		return err
	},
}
