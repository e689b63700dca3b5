package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/dejavu/internal/config"
	"github.com/mateconpizza/dejavu/internal/ui/printer"
)

func init() {
	listCmd.Flags().BoolVarP(&config.App.Flags.JSON, "json", "j", false, "output in JSON format")
	Root.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every saved solution, most used first",
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		r, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore(r)

		rows, err := r.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		if config.App.Flags.JSON {
			return printer.JSON(cmd.OutOrStdout(), rows)
		}

		return printer.List(cmd.OutOrStdout(), rows)
	},
}
