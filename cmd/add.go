package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/dejavu/internal/solution"
	"github.com/mateconpizza/dejavu/internal/ui/printer"
)

func init() {
	Root.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:     "add <url> <title> <solution>",
	Short:   "Save a solution",
	Long:    "Save a solution for a URL. Every word after the title is part of the solution.",
	Example: `  dv add https://stackoverflow.com/q/1 "Null pointer" check the null before deref`,
	Args:    minArgs(3),
	RunE:    addFunc,
}

func addFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	r, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(r)

	res, err := r.Add(ctx, args[0], args[1], solution.JoinWords(args[2:]))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return printer.AddResult(cmd.OutOrStdout(), res)
}
