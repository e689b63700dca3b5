package cmd

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/dejavu/internal/config"
	"github.com/mateconpizza/dejavu/internal/sys"
	"github.com/mateconpizza/dejavu/internal/ui/printer"
)

func init() {
	f := config.App.Flags
	findCmd.Flags().BoolVarP(&f.JSON, "json", "j", false, "output every match in JSON format")
	findCmd.Flags().BoolVarP(&f.Copy, "copy", "c", false, "copy the top match URL to the clipboard")
	findCmd.Flags().BoolVarP(&f.Open, "open", "o", false, "open the top match URL in the default browser")
	findCmd.Flags().IntVarP(&f.Limit, "limit", "l", 0, "max matches printed (default from config)")
	Root.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:     "find <search_term>",
	Aliases: []string{"f"},
	Short:   "Search saved solutions",
	Long: `Search saved solutions by title or solution text, most used first.
Every match counts as one more use.`,
	Args: minArgs(1),
	RunE: findFunc,
}

func findFunc(cmd *cobra.Command, args []string) error {
	f := config.App.Flags
	if f.Limit < 0 {
		return fmt.Errorf("%w: --limit %d: %w", invalidInvocation(cmd), f.Limit, config.ErrFindLimit)
	}

	term := args[0]
	if len(args) > 1 {
		slog.Debug("ignoring extra words", "term", term, "extra", args[1:])
	}

	ctx := cmd.Context()
	r, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(r)

	rows, err := r.Find(ctx, term)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	w := cmd.OutOrStdout()
	if f.JSON {
		err = printer.JSON(w, rows)
	} else {
		err = printer.Found(w, term, rows, cmp.Or(f.Limit, config.App.File.FindLimit))
	}
	if err != nil || len(rows) == 0 {
		return err
	}

	top := rows[0].URL
	if f.Copy {
		if err := sys.CopyClipboard(top); err != nil {
			return err
		}
	}

	if f.Open {
		return sys.OpenInBrowser(top)
	}

	return nil
}
