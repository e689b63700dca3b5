package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/dejavu/internal/config"
	"github.com/mateconpizza/dejavu/internal/sys/files"
	"github.com/mateconpizza/dejavu/internal/ui/color"
	"github.com/mateconpizza/dejavu/internal/ui/frame"
	"github.com/mateconpizza/dejavu/internal/ui/txt"
)

func init() {
	Root.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the solutions database",
	Args:  noArgs,
	RunE:  initFunc,
}

func initFunc(cmd *cobra.Command, _ []string) error {
	p := config.App.Path.Database
	existed := files.Exists(p)
	f := frame.New(frame.WithColorBorder(color.Gray))

	ctx := cmd.Context()
	r, err := openStore(ctx)
	if err != nil {
		f.Error("database unavailable").Ln().
			Footerln(txt.PaddedLine("path:", color.Gray(p).Italic()))
		if ferr := f.Flush(cmd.OutOrStdout()); ferr != nil {
			slog.Error("printing init summary", "error", ferr)
		}

		return err
	}
	defer closeStore(r)

	n, err := r.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if existed {
		f.Info("database ready")
	} else {
		f.Success("database created")
	}
	f.Ln().
		Rowln(txt.PaddedLine("path:", color.Gray(r.Cfg.Fullpath()).Italic())).
		Rowln(txt.PaddedLine("driver:", r.Cfg.Driver)).
		Footerln(txt.PaddedLine("records:", n))

	return f.Flush(cmd.OutOrStdout())
}
