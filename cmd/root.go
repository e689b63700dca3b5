// Package cmd wires the command line interface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/dejavu/internal/config"
	"github.com/mateconpizza/dejavu/internal/sys"
)

const invalidMesg = "Invalid command (RTFM, but there isn't one)"

// Root represents the base command when called without any subcommands.
var Root = &cobra.Command{
	Use:               config.App.Cmd,
	Short:             config.App.Info.Desc,
	Long:              config.App.Info.Desc,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              noArgs,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invalidInvocation(cmd)
	},
}

func init() {
	cobra.EnableCaseInsensitive = true
	cobra.OnInitialize(initConfig)
	initRootFlags(Root)
	Root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		slog.Debug("flag error", "command", cmd.Name(), "error", err)
		return fmt.Errorf("%w: %w", invalidInvocation(cmd), err)
	})
	Root.CompletionOptions.HiddenDefaultCmd = true
}

func initRootFlags(c *cobra.Command) {
	f := config.App.Flags
	pf := c.PersistentFlags()
	pf.StringVar(&f.DBPath, "db", "", "database file path")
	pf.StringVar(&f.Config, "config", "", "config file path")
	pf.StringVar(&f.ColorStr, "color", "", "output with pretty colors [always|never]")
	pf.CountVarP(&f.Verbose, "verbose", "v", "increase verbosity (-v, -vv, -vvv)")
}

// Execute runs the root command and exits with the matching status code.
func Execute() {
	if err := Root.Execute(); err != nil {
		sys.ErrAndExit(config.App.Cmd, err)
	}
}

// noArgs rejects positional arguments that did not match a subcommand.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		slog.Debug("unknown command", "args", args)
		return invalidInvocation(cmd)
	}

	return nil
}

// minArgs requires at least n positional arguments.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			slog.Debug("not enough arguments", "command", cmd.Name(), "want", n, "got", len(args))
			return invalidInvocation(cmd)
		}

		return nil
	}
}

// invalidInvocation prints the usage text followed by the invalid command
// message.
func invalidInvocation(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	printUsage(w)
	fmt.Fprintln(w, invalidMesg)

	return sys.ErrInvalidInvocation
}

func printUsage(w io.Writer) {
	name := config.App.Cmd
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s add <url> <title> <solution>\n", name)
	fmt.Fprintf(w, "  %s find <search_term>\n", name)
	fmt.Fprintf(w, "  %s list\n", name)
}
